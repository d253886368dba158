// Package contact holds the contact form state machine and its registry.
//
// A Form tracks five field values, a tri-state submission status and an
// in-flight flag. Submitting hands the values to an injected Submitter; on
// success the fields are cleared, on failure they are kept so the visitor can
// retry.
package contact

import (
	"time"

	"github.com/numiflow/website/internal/locale"
)

// Field names one input of the contact form.
type Field string

const (
	FieldName      Field = "name"
	FieldEmail     Field = "email"
	FieldCompany   Field = "company"
	FieldEmployees Field = "employees"
	FieldMessage   Field = "message"
)

var fields = []Field{FieldName, FieldEmail, FieldCompany, FieldEmployees, FieldMessage}

// Fields returns every form field in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// ParseField maps an input name to a Field.
func ParseField(name string) (Field, bool) {
	for _, f := range fields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// EmployeeBuckets are the allowed values of the employees field.
var EmployeeBuckets = []string{"1-10", "11-50", "51-200", "200+"}

// Data is the record a visitor fills in.
type Data struct {
	Name      string `json:"name" form:"name" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Company   string `json:"company" form:"company" validate:"required"`
	Employees string `json:"employees" form:"employees" validate:"required,oneof=1-10 11-50 51-200 200+"`
	Message   string `json:"message" form:"message" validate:"required"`
}

// Get returns the value of f. Unknown fields yield "".
func (d Data) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldCompany:
		return d.Company
	case FieldEmployees:
		return d.Employees
	case FieldMessage:
		return d.Message
	}
	return ""
}

// Set returns a copy of d with f replaced. Unknown fields leave d unchanged.
func (d Data) Set(f Field, value string) Data {
	switch f {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldCompany:
		d.Company = value
	case FieldEmployees:
		d.Employees = value
	case FieldMessage:
		d.Message = value
	}
	return d
}

// IsEmpty reports whether every field is blank.
func (d Data) IsEmpty() bool {
	return d == Data{}
}

// Status is the outcome of the last submission attempt.
type Status int

const (
	StatusIdle Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Meta describes where a submission came from.
type Meta struct {
	Locale      locale.Locale
	FormID      string
	RemoteAddr  string
	UserAgent   string
	Referrer    string
	SubmittedAt time.Time
}

// Submission is what a Submitter receives.
type Submission struct {
	Data
	Meta
}
