package content

import "github.com/numiflow/website/internal/locale"

// Kind distinguishes the two shapes a catalog value can take.
type Kind int

const (
	KindText Kind = iota
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is either a single string or an ordered list of strings.
type Value struct {
	kind Kind
	text string
	list []string
}

// Text builds a scalar value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// List builds a list value. The slice is copied.
func List(items ...string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

func (v Value) Kind() Kind { return v.kind }

// AsText returns the string and true when v is a text value.
func (v Value) AsText() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// AsList returns a copy of the items and true when v is a list value.
func (v Value) AsList() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	cp := make([]string, len(v.list))
	copy(cp, v.list)
	return cp, true
}

// Table is the immutable string table of one locale.
type Table struct {
	locale   locale.Locale
	values   map[string]Value
	fallback *Table
}

// NewTable builds a table from already flattened values. fallback may be nil.
func NewTable(loc locale.Locale, values map[string]Value, fallback *Table) *Table {
	cp := make(map[string]Value, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return &Table{locale: loc, values: cp, fallback: fallback}
}

// Locale returns the locale the table was loaded for.
func (t *Table) Locale() locale.Locale { return t.locale }

// Lookup returns the value at key, consulting the fallback table when the key is missing.
func (t *Table) Lookup(key string) (Value, bool) {
	if t == nil {
		return Value{}, false
	}
	if v, ok := t.values[key]; ok {
		return v, true
	}
	if t.fallback != nil {
		return t.fallback.Lookup(key)
	}
	return Value{}, false
}

// Text resolves key as text. Missing keys, and keys holding a list, render as the key itself.
func (t *Table) Text(key string) string {
	v, ok := t.Lookup(key)
	if !ok {
		return key
	}
	s, ok := v.AsText()
	if !ok {
		return key
	}
	return s
}

// TextOr resolves key as text, returning def when it is not present as text.
func (t *Table) TextOr(key, def string) string {
	if v, ok := t.Lookup(key); ok {
		if s, ok := v.AsText(); ok {
			return s
		}
	}
	return def
}

// List resolves key as a list. Missing keys, and keys holding text, yield nil.
func (t *Table) List(key string) []string {
	v, ok := t.Lookup(key)
	if !ok {
		return nil
	}
	items, _ := v.AsList()
	return items
}

// Keys returns the keys defined directly in this table, without fallback.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.values))
	for k := range t.values {
		keys = append(keys, k)
	}
	return keys
}
