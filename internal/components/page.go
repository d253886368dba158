// Package components renders the landing page with gomponents.
//
// Every component receives the Page it renders for; the active locale and its
// string table travel with it rather than living in package state.
package components

import (
	"github.com/numiflow/website/internal/contact"
	"github.com/numiflow/website/internal/content"
	"github.com/numiflow/website/internal/locale"
)

// Billing selects which price column the pricing section shows.
type Billing string

const (
	BillingAnnual  Billing = "annual"
	BillingMonthly Billing = "monthly"
)

// ParseBilling maps the billing query parameter. Anything unknown is annual.
func ParseBilling(s string) Billing {
	if Billing(s) == BillingMonthly {
		return BillingMonthly
	}
	return BillingAnnual
}

// Page is everything the landing page needs for one request.
type Page struct {
	Locale   locale.Locale
	T        *content.Table
	SiteName string
	SiteURL  string
	Billing  Billing

	Form    contact.Snapshot
	Invalid map[contact.Field]string
}

// Path returns the locale root, with the billing choice when it is not the default.
func (p Page) Path() string {
	if p.Billing == BillingMonthly {
		return p.Locale.Root() + "?billing=monthly"
	}
	return p.Locale.Root()
}

// ContactAction is where the contact form posts.
func (p Page) ContactAction() string {
	return p.Locale.Root() + "/contact"
}
