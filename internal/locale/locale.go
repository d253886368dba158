// Package locale maps URL path segments to the supported site locales.
//
// The active locale is resolved per request and passed down explicitly;
// nothing here holds process-wide mutable state.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported site language.
type Locale string

const (
	English Locale = "en"
	Latvian Locale = "lv"

	// Default is used for the bare root path and as the redirect target.
	Default = English
)

var (
	supported = []Locale{English, Latvian}

	tags = map[Locale]language.Tag{
		English: language.English,
		Latvian: language.Latvian,
	}

	labels = map[Locale]string{
		English: "EN",
		Latvian: "LV",
	}

	matcher = language.NewMatcher([]language.Tag{language.English, language.Latvian})
)

// Supported returns the supported locales in display order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse reports whether segment names a supported locale. Matching is exact.
func Parse(segment string) (Locale, bool) {
	for _, l := range supported {
		if string(l) == segment {
			return l, true
		}
	}
	return "", false
}

// String implements fmt.Stringer.
func (l Locale) String() string { return string(l) }

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag {
	if t, ok := tags[l]; ok {
		return t
	}
	return tags[Default]
}

// Label is the short switcher label.
func (l Locale) Label() string {
	return labels[l]
}

// Root is the canonical path of the locale's landing page.
func (l Locale) Root() string {
	return "/" + string(l)
}

// Resolution is the outcome of resolving a path segment.
type Resolution struct {
	Locale Locale
	// RedirectTo is set when the segment was unsupported; nothing should be rendered.
	RedirectTo string
}

// Redirect reports whether the caller must navigate instead of rendering.
func (r Resolution) Redirect() bool {
	return r.RedirectTo != ""
}

// Resolve maps an optional path segment to the active locale.
//
// An absent segment yields the default locale. A present but unsupported one
// (including "") yields a redirect to the default locale's root.
func Resolve(segment string, present bool) Resolution {
	if !present {
		return Resolution{Locale: Default}
	}
	if l, ok := Parse(segment); ok {
		return Resolution{Locale: l}
	}
	return Resolution{Locale: Default, RedirectTo: Default.Root()}
}

// Negotiate picks the best supported locale for an explicit choice or an
// Accept-Language header value. An explicit supported choice wins.
func Negotiate(explicit, acceptLanguage string) Locale {
	if l, ok := Parse(strings.TrimSpace(explicit)); ok {
		return l
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return supported[idx]
}

// Option is one entry of the language switcher.
type Option struct {
	Locale Locale
	Label  string
	Href   string
	Active bool
}

// Options builds the language switcher with active marking the current locale.
func Options(active Locale) []Option {
	out := make([]Option, 0, len(supported))
	for _, l := range supported {
		out = append(out, Option{
			Locale: l,
			Label:  l.Label(),
			Href:   l.Root(),
			Active: l == active,
		})
	}
	return out
}
