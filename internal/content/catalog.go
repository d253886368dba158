// Package content loads the localized string tables of the landing page.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"

	"github.com/numiflow/website/internal/locale"
	"github.com/numiflow/website/pkg/logger"
)

//go:embed locales/*.yaml
var embedded embed.FS

var Module = fx.Module("content",
	fx.Provide(NewCatalog),
)

// ErrMissingDefault is returned when the default locale file cannot be found.
var ErrMissingDefault = errors.New("default locale catalog missing")

// Catalog holds one table per supported locale.
type Catalog struct {
	tables map[locale.Locale]*Table
}

// NewCatalog loads the embedded catalogs.
func NewCatalog(log *slog.Logger) (*Catalog, error) {
	cat, err := LoadEmbedded()
	if err != nil {
		return nil, err
	}
	log = log.With(logger.Scope("content"))
	for _, p := range cat.Audit() {
		log.Warn("catalog problem", slog.String("locale", p.Locale.String()), slog.String("key", p.Key), slog.String("problem", p.Reason))
	}
	log.Info("catalogs loaded", slog.Int("keys", len(cat.Table(locale.Default).values)))
	return cat, nil
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Load reads <locale>.yaml for every supported locale from fsys.
// The default locale is required; other locales fall back to it.
func Load(fsys fs.FS) (*Catalog, error) {
	def, err := readTable(fsys, locale.Default)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s.yaml", ErrMissingDefault, locale.Default)
		}
		return nil, err
	}

	defTable := NewTable(locale.Default, def, nil)
	cat := &Catalog{tables: map[locale.Locale]*Table{locale.Default: defTable}}

	for _, loc := range locale.Supported() {
		if loc == locale.Default {
			continue
		}
		values, err := readTable(fsys, loc)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			values = nil
		case err != nil:
			return nil, err
		}
		cat.tables[loc] = NewTable(loc, values, defTable)
	}
	return cat, nil
}

func readTable(fsys fs.FS, loc locale.Locale) (map[string]Value, error) {
	name := loc.String() + ".yaml"
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	values := make(map[string]Value)
	if len(doc.Content) == 0 {
		return values, nil
	}
	if err := flatten(doc.Content[0], "", values); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return values, nil
}

func flatten(n *yaml.Node, prefix string, out map[string]Value) error {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if prefix != "" {
				key = prefix + "." + key
			}
			if err := flatten(n.Content[i+1], key, out); err != nil {
				return err
			}
		}
		return nil
	case yaml.ScalarNode:
		if prefix == "" {
			return fmt.Errorf("line %d: top level must be a mapping", n.Line)
		}
		out[prefix] = Text(n.Value)
		return nil
	case yaml.SequenceNode:
		if prefix == "" {
			return fmt.Errorf("line %d: top level must be a mapping", n.Line)
		}
		items := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: %s: list items must be strings", item.Line, prefix)
			}
			items = append(items, item.Value)
		}
		out[prefix] = List(items...)
		return nil
	case yaml.AliasNode:
		return flatten(n.Alias, prefix, out)
	default:
		return fmt.Errorf("line %d: %s: unsupported node", n.Line, prefix)
	}
}

// Table returns the table for loc, or the default table for an unknown locale.
func (c *Catalog) Table(loc locale.Locale) *Table {
	if t, ok := c.tables[loc]; ok {
		return t
	}
	return c.tables[locale.Default]
}

// Problem is one finding of Audit.
type Problem struct {
	Locale locale.Locale
	Key    string
	Reason string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s: %s", p.Locale, p.Key, p.Reason)
}

// Audit compares every non-default table against the default one.
func (c *Catalog) Audit() []Problem {
	def := c.tables[locale.Default]
	var problems []Problem

	for _, loc := range locale.Supported() {
		if loc == locale.Default {
			continue
		}
		t := c.tables[loc]
		for _, key := range def.Keys() {
			want := def.values[key]
			got, ok := t.values[key]
			if !ok {
				problems = append(problems, Problem{Locale: loc, Key: key, Reason: "missing"})
				continue
			}
			if got.Kind() != want.Kind() {
				problems = append(problems, Problem{
					Locale: loc,
					Key:    key,
					Reason: fmt.Sprintf("kind %s, default has %s", got.Kind(), want.Kind()),
				})
			}
		}
		for _, key := range t.Keys() {
			if _, ok := def.values[key]; !ok {
				problems = append(problems, Problem{Locale: loc, Key: key, Reason: "not in default locale"})
			}
		}
	}

	sort.Slice(problems, func(i, j int) bool {
		if problems[i].Locale != problems[j].Locale {
			return problems[i].Locale < problems[j].Locale
		}
		return problems[i].Key < problems[j].Key
	})
	return problems
}
