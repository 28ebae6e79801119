// Package locale provides bilingual console messages. Messages are keyed by
// their English text, Polish translations live in the catalog.
package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Separator is placed between translations of the same message.
const Separator = " / "

// DefaultLanguages lists languages used when nothing was configured.
var DefaultLanguages = []string{"pl", "en"}

var cat = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range polish {
		if err := b.SetString(language.Polish, key, text); err != nil {
			panic(err)
		}
	}
	for key, text := range english {
		if err := b.SetString(language.English, key, text); err != nil {
			panic(err)
		}
	}
	return b
}

// Printer renders messages in all requested languages.
type Printer struct {
	printers []*message.Printer
}

// NewPrinter creates printer for languages in requested order. Unknown
// languages are ignored, English is used when nothing usable is left.
func NewPrinter(langs ...string) *Printer {
	if len(langs) == 0 {
		langs = DefaultLanguages
	}
	p := &Printer{}
	for _, l := range langs {
		tag, err := language.Parse(l)
		if err != nil {
			continue
		}
		p.printers = append(p.printers, message.NewPrinter(tag, message.Catalog(cat)))
	}
	if len(p.printers) == 0 {
		p.printers = append(p.printers, message.NewPrinter(language.English, message.Catalog(cat)))
	}
	return p
}

// Text returns single line message in all languages.
func (p *Printer) Text(key string, args ...any) string {
	return p.join(Separator, key, args...)
}

// Block returns multi-line text with translations separated by empty line.
func (p *Printer) Block(key string, args ...any) string {
	return p.join("\n\n", key, args...)
}

func (p *Printer) join(sep, key string, args ...any) string {
	parts := make([]string, 0, len(p.printers))
	for _, pr := range p.printers {
		parts = append(parts, pr.Sprintf(key, args...))
	}
	return strings.Join(parts, sep)
}
