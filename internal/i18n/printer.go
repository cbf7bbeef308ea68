package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer localizes message keys for one locale.
type Printer struct {
	bundle *Bundle
	locale string
	p      *message.Printer
}

// NewPrinter returns a printer for locale. Unknown locales print the
// base locale.
func NewPrinter(b *Bundle, locale string) *Printer {
	if !b.HasLocale(locale) {
		locale = BaseLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Printer{bundle: b, locale: locale, p: message.NewPrinter(tag)}
}

func (p *Printer) Locale() string {
	return p.locale
}

// Localize returns the message for key, or key itself when there is none.
func (p *Printer) Localize(key string) string {
	if v, ok := p.bundle.Message(p.locale, key); ok {
		return v
	}
	return key
}

// Format localizes key and formats args into it.
func (p *Printer) Format(key string, args ...any) string {
	fallback := key
	if v, ok := p.bundle.Message(p.locale, key); ok {
		fallback = v
	}
	return p.p.Sprintf(message.Key(key, fallback), args...)
}
