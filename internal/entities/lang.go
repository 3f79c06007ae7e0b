package entities

import (
	"errors"
	"fmt"
	"strings"
)

type Lang string

const (
	LangJA Lang = "ja"
	LangEN Lang = "en"
)

// SupportedLangs lists every language the site is published in.
var SupportedLangs = []Lang{LangJA, LangEN}

var ErrUnsupportedLang = errors.New("unsupported language")

// ParseLang accepts any of SupportedLangs, case-insensitively.
func ParseLang(s string) (Lang, error) {
	want := Lang(strings.ToLower(strings.TrimSpace(s)))
	for _, lang := range SupportedLangs {
		if lang == want {
			return lang, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLang, s)
}

// Text is one logical attribute stored as a language-suffixed pair
// (name_ja / name_en) in the content store.
type Text struct {
	JA string
	EN string
}

// In returns the variant for lang, or "" for an unknown language.
func (t Text) In(lang Lang) string {
	switch lang {
	case LangJA:
		return t.JA
	case LangEN:
		return t.EN
	default:
		return ""
	}
}

// Localizable is implemented by every record that carries bilingual fields.
type Localizable interface {
	LocalizedFields() map[string]Text
}

// Localized resolves field in lang. Missing records, fields and languages
// all yield "" so a missing translation renders as blank text.
func Localized(record Localizable, field string, lang Lang) string {
	if record == nil {
		return ""
	}
	text, ok := record.LocalizedFields()[field]
	if !ok {
		return ""
	}
	return text.In(lang)
}
