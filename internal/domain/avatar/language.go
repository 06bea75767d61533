// Package avatar holds the domain model of the avatar creator: the URL
// configuration and the typed events the hosted page sends back.
package avatar

import (
	"fmt"
	"strings"
)

// Language selects the localized avatar creator. LanguageDefault emits no path segment.
type Language int

const (
	LanguageDefault Language = iota
	LanguageEn
	LanguageEnIe
	LanguageDe
	LanguageFr
	LanguageEs
	LanguageEsMx
	LanguagePt
	LanguagePtBr
	LanguageIt
	LanguageTr
	LanguageJp
	LanguageKr
	LanguageCh
)

var languageCodes = map[Language]string{
	LanguageEn:   "en",
	LanguageEnIe: "en-IE",
	LanguageDe:   "de",
	LanguageFr:   "fr",
	LanguageEs:   "es",
	LanguageEsMx: "es-MX",
	LanguagePt:   "pt",
	LanguagePtBr: "pt-BR",
	LanguageIt:   "it",
	LanguageTr:   "tr",
	LanguageJp:   "jp",
	LanguageKr:   "kr",
	LanguageCh:   "ch",
}

// codeLanguages is the reverse of languageCodes, keyed by lower-cased code.
var codeLanguages = func() map[string]Language {
	m := make(map[string]Language, len(languageCodes))
	for lang, code := range languageCodes {
		m[strings.ToLower(code)] = lang
	}
	return m
}()

// Code returns the URL path code, or "" for LanguageDefault and unknown values.
func (l Language) Code() string {
	return languageCodes[l]
}

// String implements fmt.Stringer.
func (l Language) String() string {
	if code := l.Code(); code != "" {
		return code
	}
	return "default"
}

// Languages returns every non-default language in declaration order.
func Languages() []Language {
	out := make([]Language, 0, len(languageCodes))
	for l := LanguageEn; l <= LanguageCh; l++ {
		out = append(out, l)
	}
	return out
}

// ParseLanguage maps a code such as "pt-BR" back to its Language.
// Empty input and "default" yield LanguageDefault. Matching is case-insensitive.
func ParseLanguage(code string) (Language, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" || code == "default" {
		return LanguageDefault, nil
	}
	if lang, ok := codeLanguages[code]; ok {
		return lang, nil
	}
	return LanguageDefault, fmt.Errorf("unknown language %q", code)
}
