package web

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// LocaleParam força o locale pela query string (?locale=en-US).
const LocaleParam = "locale"

var supportedLocales = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
	language.LatinAmericanSpanish,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// resolveLocale escolhe o locale pela query, depois Accept-Language e por fim fallback.
func resolveLocale(r *http.Request, fallback string) string {
	if v := strings.TrimSpace(r.URL.Query().Get(LocaleParam)); v != "" {
		if tag, err := language.Parse(v); err == nil {
			return matchLocale(tag)
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, conf := localeMatcher.Match(tags...)
			if conf != language.No {
				return supportedLocales[idx].String()
			}
		}
	}
	return fallback
}

func matchLocale(tag language.Tag) string {
	_, idx, _ := localeMatcher.Match(tag)
	return supportedLocales[idx].String()
}
