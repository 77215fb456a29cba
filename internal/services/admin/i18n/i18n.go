// Package i18n picks the operator's language and builds message printers over
// the embedded catalogs.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/storeadmin/internal/platform/i18n/catalog"
)

const (
	// LangParam is the query parameter that switches language.
	LangParam = "lang"
	// LangCookieName remembers the operator's choice.
	LangCookieName = "storeadmin_lang"

	langCookieMaxAge = 365 * 24 * time.Hour
)

// supportedTags lists every catalog locale, base locale first so the matcher
// falls back to it.
var supportedTags = catalogTags(catalog.Default())

var tagMatcher = language.NewMatcher(supportedTags)

func catalogTags(bundle *catalog.Bundle) []language.Tag {
	tags := []language.Tag{language.MustParse(catalog.BaseLocale)}
	for _, locale := range bundle.Locales() {
		if locale == catalog.BaseLocale {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// Supported returns the supported tags, default first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supportedTags...)
}

// Default returns the base catalog language.
func Default() language.Tag {
	return supportedTags[0]
}

// Printer returns a printer for tag. Catalog messages are registered when the
// catalog package loads.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag picks the request language from, in order, the lang query
// parameter, the language cookie and Accept-Language. persist is true when
// the query parameter chose the language and should be remembered.
func ResolveTag(r *http.Request) (tag language.Tag, persist bool) {
	if r == nil {
		return Default(), false
	}
	if tag, ok := match(r.URL.Query().Get(LangParam)); ok {
		return tag, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := match(cookie.Value); ok {
			return tag, false
		}
	}
	if accepted, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language")); err == nil && len(accepted) > 0 {
		if _, index, confidence := tagMatcher.Match(accepted...); confidence != language.No {
			return supportedTags[index], false
		}
	}
	return Default(), false
}

// match accepts a supported tag or its bare language ("cs").
func match(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	if _, index, confidence := tagMatcher.Match(parsed); confidence >= language.High {
		return supportedTags[index], true
	}
	return language.Tag{}, false
}

// SetLanguageCookie remembers tag for a year.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int(langCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
