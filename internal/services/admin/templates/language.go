package templates

import (
	"net/url"

	admini18n "github.com/louisbranch/storeadmin/internal/services/admin/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageOption represents a supported language option in the admin UI.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

// LanguageOptions returns supported language options with active selection.
// Labels are each language's own name.
func LanguageOptions(page PageContext) []LanguageOption {
	supported := admini18n.Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  languageLabel(tag),
			Active: tag.String() == page.Lang,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	values, err := url.ParseQuery(page.CurrentQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set(admini18n.LangParam, tag)
	path := page.CurrentPath
	if path == "" {
		path = "/"
	}
	return path + "?" + values.Encode()
}

func languageLabel(tag language.Tag) string {
	base, _ := tag.Base()
	name := display.Self.Name(language.Make(base.String()))
	if name == "" {
		return tag.String()
	}
	return name
}
