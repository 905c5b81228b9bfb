package locale

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"

	Default = English
)

// CookieName is the cookie the language switcher writes.
const CookieName = "locale"

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Parse normalizes a locale value such as "ar", "ar-EG" or "en_US" to a supported
// locale, falling back to English.
func Parse(value string) Locale {

	value = strings.TrimSpace(strings.ReplaceAll(value, "_", "-"))
	if value == "" {
		return Default
	}

	tag, err := language.Parse(value)
	if err != nil {
		return Default
	}

	matched, _, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default
	}

	base, _ := matched.Base()
	return Locale(base.String())
}

func (l Locale) Tag() language.Tag {

	if l == Arabic {
		return language.Arabic
	}

	return language.English
}

func (l Locale) String() string {
	return string(l)
}

func FromRequest(req *http.Request) Locale {

	cookie, err := req.Cookie(CookieName)
	if err != nil {
		return Default
	}

	return Parse(cookie.Value)
}
