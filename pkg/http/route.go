package http

import (
	"fmt"
	"strings"
	"unicode"
)

type Route struct {
	Method string
	URL    string
}

func (r Route) Name() string {
	return getRouteName(r.Method, r.URL)
}

func getRouteName(method, path string) string {
	path = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}

		if r == '{' || r == '}' {
			return -1
		}

		return '_'
	}, strings.Trim(path, "/"))
	return fmt.Sprintf("%s_%s", strings.ToUpper(method), path)
}
