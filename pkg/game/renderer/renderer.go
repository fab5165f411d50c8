// Package renderer defines the rendering backend interface and the message
// markup shared by all backends.
//
// Messages may contain markup of the form NAME{operand}, e.g. ROOM{C3} or
// GOOD{+7}. Backends turn markup into styling; without a backend the operand
// is kept as plain text.
package renderer

import (
	"fmt"
	"regexp"
	"strings"
)

// MarkupPattern matches NAME{operand} markup
var MarkupPattern = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:+?!\-]+)}`)

// ApplyMarkup formats a message and resolves its markup with the current renderer
func ApplyMarkup(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return StripMarkup(fmt.Sprintf(msg, args...))
}

// StripMarkup replaces markup with its plain operand
func StripMarkup(s string) string {
	return MarkupPattern.ReplaceAllStringFunc(s, func(m string) string {
		return MarkupPattern.FindStringSubmatch(m)[2]
	})
}

// ResolveMarkup replaces each NAME{operand} in s using style. Unknown names
// are replaced with an error marker so they show up during development.
func ResolveMarkup(s string, style func(name, operand string) (string, bool)) string {
	matches := MarkupPattern.FindAllStringSubmatch(s, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		val, ok := style(function, operand)
		if !ok {
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		s = strings.Replace(s, match[0], val, 1)
	}

	return s
}

// FormatPoints renders a signed point change, e.g. "+7" or "-3"
func FormatPoints(v int) string {
	return fmt.Sprintf("%+d", v)
}
