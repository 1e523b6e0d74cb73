package entity

import (
	"strings"
	"unicode"
)

var slugReplacements = map[rune]string{
	'à': "a", 'â': "a", 'ä': "a", 'á': "a",
	'ç': "c",
	'é': "e", 'è': "e", 'ê': "e", 'ë': "e",
	'î': "i", 'ï': "i", 'í': "i",
	'ô': "o", 'ö': "o", 'ó': "o",
	'ù': "u", 'û': "u", 'ü': "u", 'ú': "u",
	'œ': "oe",
	'’': "-", '\'': "-",
}

// Slugify normalise un titre en slug URL: minuscules, accents retirés,
// tout le reste remplacé par des tirets.
func Slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			if rep, ok := slugReplacements[r]; ok {
				b.WriteString(rep)
			} else if unicode.IsSpace(r) || r == '-' || r == '_' || r == '/' {
				b.WriteByte('-')
			}
			// tout autre caractère est ignoré
		}
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}
