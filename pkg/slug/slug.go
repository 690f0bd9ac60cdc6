package slug

import (
	"fmt"
	"strings"
	"unicode"
)

// Make converts a display name into a URL-safe slug: lowercase, runs of
// non-alphanumerics collapsed to single hyphens, leading/trailing hyphens
// trimmed. "Rumah Sakit Umum" -> "rumah-sakit-umum".
func Make(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	prevHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Unique derives a slug from name and appends -2, -3, ... until taken
// reports it free. taken is expected to close over the uniqueness query.
func Unique(name string, taken func(slug string) (bool, error)) (string, error) {
	base := Make(name)
	candidate := base
	for i := 2; ; i++ {
		inUse, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !inUse {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
