package rest

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// contentDisposition builds an attachment header for the stored filename:
// a plain ASCII filename for old clients plus an RFC 5987 filename* when
// the original needs it.
func contentDisposition(filename string) string {
	ascii := asciiFold(filename)
	if ascii == "" {
		ascii = "file"
	}

	if ascii == filename {
		return fmt.Sprintf(`attachment; filename=%q`, ascii)
	}

	return fmt.Sprintf(
		`attachment; filename=%q; filename*=UTF-8''%s`,
		ascii,
		rfc5987Encode(filename),
	)
}

// asciiFold strips diacritics and replaces what still cannot travel inside
// a quoted-string with '_'.
func asciiFold(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('_')
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return strings.TrimSpace(b.String())
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }

// rfc5987Encode percent-encodes everything outside the attr-char set.
func rfc5987Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case strings.IndexByte("!#$&+-.^_`|~", c) >= 0:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}

	return b.String()
}
