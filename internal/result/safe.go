package result

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// safeTransform decomposes, strips combining marks and recomposes, so that
// accented file names fold to their ASCII skeletons before escaping.
var safeTransform = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SafeName returns a URL-safe key for a test file name. Characters outside
// [A-Za-z0-9_.-] are replaced by underscores after unicode folding. The
// transform is stable: equal names always yield equal keys.
func SafeName(name string) string {
	folded, _, err := transform.String(safeTransform, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
