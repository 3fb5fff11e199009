// Package sprite resolves and downloads the pixel-art sprites shown under
// a lookup report. Sprites come from a public asset repository keyed by a
// slugified form of the display name; downloads are cached on disk.
package sprite

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// megaFormRe rewrites "mega-<name>[-x|-y]" into the asset repository's
// "<name>-mega[-x|-y]" file naming.
var megaFormRe = regexp.MustCompile(`^mega-(?P<name>.+?)(?P<xy>-x|-y)?$`)

// Slug converts a display name into the file name used by the sprite
// asset repository: "Mr. Mime" -> "mr-mime", "Nidoran♀" -> "nidoran-f",
// "Mega Charizard X" -> "charizard-mega-x".
func Slug(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ":", "")
	s = strings.ReplaceAll(s, "'", "")
	s = foldAccents(s)
	s = strings.ReplaceAll(s, "♀", "-f")
	s = strings.ReplaceAll(s, "♂", "-m")
	return megaFormRe.ReplaceAllString(s, "${name}-mega${xy}")
}

// URL returns the download URL for a name's sprite under the given base URL.
func URL(baseURL, name string) string {
	return strings.TrimRight(baseURL, "/") + "/" + Slug(name) + ".png"
}

// foldAccents strips combining marks so accented letters match their
// ASCII sprite file names ("flabébé" -> "flabebe").
func foldAccents(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}
