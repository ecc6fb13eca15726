// Package banner renders bordered one-line message boxes for terminal output
// and measures how many terminal cells a string occupies.
//
// Emoji from the common pictographic blocks render two cells wide in
// virtually every terminal, and getting their width wrong tears the box
// border apart. Width therefore forces those ranges to 2 and defers to
// github.com/mattn/go-runewidth for everything else (East Asian wide
// characters, combining marks, control runes).
package banner

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// IsEmoji reports whether r falls in one of the pictographic Unicode ranges
// rendered double-width: emoticons, miscellaneous symbols and pictographs,
// transport symbols, regional indicators, dingbats, and enclosed characters.
func IsEmoji(r rune) bool {
	switch {
	case r >= 0x1F600 && r <= 0x1F64F, // emoticons
		r >= 0x1F300 && r <= 0x1F5FF, // misc symbols and pictographs
		r >= 0x1F680 && r <= 0x1F6FF, // transport and map symbols
		r >= 0x1F1E0 && r <= 0x1F1FF, // regional indicators
		r >= 0x2702 && r <= 0x27B0,   // dingbats
		r >= 0x24C2 && r <= 0x1F251:  // enclosed characters
		return true
	}

	return false
}

// Width returns the number of terminal cells s occupies: 2 for each emoji
// rune, the runewidth answer for everything else.
func Width(s string) int {
	var cells int
	for _, r := range s {
		if IsEmoji(r) {
			cells += 2
			continue
		}
		cells += runewidth.RuneWidth(r)
	}

	return cells
}

// Render wraps msg in a three-line dashed box sized to its on-screen width:
//
//	-----------------------------
//	| ✨ It works! Answer is 6 ✅ |
//	-----------------------------
//
// The border spans the message width plus the "| " and " |" gutters.
func Render(msg string) string {
	border := strings.Repeat("-", Width(msg)+4)

	var b strings.Builder
	b.Grow(3*len(border) + len(msg) + 8)
	b.WriteString(border)
	b.WriteString("\n| ")
	b.WriteString(msg)
	b.WriteString(" |\n")
	b.WriteString(border)

	return b.String()
}
