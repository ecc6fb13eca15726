// Package banner_test verifies emoji classification, the terminal cell-width
// fixtures, and the bordered box layout.
package banner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lavrin/pathfind/banner"
)

func TestIsEmoji(t *testing.T) {
	for _, r := range "✨✅🚧❌" {
		assert.True(t, banner.IsEmoji(r), "expected %q to classify as emoji", r)
	}
	for _, r := range "Answer is 6 | -" {
		assert.False(t, banner.IsEmoji(r), "expected %q not to classify as emoji", r)
	}
}

func TestWidth_EmojiFixtures(t *testing.T) {
	// Each emoji occupies two cells; every inserted space adds one.
	assert.Equal(t, 8, banner.Width("✨✅🚧❌"))
	assert.Equal(t, 9, banner.Width("✨ ✅🚧❌"))
	assert.Equal(t, 10, banner.Width("✨ ✅ 🚧❌"))
	assert.Equal(t, 11, banner.Width("✨ ✅ 🚧 ❌"))
	assert.Equal(t, 12, banner.Width("✨ ✅ 🚧 ❌ "))

	assert.Equal(t, 27, banner.Width("✨ It works! Answer is 6 ✅"))
	assert.Equal(t, 43, banner.Width("🚧 Oh, shieeet, answer is 6 instead of 5 ❌"))
}

func TestWidth_NonEmoji(t *testing.T) {
	assert.Equal(t, 0, banner.Width(""))
	assert.Equal(t, 5, banner.Width("hello"))
	// Runes below the pictographic ranges are measured by runewidth:
	// Hangul Jamo (U+1100) are two cells, combining marks are zero.
	assert.Equal(t, 2, banner.Width("ᄀ"))
	assert.Equal(t, 1, banner.Width("é"))
}

func TestRender_Layout(t *testing.T) {
	got := banner.Render("hi")
	assert.Equal(t, "------\n| hi |\n------", got)
}

func TestRender_BorderMatchesEmojiWidth(t *testing.T) {
	msg := "✨ It works! Answer is 6 ✅"
	lines := strings.Split(banner.Render(msg), "\n")

	assert.Len(t, lines, 3)
	// Border is message width (27) plus four gutter cells.
	assert.Equal(t, strings.Repeat("-", 31), lines[0])
	assert.Equal(t, lines[0], lines[2])
	assert.Equal(t, "| "+msg+" |", lines[1])
}
