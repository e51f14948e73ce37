package util

import (
	"math/rand/v2"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomString generates a random lowercase string of length n.
func RandomString(n int) string {
	var sb strings.Builder
	sb.Grow(n)

	for range n {
		sb.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}

	return sb.String()
}

// RandomNoteTitle generates a short random title.
func RandomNoteTitle() string {
	return strings.ToUpper(RandomString(1)) + RandomString(7)
}

// RandomMarkup generates a small note body that exercises lists and inline formats.
func RandomMarkup() string {
	word := RandomString(5)
	return "- [ ] **" + word + "**\n  - _" + RandomString(4) + "_\n1. " + RandomString(6)
}
