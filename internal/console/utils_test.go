package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByPiece(t *testing.T) {
	testCases := []struct {
		input string
		sep   string
		array []string
	}{
		{"a b c", " ", []string{"a", "b", "c"}},
		{"o 1 2;f 0 0", ";", []string{"o 1 2", "f 0 0"}},
		{"foo\nbar\nbaz\n\nbazz", "\n", []string{"foo", "bar", "baz", "", "bazz"}},
	}
	for _, test := range testCases {
		var pieces []string
		for i, p := range byPiece(test.input, test.sep) {
			assert.Equal(t, len(pieces), i)
			pieces = append(pieces, p)
		}
		assert.Equal(t, test.array, pieces)
	}
}

func TestByPieceStopsEarly(t *testing.T) {
	var pieces []string
	for _, p := range byPiece("a;b;c", ";") {
		pieces = append(pieces, p)
		if p == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, pieces)
}
