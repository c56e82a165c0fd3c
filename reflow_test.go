package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContinues(t *testing.T) {
	tests := []struct {
		next string
		want bool
	}{
		{"/// world", true},
		{"/// a", true},
		{"/// été", true},
		{"///world", false},
		{"/// ", false},
		{"///", false},
		{"/// 1st", false},
		{"/// # Heading", false},
		{"/// | cell |", false},
		{"/// left | right", false},
		{"///  indented", false},
		{"//// x", false},
		{"int main() {}", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.next, func(t *testing.T) {
			assert.Equal(t, tt.want, continues(tt.next))
		})
	}
}

func TestReflow(t *testing.T) {
	t.Run("joins continuation", func(t *testing.T) {
		var buf bytes.Buffer
		reflow(&buf, "Hello", "/// world", true)
		assert.Equal(t, "Hello ", buf.String())
	})
	t.Run("breaks before structural", func(t *testing.T) {
		var buf bytes.Buffer
		reflow(&buf, "Hello", "/// - item", true)
		assert.Equal(t, "Hello\n", buf.String())
	})
	t.Run("breaks before empty", func(t *testing.T) {
		var buf bytes.Buffer
		reflow(&buf, "Hello", "///", true)
		assert.Equal(t, "Hello\n", buf.String())
	})
	t.Run("breaks at end of file", func(t *testing.T) {
		var buf bytes.Buffer
		reflow(&buf, "Hello", "", false)
		assert.Equal(t, "Hello\n", buf.String())
	})
}

func TestReflowParagraphs(t *testing.T) {
	src := "/// First paragraph\n" +
		"/// spans three\n" +
		"/// lines.\n" +
		"///\n" +
		"/// Second one\n" +
		"/// # Heading\n" +
		"/// Before a table\n" +
		"/// | x |\n" +
		"/// Last line"
	asm := NewAssembler()
	assert.NoError(t, asm.AddSource("doc.h", []byte(src)))
	body := string(asm.buf.Bytes())
	assert.Contains(t, body, "First paragraph spans three lines.\n\nSecond one\n")
	assert.Contains(t, body, "Before a table\n| x |\n")
	assert.Contains(t, body, "Last line\n\n")
	assert.NotContains(t, body, Marker)
}
