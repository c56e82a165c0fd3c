package main

import (
	"bytes"
	"strings"
)

// continuationPrefix is the marker plus the single space a continuation line
// must start with.
const continuationPrefix = Marker + " "

// continues reports whether next carries on the paragraph of the prose line
// right before it. It needs the marker, exactly one space, a letter, and no
// structural content.
func continues(next string) bool {
	if len(next) < len(continuationPrefix)+1 || !strings.HasPrefix(next, continuationPrefix) {
		return false
	}
	if !startsWithLetter(next[len(continuationPrefix):]) {
		return false
	}
	return Classify(next) != StructuralLine
}

// reflow writes the content of a prose line. When the following line
// continues the paragraph the line ends with a space instead of a newline so
// the next prose line lands on the same output line. hasNext is false at the
// end of a file.
func reflow(buf *bytes.Buffer, content, next string, hasNext bool) {
	buf.WriteString(content)
	if hasNext && continues(next) {
		buf.WriteByte(' ')
		return
	}
	buf.WriteByte('\n')
}
