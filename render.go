package main

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	anchorPrefix = `<a name="`
	tocHeading   = "## Table of Contents"
)

// Anchor returns the inline tag placed on the line before a heading.
func Anchor(slug string) string {
	return anchorPrefix + slug + `"></a>`
}

func writeHeading(buf *bytes.Buffer, h Heading, line string) {
	buf.WriteString(Anchor(h.Slug))
	buf.WriteByte('\n')
	buf.WriteString(line)
	buf.WriteByte('\n')
}

// buildTOC renders the table of contents block, indenting each bullet by
// two spaces per level below one. It returns nil when there are no entries.
func buildTOC(entries []TOCEntry) []byte {
	if len(entries) == 0 {
		return nil
	}
	var buf bytes.Buffer
	buf.WriteString(tocHeading + "\n\n")
	for _, entry := range entries {
		indent := strings.Repeat("  ", max(entry.Level-1, 0))
		fmt.Fprintf(&buf, "%s- [%s](#%s)\n", indent, entry.Text, entry.Slug)
	}
	buf.WriteString("\n")
	return buf.Bytes()
}

// spliceTOC inserts toc right before the first anchor tag in doc. Without an
// anchor the toc leads the document.
func spliceTOC(doc, toc []byte) []byte {
	if len(toc) == 0 {
		return append([]byte{}, doc...)
	}
	idx := bytes.Index(doc, []byte(anchorPrefix))
	if idx < 0 {
		idx = 0
	}
	content := make([]byte, 0, len(doc)+len(toc))
	content = append(content, doc[:idx]...)
	content = append(content, toc...)
	content = append(content, doc[idx:]...)
	return content
}
