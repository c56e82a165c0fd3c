package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Assembler concatenates the documentation of several input files into one
// markdown document. It owns the output buffer and the table of contents for
// a single run.
type Assembler struct {
	buf bytes.Buffer
	toc tocBuilder
}

// NewAssembler returns an empty Assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// AddFile reads path and appends its documentation. A read failure is
// fatal for the run; callers must not emit the partial document.
func (a *Assembler) AddFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return a.AddSource(path, data)
}

// AddSource appends the documentation of one file. Markdown files are copied
// verbatim; everything else is scanned line by line.
func (a *Assembler) AddSource(name string, data []byte) error {
	if !utf8.Valid(data) {
		return fmt.Errorf("%s: %w", name, ErrInvalidEncoding)
	}
	if isMarkdown(name) {
		a.buf.Write(data)
	} else {
		a.scan(splitLines(name, data))
	}
	a.buf.WriteByte('\n')
	return nil
}

// Entries returns the table of contents entries collected so far.
func (a *Assembler) Entries() []TOCEntry {
	return append([]TOCEntry(nil), a.toc.entries...)
}

// Bytes returns the assembled document with the table of contents spliced in
// before the first anchor.
func (a *Assembler) Bytes() []byte {
	return spliceTOC(a.buf.Bytes(), buildTOC(a.toc.entries))
}

func (a *Assembler) scan(lines []SourceLine) {
	cur := lineCursor{lines: lines}
	for {
		line, ok := cur.Next()
		if !ok {
			return
		}
		switch Classify(line.Text) {
		case CodeLine:
			a.buf.WriteString(line.Text)
			a.buf.WriteByte('\n')
		case EmptyLine:
			a.buf.WriteByte('\n')
		case StructuralLine:
			a.structural(Content(line.Text))
		case ProseLine:
			next, hasNext := cur.Peek()
			reflow(&a.buf, Content(line.Text), next.Text, hasNext)
		}
	}
}

func (a *Assembler) structural(content string) {
	h, ok := ParseHeading(content)
	if !ok {
		a.buf.WriteString(content)
		a.buf.WriteByte('\n')
		return
	}
	writeHeading(&a.buf, h, content)
	a.toc.add(h)
}

func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}

// splitLines breaks data into lines on '\n', dropping one trailing '\r' per
// line. A final newline does not start an extra empty line.
func splitLines(name string, data []byte) []SourceLine {
	if len(data) == 0 {
		return nil
	}
	raw := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	lines := make([]SourceLine, 0, len(raw))
	for i, line := range raw {
		lines = append(lines, SourceLine{
			File:   name,
			Number: i + 1,
			Text:   strings.TrimSuffix(line, "\r"),
		})
	}
	return lines
}

// lineCursor walks lines in order with one line of lookahead.
type lineCursor struct {
	lines []SourceLine
	pos   int
}

func (c *lineCursor) Next() (SourceLine, bool) {
	if c.pos >= len(c.lines) {
		return SourceLine{}, false
	}
	line := c.lines[c.pos]
	c.pos++
	return line, true
}

func (c *lineCursor) Peek() (SourceLine, bool) {
	if c.pos >= len(c.lines) {
		return SourceLine{}, false
	}
	return c.lines[c.pos], true
}
