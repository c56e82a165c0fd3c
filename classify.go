package main

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Marker introduces a documentation line. It may be followed by one space
// before the content.
const Marker = "///"

// Kind classifies a single input line.
type Kind int

const (
	// CodeLine has no marker and is emitted unchanged.
	CodeLine Kind = iota
	// EmptyLine is a bare marker and becomes a blank line.
	EmptyLine
	// StructuralLine holds markdown syntax that must not be reflowed:
	// headings, tables, lists, quotes, fences and the like.
	StructuralLine
	// ProseLine is paragraph text eligible for reflow.
	ProseLine
)

func (k Kind) String() string {
	switch k {
	case CodeLine:
		return "code"
	case EmptyLine:
		return "empty"
	case StructuralLine:
		return "structural"
	case ProseLine:
		return "prose"
	default:
		return "unknown"
	}
}

// SourceLine is one line of an input file, without its line terminator.
type SourceLine struct {
	File   string
	Number int
	Text   string
}

// Classify reports how line is treated by the assembler.
func Classify(line string) Kind {
	if !strings.HasPrefix(line, Marker) {
		return CodeLine
	}
	content := Content(line)
	switch {
	case content == "":
		return EmptyLine
	case !startsWithLetter(content) || strings.Contains(content, "|"):
		// A pipe anywhere is taken as a table row.
		return StructuralLine
	default:
		return ProseLine
	}
}

// Content strips the marker and at most one following space. Lines without
// the marker are returned as is.
func Content(line string) string {
	rest, ok := strings.CutPrefix(line, Marker)
	if !ok {
		return line
	}
	return strings.TrimPrefix(rest, " ")
}

func startsWithLetter(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}
