package main

import (
	"strings"
	"unicode"
)

// Heading is an ATX heading found in a structural line.
type Heading struct {
	Level int
	Text  string
	Slug  string
}

// TOCEntry is one table of contents bullet, kept in source order.
type TOCEntry struct {
	Level int
	Text  string
	Slug  string
}

// ParseHeading recognizes content of the form "#... text". Marker runs with
// no space or no text after them, such as "###" or "#Title", are not
// headings and stay literal structural lines.
func ParseHeading(content string) (Heading, bool) {
	level := 0
	for level < len(content) && content[level] == '#' {
		level++
	}
	if level == 0 || level == len(content) || content[level] != ' ' {
		return Heading{}, false
	}
	text := strings.TrimSpace(content[level+1:])
	if text == "" {
		return Heading{}, false
	}
	return Heading{Level: level, Text: text, Slug: Slugify(text)}, true
}

// Slugify derives the anchor name of a heading: the text is lowercased,
// every rune other than a letter, digit, space, '-' or '_' is dropped, and
// each space becomes '-'. Duplicate slugs are not disambiguated.
func Slugify(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// tocBuilder accumulates entries for every heading seen during a run.
type tocBuilder struct {
	entries []TOCEntry
}

func (t *tocBuilder) add(h Heading) {
	t.entries = append(t.entries, TOCEntry{Level: h.Level, Text: h.Text, Slug: h.Slug})
}
