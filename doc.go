// # docgen
//
// `docgen` turns documentation written as `///` comments inside source files
// into one Markdown document. It is meant to run as a build step that keeps a
// project README in sync with the headers and examples it describes.
//
// ## Usage
//
//	docgen [flags] FILE...
//
// Files are processed in the order given and the document is written to
// stdout, or to the path passed with `-o`.
//
// ## Line handling
//
// Every line of a non-Markdown input is looked at on its own:
//
//   - lines without the `///` marker are code and are copied unchanged.
//   - a bare marker becomes a blank line.
//   - content starting with something other than a letter, or containing a
//     `|`, is structural (headings, tables, lists, fences) and is copied
//     without the marker.
//   - anything else is prose. A prose line is joined to the next line with a
//     space when that line is prose too and starts with `/// ` followed by a
//     letter, so hard-wrapped comments read as one paragraph again.
//
// Files whose name ends in `.md` or `.markdown` are copied verbatim.
//
// ## Table of contents
//
// Each `#` heading gets a `<a name="slug"></a>` anchor on the line before it.
// The slug is the lowercased heading text with every character except
// letters, digits, `-` and `_` removed and spaces turned into `-`. Once all
// files are read a "Table of Contents" block, nested by heading level, is
// inserted right before the first anchor of the document.
//
// ## Errors
//
// Any input that cannot be read, or is not valid UTF-8, aborts the run and
// nothing is written.
package main
