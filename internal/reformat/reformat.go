// Package reformat rewrites markdown documents so that lists are tight:
// blank lines between list items are removed, unordered marker glyphs are
// normalized, and a blank separator is reinserted only where two adjacent
// blocks genuinely need one.
package reformat

import "strings"

// headerDelim delimits a YAML frontmatter block when it appears as the
// very first line of the document.
const headerDelim = "---"

// reformatter holds the transducer state for one document. A fresh
// instance is used per invocation; nothing is shared across documents.
type reformatter struct {
	inHeader     bool
	headerClosed bool

	inList        bool
	prevMarker    byte // source marker of the previous list line, 0 when none
	prevIndent    int
	lastTopMarker byte // source marker most recently seen at indent 0
	outMarker     byte // '-' or '*', the glyph currently emitted at indent 0
	seenList      bool

	lastLine string
	out      []string
}

// Transform reformats a sequence of lines. It is total: any input,
// including an empty one, produces a deterministic output.
func Transform(lines []string) []string {
	r := &reformatter{outMarker: '-', out: make([]string, 0, len(lines))}
	for i, line := range lines {
		r.feed(i, line)
	}
	return r.out
}

// TransformText reformats a whole document. Non-empty output always ends
// in exactly one newline; splitting a newline-terminated document naively
// would push a phantom blank line through the machine and lose the
// terminator whenever the document ends in a list.
func TransformText(content string) string {
	if content == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	out := Transform(lines)
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

func (r *reformatter) feed(index int, line string) {
	if index == 0 && !r.headerClosed && line == headerDelim {
		r.inHeader = true
		r.emit(line)
		r.lastLine = line
		return
	}
	if r.inHeader {
		r.emit(line)
		r.lastLine = line
		if line == headerDelim {
			r.inHeader = false
			r.headerClosed = true
		}
		return
	}

	if it, ok := Classify(line); ok {
		r.feedItem(index, line, it)
		return
	}
	r.feedPlain(line)
}

func (r *reformatter) feedPlain(line string) {
	if strings.TrimSpace(line) == "" {
		if r.inList {
			// Blank separators between list items are dropped. List mode
			// is retained so the next item is still compared against the
			// previous one.
			return
		}
		r.emit("")
		r.lastLine = ""
		return
	}

	if r.inList {
		// A list block ends here; one separator, then back to plain text.
		r.emit("")
		r.inList = false
		r.prevMarker = 0
		r.prevIndent = 0
		r.lastTopMarker = 0
	}
	out := normalizeTrailing(line)
	r.emit(out)
	r.lastLine = out
}

func (r *reformatter) feedItem(index int, line string, it Item) {
	if !r.inList {
		if r.seenList {
			// Alternation is global across the document: every fresh
			// top-level list after the first flips the output glyph.
			r.outMarker = flip(r.outMarker)
		}
		if index > 0 && strings.TrimSpace(r.lastLine) != "" {
			r.emit("")
		}
	} else if it.Indent == 0 {
		switch {
		case r.prevIndent == 0 && it.sourceMarker() != r.prevMarker:
			r.emit("")
			r.outMarker = flip(r.outMarker)
		case r.prevIndent > 0 && r.lastTopMarker != 0 && it.sourceMarker() != r.lastTopMarker:
			r.emit("")
			r.outMarker = flip(r.outMarker)
		}
	}

	out := r.render(line, it)
	r.emit(out)

	r.inList = true
	r.seenList = true
	r.prevMarker = it.sourceMarker()
	r.prevIndent = it.Indent
	if it.Indent == 0 {
		r.lastTopMarker = it.sourceMarker()
	}
	r.lastLine = out
}

// render rewrites the marker glyph of an unordered item. Ordered items
// pass through, numbering intact. Nested unordered items never alternate.
func (r *reformatter) render(line string, it Item) string {
	if it.Kind == Ordered {
		return normalizeTrailing(line)
	}
	marker := byte('-')
	if it.Indent == 0 {
		marker = r.outMarker
	}
	if !it.HasContent {
		return line[:it.Indent] + string(marker)
	}
	return normalizeTrailing(line[:it.Indent] + string(marker) + it.tail)
}

func (r *reformatter) emit(line string) {
	r.out = append(r.out, line)
}

func flip(marker byte) byte {
	if marker == '-' {
		return '*'
	}
	return '-'
}

// normalizeTrailing collapses an exactly-two-space hard break into a
// trailing backslash and strips any other trailing whitespace. Lines with
// no content always normalize to empty.
func normalizeTrailing(line string) string {
	body := strings.TrimRight(line, " \t")
	if body == "" {
		return ""
	}
	if line == body+"  " {
		return body + `\`
	}
	return body
}
