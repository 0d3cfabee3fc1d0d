package reformat

// Kind distinguishes ordered from unordered list items.
type Kind int

const (
	// Unordered items start with -, * or +.
	Unordered Kind = iota
	// Ordered items start with digits followed by a period.
	Ordered
)

// Item describes a single list-item line.
type Item struct {
	// Indent is the number of leading whitespace characters.
	Indent int
	// Kind is the list kind.
	Kind Kind
	// Marker is the source marker glyph for unordered items, 0 for ordered.
	Marker byte
	// HasContent is false for a bare marker line (marker and nothing else).
	HasContent bool

	// tail is everything after the unordered marker glyph, including the
	// separating whitespace. Empty for ordered items, which pass through
	// verbatim.
	tail string
}

// sourceMarker is the marker identity used for list-to-list comparisons.
// Ordered items share a single identity regardless of their numbering.
func (it Item) sourceMarker() byte {
	if it.Kind == Ordered {
		return '.'
	}
	return it.Marker
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Classify decides whether a line is a list item and derives its
// descriptor. Lines that match neither marker grammar, including blank
// lines, are plain and return ok=false.
func Classify(line string) (Item, bool) {
	indent := 0
	for indent < len(line) && isSpace(line[indent]) {
		indent++
	}
	rest := line[indent:]
	if rest == "" {
		return Item{}, false
	}

	switch c := rest[0]; c {
	case '-', '*', '+':
		if len(rest) == 1 {
			return Item{Indent: indent, Kind: Unordered, Marker: c}, true
		}
		if !isSpace(rest[1]) {
			return Item{}, false
		}
		tail := rest[1:]
		hasContent := false
		for i := 0; i < len(tail); i++ {
			if !isSpace(tail[i]) {
				hasContent = true
				break
			}
		}
		return Item{Indent: indent, Kind: Unordered, Marker: c, HasContent: hasContent, tail: tail}, true
	default:
		digits := 0
		for digits < len(rest) && isDigit(rest[digits]) {
			digits++
		}
		if digits == 0 || digits+1 >= len(rest) {
			return Item{}, false
		}
		if rest[digits] != '.' || !isSpace(rest[digits+1]) {
			return Item{}, false
		}
		return Item{Indent: indent, Kind: Ordered, HasContent: true}, true
	}
}
