package editor

// Boundary selects the direction of a bidirectional motion.
type Boundary int

const (
	// BoundaryStart targets the start of a word, paragraph, line or document.
	BoundaryStart Boundary = iota
	// BoundaryEnd targets the end.
	BoundaryEnd
)

// The navigator functions are pure: they compute target positions from a
// document snapshot and a starting position without touching editor state,
// which keeps them independently testable.

// matchingSymbols maps opening symbols to their closers. Quotes match
// themselves.
var matchingSymbols = map[string]string{
	`"`: `"`,
	`'`: `'`,
	"{": "}",
	"<": ">",
	"(": ")",
	"[": "]",
}

// openingSymbols is the reverse mapping, closers to openers.
var openingSymbols = map[string]string{
	`"`: `"`,
	`'`: `'`,
	"}": "{",
	">": "<",
	")": "(",
	"]": "[",
}

// FindParagraphBoundary returns the line number of the next (BoundaryEnd) or
// previous (BoundaryStart) blank line from the given 1-based line number, or
// the document end/start when no blank line remains.
func FindParagraphBoundary(doc *Document, lineNumber int, boundary Boundary) int {
	switch boundary {
	case BoundaryEnd:
		for n := lineNumber + 1; n <= doc.LastLineNumber(); n++ {
			if row := doc.RowForLineNumber(n); row != nil && row.IsEmpty() {
				return n
			}
		}
		return doc.LastLineNumber()
	default:
		for n := lineNumber - 1; n >= 1; n-- {
			if row := doc.RowForLineNumber(n); row != nil && row.IsEmpty() {
				return n
			}
		}
		return 1
	}
}

// FindWordBoundary returns the grapheme index of the next (BoundaryEnd) or
// previous (BoundaryStart) word start in the row, scanning from x. Motion
// across lines is not handled here; callers invoke this once per repeated
// motion against the current row only.
func FindWordBoundary(row *Row, x int, boundary Boundary) int {
	if boundary == BoundaryEnd {
		return findNextWordStart(row, x)
	}
	return findPrevWordStart(row, x)
}

// findNextWordStart skips the rest of the current run of same-class
// graphemes, then any whitespace, landing on the next word start.
func findNextWordStart(row *Row, pos int) int {
	graphemes := Graphemes(row.Text())
	n := len(graphemes)
	if pos >= n {
		return pos
	}
	current := graphemeClass(graphemes[pos])
	for pos < n && graphemeClass(graphemes[pos]) == current && current != classWhitespace {
		pos++
	}
	for pos < n && graphemeClass(graphemes[pos]) == classWhitespace {
		pos++
	}
	return pos
}

// findPrevWordStart walks backward over whitespace, then to the start of the
// run of same-class graphemes it lands in.
func findPrevWordStart(row *Row, pos int) int {
	if pos <= 0 {
		return 0
	}
	graphemes := Graphemes(row.Text())
	n := len(graphemes)
	if n == 0 {
		return 0
	}
	pos--
	if pos >= n {
		pos = n - 1
	}
	for pos > 0 && graphemeClass(graphemes[pos]) == classWhitespace {
		pos--
	}
	if pos <= 0 {
		return 0
	}
	class := graphemeClass(graphemes[pos])
	for pos > 0 && graphemeClass(graphemes[pos-1]) == class {
		pos--
	}
	return pos
}

// FindFirstNonWhitespace returns the index of the first grapheme in the row
// that is not whitespace, and false when the row is blank.
func FindFirstNonWhitespace(row *Row) (int, bool) {
	for i, g := range Graphemes(row.Text()) {
		if graphemeClass(g) != classWhitespace {
			return i, true
		}
	}
	return 0, false
}

// FindMatchingClosingSymbol resolves the opening bracket or quote at the
// given absolute document position (x grapheme column, y row index) to its
// matching closer, scanning forward and tracking nesting depth. Returns
// false when the symbol is unbalanced.
func FindMatchingClosingSymbol(doc *Document, x, y int) (int, int, bool) {
	row := doc.GetRow(y)
	if row == nil {
		return 0, 0, false
	}
	opener := row.NthGrapheme(x)
	closer, ok := matchingSymbols[opener]
	if !ok {
		return 0, 0, false
	}
	depth := 0
	for rowIdx := y; rowIdx < doc.NumRows(); rowIdx++ {
		current := doc.GetRow(rowIdx)
		graphemes := Graphemes(current.Text())
		start := 0
		if rowIdx == y {
			start = x + 1
		}
		for col := start; col < len(graphemes); col++ {
			g := graphemes[col]
			switch {
			case g == closer && depth == 0:
				return col, rowIdx, true
			case g == closer:
				depth--
			case g == opener && opener != closer:
				depth++
			}
		}
	}
	return 0, 0, false
}

// FindMatchingOpeningSymbol is the backward counterpart: it resolves a
// closing bracket or quote to its opener.
func FindMatchingOpeningSymbol(doc *Document, x, y int) (int, int, bool) {
	row := doc.GetRow(y)
	if row == nil {
		return 0, 0, false
	}
	closer := row.NthGrapheme(x)
	opener, ok := openingSymbols[closer]
	if !ok {
		return 0, 0, false
	}
	depth := 0
	for rowIdx := y; rowIdx >= 0; rowIdx-- {
		current := doc.GetRow(rowIdx)
		graphemes := Graphemes(current.Text())
		end := len(graphemes) - 1
		if rowIdx == y {
			end = x - 1
		}
		for col := end; col >= 0; col-- {
			g := graphemes[col]
			switch {
			case g == opener && depth == 0:
				return col, rowIdx, true
			case g == opener:
				depth--
			case g == closer && opener != closer:
				depth++
			}
		}
	}
	return 0, 0, false
}
