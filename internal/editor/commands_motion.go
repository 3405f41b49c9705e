package editor

// Motion commands reposition the cursor and viewport without touching
// content. Repeatable motions honor the pending repetition count; the rest
// act once per keystroke.

// MoveCursorCommand is the character-wise h/j/k/l family.
type MoveCursorCommand struct {
	MotionBase
	key string
	dir direction
	id  string
}

// ExecuteN moves the cursor n times in the command's direction.
func (c *MoveCursorCommand) ExecuteN(e *Editor, n int) {
	e.moveCursor(c.dir, n)
}

// Keys returns the trigger key.
func (c *MoveCursorCommand) Keys() []string { return []string{c.key} }

// ID returns the hierarchical identifier.
func (c *MoveCursorCommand) ID() string { return c.id }

// WordMotionCommand moves to the next or previous word start in the current
// row (w / b).
type WordMotionCommand struct {
	MotionBase
	key      string
	boundary Boundary
	id       string
}

// ExecuteN applies the word motion n times against the current row.
func (c *WordMotionCommand) ExecuteN(e *Editor, n int) {
	for i := 0; i < n; i++ {
		x := FindWordBoundary(e.currentRow(), e.currentX(), c.boundary)
		e.jumpToColumn(x)
	}
}

// Keys returns the trigger key.
func (c *WordMotionCommand) Keys() []string { return []string{c.key} }

// ID returns the hierarchical identifier.
func (c *WordMotionCommand) ID() string { return c.id }

// ParagraphMotionCommand moves to the blank line bounding the next or
// previous paragraph ({ / }).
type ParagraphMotionCommand struct {
	MotionBase
	key      string
	boundary Boundary
	id       string
}

// ExecuteN applies the paragraph motion n times.
func (c *ParagraphMotionCommand) ExecuteN(e *Editor, n int) {
	for i := 0; i < n; i++ {
		target := FindParagraphBoundary(e.document, e.currentLineNumber(), c.boundary)
		e.gotoLine(target, 0)
	}
}

// Keys returns the trigger key.
func (c *ParagraphMotionCommand) Keys() []string { return []string{c.key} }

// ID returns the hierarchical identifier.
func (c *ParagraphMotionCommand) ID() string { return c.id }

// PercentageJumpCommand jumps to n% of the document (%).
type PercentageJumpCommand struct {
	MotionBase
}

// ExecuteN jumps to the line at n percent of the document, capped at 100.
func (c *PercentageJumpCommand) ExecuteN(e *Editor, n int) {
	if n > 100 {
		n = 100
	}
	e.gotoLine(e.document.LastLineNumber()*n/100, 0)
}

// Keys returns the trigger key.
func (c *PercentageJumpCommand) Keys() []string { return []string{"%"} }

// ID returns the hierarchical identifier.
func (c *PercentageJumpCommand) ID() string { return "move.percentage" }

// DocumentBoundaryCommand jumps to the first or last line (g / G).
type DocumentBoundaryCommand struct {
	MotionBase
	key      string
	boundary Boundary
	id       string
}

func (c *DocumentBoundaryCommand) Execute(e *Editor) {
	if c.boundary == BoundaryStart {
		e.gotoLine(1, 0)
		return
	}
	e.gotoLine(e.document.LastLineNumber(), 0)
}

// Keys returns the trigger key.
func (c *DocumentBoundaryCommand) Keys() []string { return []string{c.key} }

// Mode returns the mode this command operates in.
func (c *DocumentBoundaryCommand) Mode() Mode { return ModeNormal }

// ID returns the hierarchical identifier.
func (c *DocumentBoundaryCommand) ID() string { return c.id }

// LineBoundaryCommand jumps to the start or end of the current line (0 / $).
type LineBoundaryCommand struct {
	MotionBase
	key      string
	boundary Boundary
	id       string
}

func (c *LineBoundaryCommand) Execute(e *Editor) {
	if c.boundary == BoundaryStart {
		e.jumpToColumn(0)
		return
	}
	last := e.currentRow().Len() - 1
	if last < 0 {
		last = 0
	}
	e.jumpToColumn(last)
}

// Keys returns the trigger key.
func (c *LineBoundaryCommand) Keys() []string { return []string{c.key} }

// Mode returns the mode this command operates in.
func (c *LineBoundaryCommand) Mode() Mode { return ModeNormal }

// ID returns the hierarchical identifier.
func (c *LineBoundaryCommand) ID() string { return c.id }

// FirstNonWhitespaceCommand jumps to the first non-blank character (^).
type FirstNonWhitespaceCommand struct {
	MotionBase
}

func (c *FirstNonWhitespaceCommand) Execute(e *Editor) {
	if x, ok := FindFirstNonWhitespace(e.currentRow()); ok {
		e.jumpToColumn(x)
	}
}

// Keys returns the trigger key.
func (c *FirstNonWhitespaceCommand) Keys() []string { return []string{"^"} }

// Mode returns the mode this command operates in.
func (c *FirstNonWhitespaceCommand) Mode() Mode { return ModeNormal }

// ID returns the hierarchical identifier.
func (c *FirstNonWhitespaceCommand) ID() string { return "move.first_non_blank" }

// ScreenLineCommand jumps to the top, middle or bottom visible line
// (H / M / L).
type ScreenLineCommand struct {
	MotionBase
	key string
	id  string
}

func (c *ScreenLineCommand) Execute(e *Editor) {
	switch c.key {
	case "H":
		e.gotoLine(e.offset.Rows+1, 0)
	case "M":
		e.gotoLine(e.offset.Rows+e.middleLine()+1, 0)
	default: // L
		e.gotoLine(e.offset.Rows+e.textHeight(), 0)
	}
}

// Keys returns the trigger key.
func (c *ScreenLineCommand) Keys() []string { return []string{c.key} }

// Mode returns the mode this command operates in.
func (c *ScreenLineCommand) Mode() Mode { return ModeNormal }

// ID returns the hierarchical identifier.
func (c *ScreenLineCommand) ID() string { return c.id }

// MatchingSymbolCommand jumps to the bracket or quote matching the one
// under the cursor (m).
type MatchingSymbolCommand struct {
	MotionBase
}

func (c *MatchingSymbolCommand) Execute(e *Editor) {
	g := e.currentGrapheme()
	x, y := e.currentX(), e.currentRowIndex()
	if _, ok := matchingSymbols[g]; ok {
		if col, row, found := FindMatchingClosingSymbol(e.document, x, y); found {
			e.gotoXY(col, row)
		}
		return
	}
	if _, ok := openingSymbols[g]; ok {
		if col, row, found := FindMatchingOpeningSymbol(e.document, x, y); found {
			e.gotoXY(col, row)
		}
	}
}

// Keys returns the trigger key.
func (c *MatchingSymbolCommand) Keys() []string { return []string{"m"} }

// Mode returns the mode this command operates in.
func (c *MatchingSymbolCommand) Mode() Mode { return ModeNormal }

// ID returns the hierarchical identifier.
func (c *MatchingSymbolCommand) ID() string { return "move.matching_symbol" }

// SearchMatchCommand advances or retreats through the search-match ring
// (n / N).
type SearchMatchCommand struct {
	MotionBase
	key     string
	forward bool
	id      string
}

func (c *SearchMatchCommand) Execute(e *Editor) {
	if c.forward {
		e.gotoNextSearchMatch()
		return
	}
	e.gotoPreviousSearchMatch()
}

// Keys returns the trigger key.
func (c *SearchMatchCommand) Keys() []string { return []string{c.key} }

// Mode returns the mode this command operates in.
func (c *SearchMatchCommand) Mode() Mode { return ModeNormal }

// ID returns the hierarchical identifier.
func (c *SearchMatchCommand) ID() string { return c.id }
