package editor

// Edit and mode-entry commands for Normal mode. Unlike insert-mode edits,
// these do not feed the swap-file cadence; only sustained typing does.

// EnterInsertModeCommand switches to Insert mode (i).
type EnterInsertModeCommand struct {
	ModeEntryBase
}

func (c *EnterInsertModeCommand) Execute(e *Editor) {
	e.enterInsertMode()
}

// Keys returns the trigger key.
func (c *EnterInsertModeCommand) Keys() []string { return []string{"i"} }

// Mode returns the mode this command operates in.
func (c *EnterInsertModeCommand) Mode() Mode { return ModeNormal }

// ID returns the hierarchical identifier.
func (c *EnterInsertModeCommand) ID() string { return "mode.insert" }

// StartOverlayCommand activates the command-line overlay with a prefix
// (":" or "/").
type StartOverlayCommand struct {
	ModeEntryBase
	prefix string
	id     string
}

func (c *StartOverlayCommand) Execute(e *Editor) {
	e.overlay.Start(c.prefix)
}

// Keys returns the trigger key, which is the prefix itself.
func (c *StartOverlayCommand) Keys() []string { return []string{c.prefix} }

// Mode returns the mode this command operates in.
func (c *StartOverlayCommand) Mode() Mode { return ModeNormal }

// ID returns the hierarchical identifier.
func (c *StartOverlayCommand) ID() string { return c.id }

// DeleteLineCommand deletes the line under the cursor (d).
type DeleteLineCommand struct {
	EditBase
}

func (c *DeleteLineCommand) Execute(e *Editor) {
	e.document.DeleteRow(e.currentRowIndex())
	if e.cursor.Y >= e.document.NumRows()-1 {
		e.gotoLine(e.document.NumRows(), e.cursor.X)
		return
	}
	e.cursor.X = 0
}

// Keys returns the trigger key.
func (c *DeleteLineCommand) Keys() []string { return []string{"d"} }

// Mode returns the mode this command operates in.
func (c *DeleteLineCommand) Mode() Mode { return ModeNormal }

// ID returns the hierarchical identifier.
func (c *DeleteLineCommand) ID() string { return "edit.delete_line" }

// DeleteGraphemeCommand deletes the character under the cursor (x).
type DeleteGraphemeCommand struct {
	EditBase
}

func (c *DeleteGraphemeCommand) Execute(e *Editor) {
	e.document.Delete(e.currentX(), e.currentX(), e.currentRowIndex())
}

// Keys returns the trigger key.
func (c *DeleteGraphemeCommand) Keys() []string { return []string{"x"} }

// Mode returns the mode this command operates in.
func (c *DeleteGraphemeCommand) Mode() Mode { return ModeNormal }

// ID returns the hierarchical identifier.
func (c *DeleteGraphemeCommand) ID() string { return "edit.delete_char" }

// OpenLineCommand opens a new line below (o) or above (O) the current one
// and enters Insert mode.
type OpenLineCommand struct {
	EditBase
	key   string
	below bool
	id    string
}

func (c *OpenLineCommand) Execute(e *Editor) {
	if c.below {
		next := e.currentRowIndex() + 1
		e.document.InsertNewline(e.currentRow().Len(), e.currentRowIndex())
		e.gotoXY(0, next)
	} else {
		e.document.InsertNewline(0, e.currentRowIndex())
		e.gotoXY(0, e.currentRowIndex())
	}
	e.enterInsertMode()
}

// Keys returns the trigger key.
func (c *OpenLineCommand) Keys() []string { return []string{c.key} }

// Mode returns the mode this command operates in.
func (c *OpenLineCommand) Mode() Mode { return ModeNormal }

// ID returns the hierarchical identifier.
func (c *OpenLineCommand) ID() string { return c.id }

// AppendToLineCommand moves one past the end of the line and enters Insert
// mode (A).
type AppendToLineCommand struct {
	EditBase
}

func (c *AppendToLineCommand) Execute(e *Editor) {
	e.enterInsertMode()
	last := e.currentRow().Len() - 1
	if last < 0 {
		last = 0
	}
	e.jumpToColumn(last)
	e.moveCursor(dirRight, 1)
}

// Keys returns the trigger key.
func (c *AppendToLineCommand) Keys() []string { return []string{"A"} }

// Mode returns the mode this command operates in.
func (c *AppendToLineCommand) Mode() Mode { return ModeNormal }

// ID returns the hierarchical identifier.
func (c *AppendToLineCommand) ID() string { return "edit.append_to_line" }

// JoinLinesCommand joins the next line onto the current one with a space
// separator (J).
type JoinLinesCommand struct {
	EditBase
}

func (c *JoinLinesCommand) Execute(e *Editor) {
	if e.currentLineNumber() >= e.document.NumRows() {
		return
	}
	e.document.JoinRowWithPrevious(e.currentRowIndex()+1, " ")
	last := e.currentRow().Len() - 1
	if last < 0 {
		last = 0
	}
	e.jumpToColumn(last)
}

// Keys returns the trigger key.
func (c *JoinLinesCommand) Keys() []string { return []string{"J"} }

// Mode returns the mode this command operates in.
func (c *JoinLinesCommand) Mode() Mode { return ModeNormal }

// ID returns the hierarchical identifier.
func (c *JoinLinesCommand) ID() string { return "edit.join_lines" }

// newDefaultRegistry wires every built-in command into a registry. This is
// the editor's whole (mode, key) → operation table in one place.
func newDefaultRegistry() *Registry {
	r := NewRegistry()

	// Immediate Normal-mode commands.
	r.Register(&EnterInsertModeCommand{})
	r.Register(&StartOverlayCommand{prefix: commandPrefix, id: "overlay.command"})
	r.Register(&StartOverlayCommand{prefix: searchPrefix, id: "overlay.search"})
	r.Register(&DocumentBoundaryCommand{key: "g", boundary: BoundaryStart, id: "move.document_start"})
	r.Register(&DocumentBoundaryCommand{key: "G", boundary: BoundaryEnd, id: "move.document_end"})
	r.Register(&LineBoundaryCommand{key: "0", boundary: BoundaryStart, id: "move.line_start"})
	r.Register(&LineBoundaryCommand{key: "$", boundary: BoundaryEnd, id: "move.line_end"})
	r.Register(&FirstNonWhitespaceCommand{})
	r.Register(&ScreenLineCommand{key: "H", id: "move.screen_top"})
	r.Register(&ScreenLineCommand{key: "M", id: "move.screen_middle"})
	r.Register(&ScreenLineCommand{key: "L", id: "move.screen_bottom"})
	r.Register(&MatchingSymbolCommand{})
	r.Register(&SearchMatchCommand{key: "n", forward: true, id: "search.next"})
	r.Register(&SearchMatchCommand{key: "N", forward: false, id: "search.previous"})
	r.Register(&DeleteLineCommand{})
	r.Register(&DeleteGraphemeCommand{})
	r.Register(&OpenLineCommand{key: "o", below: true, id: "edit.open_line_below"})
	r.Register(&OpenLineCommand{key: "O", below: false, id: "edit.open_line_above"})
	r.Register(&AppendToLineCommand{})
	r.Register(&JoinLinesCommand{})

	// Repeatable motions, honoring the pending count.
	r.RegisterRepeatable(&MoveCursorCommand{key: "h", dir: dirLeft, id: "move.left"})
	r.RegisterRepeatable(&MoveCursorCommand{key: "j", dir: dirDown, id: "move.down"})
	r.RegisterRepeatable(&MoveCursorCommand{key: "k", dir: dirUp, id: "move.up"})
	r.RegisterRepeatable(&MoveCursorCommand{key: "l", dir: dirRight, id: "move.right"})
	r.RegisterRepeatable(&WordMotionCommand{key: "w", boundary: BoundaryEnd, id: "move.word_forward"})
	r.RegisterRepeatable(&WordMotionCommand{key: "b", boundary: BoundaryStart, id: "move.word_backward"})
	r.RegisterRepeatable(&ParagraphMotionCommand{key: "}", boundary: BoundaryEnd, id: "move.paragraph_forward"})
	r.RegisterRepeatable(&ParagraphMotionCommand{key: "{", boundary: BoundaryStart, id: "move.paragraph_backward"})
	r.RegisterRepeatable(&PercentageJumpCommand{})

	return r
}
