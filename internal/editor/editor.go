package editor

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/verso/internal/config"
	"github.com/zjrosen/verso/internal/log"
)

// lineNumberWidth is the number of digits reserved for the line-number
// gutter when it is enabled.
const lineNumberWidth = 4

// Position is a screen-relative cursor position. The absolute document row
// is Y plus the vertical viewport offset; the absolute column is X plus the
// horizontal offset.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ViewportOffset is the scroll amount subtracted to map document
// coordinates to screen coordinates.
type ViewportOffset struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SearchMatch marks one literal substring occurrence in document
// coordinates: X is the grapheme column of the match start, Y the 1-based
// line number.
type SearchMatch struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// direction of a character-wise cursor motion.
type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// Editor is the top-level state machine. It owns the Document, cursor and
// viewport exclusively; one input message is fully processed before the
// next is read, so no locking is needed anywhere in the core.
type Editor struct {
	document *Document
	cursor   Position
	offset   ViewportOffset

	mode    Mode
	overlay Overlay
	counts  CountBuilder

	matches     []SearchMatch
	matchIndex  int
	mouseBuffer []Position

	message      string
	messageIsErr bool

	helpVisible bool
	helpView    viewport.Model

	width  int
	height int

	cfg           *config.Config
	rowPrefixLen  int
	unsavedEdits  int
	lastSavedHash uint64
	quitting      bool
}

// New creates an Editor over the given document. The terminal dimensions
// arrive with the first tea.WindowSizeMsg.
func New(doc *Document, cfg *config.Config) *Editor {
	e := &Editor{
		document:      doc,
		mode:          ModeNormal,
		cfg:           cfg,
		lastSavedHash: doc.Hash(),
		helpView:      viewport.New(0, 0),
	}
	if cfg.ShowLineNumbers {
		e.rowPrefixLen = lineNumberWidth
	}
	e.helpView.SetContent(helpText())
	return e
}

// Init implements tea.Model.
func (e *Editor) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Exactly one message is processed per call;
// this is the sole dispatch point of the editor.
func (e *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		e.helpView.Width = msg.Width
		e.helpView.Height = e.textHeight()
	case tea.KeyMsg:
		e.handleKey(msg)
	case tea.MouseMsg:
		e.handleMouse(msg)
	}
	if e.quitting {
		return e, tea.Quit
	}
	return e, nil
}

// keyToString normalizes a key message into a registry key. Special keys
// use angle-bracket names; printable input maps to itself.
func keyToString(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyRunes:
		return string(msg.Runes)
	case tea.KeySpace:
		return " "
	case tea.KeyEscape:
		return "<escape>"
	case tea.KeyEnter:
		return "<enter>"
	case tea.KeyBackspace:
		return "<backspace>"
	case tea.KeyTab:
		return "<tab>"
	default:
		return ""
	}
}

// handleKey routes one keystroke. The overlay is checked before the base
// mode: while a command or search is being typed it intercepts everything.
func (e *Editor) handleKey(msg tea.KeyMsg) {
	if e.helpVisible {
		if keyToString(msg) == "q" {
			e.dismissHelp()
			return
		}
		// The help text can outgrow the screen; the viewport's own
		// bindings (j/k, page keys) scroll it.
		e.helpView, _ = e.helpView.Update(msg)
		return
	}
	key := keyToString(msg)
	if key == "" {
		return
	}
	if e.overlay.Active {
		e.handleOverlayKey(key)
		return
	}
	switch e.mode {
	case ModeInsert:
		e.handleInsertKey(msg, key)
	default:
		e.handleNormalKey(key)
	}
}

func (e *Editor) handleOverlayKey(key string) {
	switch key {
	case "<escape>":
		e.overlay.Clear()
	case "<enter>":
		e.submitOverlay()
		e.overlay.Clear()
	case "<backspace>":
		e.overlay.Pop()
	default:
		if !strings.HasPrefix(key, "<") {
			e.overlay.Push(key)
		}
	}
}

func (e *Editor) handleNormalKey(key string) {
	if key == "<escape>" {
		e.resetMessage()
		e.resetSearch()
		return
	}
	if isCountDigit(key, e.counts.IsEmpty()) {
		e.counts.Push(key)
		return
	}
	if cmd, ok := defaultRegistry.Get(ModeNormal, key); ok {
		// A pending count does not apply to immediate commands; drop it so
		// it cannot leak into the next motion.
		e.counts.Pop()
		log.Debug(log.CatEditor, "normal command", "id", cmd.ID())
		cmd.Execute(e)
		return
	}
	// Everything else is a repeatable motion: the pending count is consumed
	// even when the key is unbound.
	times := e.counts.Pop()
	if cmd, ok := defaultRegistry.GetRepeatable(key); ok {
		log.Debug(log.CatEditor, "motion", "id", cmd.ID(), "count", times)
		cmd.ExecuteN(e, times)
	}
}

// isCountDigit reports whether the key accumulates into the repetition
// buffer. "0" only counts once a repetition is already pending; bare "0" is
// the line-start motion.
func isCountDigit(key string, bufferEmpty bool) bool {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return false
	}
	return key != "0" || !bufferEmpty
}

func (e *Editor) handleInsertKey(msg tea.KeyMsg, key string) {
	switch key {
	case "<escape>":
		e.enterNormalMode()
		return
	case "<backspace>":
		e.insertModeBackspace()
	case "<enter>":
		e.document.InsertNewline(e.currentX(), e.currentRowIndex())
		e.gotoXY(0, e.currentRowIndex()+1)
	case "<tab>":
		for i := 0; i < spacesPerTab; i++ {
			e.document.Insert(" ", e.currentX(), e.currentRowIndex())
		}
		e.moveCursor(dirRight, spacesPerTab)
	default:
		if strings.HasPrefix(key, "<") || msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
			return
		}
		e.document.Insert(key, e.currentX(), e.currentRowIndex())
		e.moveCursor(dirRight, 1)
	}
	e.noteEdit()
}

// insertModeBackspace deletes the previous character, or joins the current
// line into the previous one when the cursor sits at column 0.
func (e *Editor) insertModeBackspace() {
	if e.currentX() == 0 {
		if e.currentRowIndex() == 0 {
			return
		}
		previousLen := 0
		if prev := e.document.GetRow(e.currentRowIndex() - 1); prev != nil {
			previousLen = prev.Len()
		}
		e.document.Delete(0, 0, e.currentRowIndex())
		e.gotoXY(previousLen, e.currentRowIndex()-1)
		return
	}
	e.document.Delete(e.currentX()-1, e.currentX(), e.currentRowIndex())
	e.moveCursor(dirLeft, 1)
}

// noteEdit counts an insert-mode edit toward the swap-file cadence: after
// SwapSaveEvery edits the buffer is autosaved to the swap file, bounding
// data loss on crash without touching the real file.
func (e *Editor) noteEdit() {
	e.unsavedEdits++
	if e.unsavedEdits >= e.cfg.SwapSaveEvery {
		if err := e.document.SaveToSwapFile(); err != nil {
			log.Warn(log.CatDocument, "swap save failed", "error", err)
			return
		}
		e.unsavedEdits = 0
	}
}

// handleMouse buffers a left press converted to a text-area position, and
// on release moves the cursor there when the target exists. Clicks outside
// the document are discarded.
func (e *Editor) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y >= e.textHeight() {
			return
		}
		x := msg.X - e.gutterWidth()
		if x < 0 {
			x = 0
		}
		e.mouseBuffer = append(e.mouseBuffer, Position{X: x, Y: msg.Y})
	case msg.Action == tea.MouseActionRelease:
		if len(e.mouseBuffer) == 0 {
			return
		}
		pos := e.mouseBuffer[len(e.mouseBuffer)-1]
		e.mouseBuffer = e.mouseBuffer[:len(e.mouseBuffer)-1]
		row := e.document.GetRow(pos.Y + e.offset.Rows)
		if row != nil && pos.X+e.offset.Cols <= row.Len() {
			e.cursor = pos
		}
	}
}

// --- geometry -------------------------------------------------------------

// textHeight is the number of screen rows available to document text; the
// status and message bars take the bottom two.
func (e *Editor) textHeight() int {
	if e.height <= 2 {
		return 0
	}
	return e.height - 2
}

func (e *Editor) middleLine() int {
	return e.textHeight() / 2
}

// gutterWidth is the number of columns taken by the line-number prefix.
func (e *Editor) gutterWidth() int {
	if e.rowPrefixLen == 0 {
		return 0
	}
	return e.rowPrefixLen + 1
}

func (e *Editor) currentRowIndex() int {
	return e.cursor.Y + e.offset.Rows
}

func (e *Editor) currentX() int {
	return e.cursor.X + e.offset.Cols
}

func (e *Editor) currentLineNumber() int {
	return e.currentRowIndex() + 1
}

var emptyRow = NewRow("")

// currentRow never returns nil; the cursor may transiently point past the
// document after structural edits.
func (e *Editor) currentRow() *Row {
	if row := e.document.GetRow(e.currentRowIndex()); row != nil {
		return row
	}
	return emptyRow
}

func (e *Editor) currentGrapheme() string {
	return e.currentRow().NthGrapheme(e.currentX())
}

// --- mode and messages ----------------------------------------------------

func (e *Editor) enterInsertMode() {
	e.mode = ModeInsert
}

func (e *Editor) enterNormalMode() {
	e.mode = ModeNormal
}

func (e *Editor) setMessage(msg string) {
	e.message = msg
	e.messageIsErr = false
}

func (e *Editor) setError(msg string) {
	e.message = msg
	e.messageIsErr = true
}

func (e *Editor) resetMessage() {
	e.message = ""
	e.messageIsErr = false
}

func (e *Editor) resetSearch() {
	e.matches = nil
	e.matchIndex = 0
}

// dismissHelp returns from the help overlay to the main screen.
func (e *Editor) dismissHelp() {
	e.helpVisible = false
	e.resetMessage()
}

func (e *Editor) isDirty() bool {
	return e.lastSavedHash != e.document.Hash()
}

// --- cursor movement ------------------------------------------------------

// moveCursor moves the cursor character-wise, scrolling by adjusting the
// viewport offset once the cursor hits a screen edge, and never moving past
// the document bounds. In Normal mode the column is re-clamped after the
// move so the cursor never rests past the end of a shorter line; Insert
// mode leaves it free to sit one past the last character for appends.
func (e *Editor) moveCursor(dir direction, times int) {
	maxY := e.textHeight() - 1
	maxX := e.width - 1
	x, y := e.cursor.X, e.cursor.Y
	offsetX, offsetY := e.offset.Cols, e.offset.Rows

	for i := 0; i < times; i++ {
		switch dir {
		case dirUp:
			if y == 0 {
				if offsetY > 0 {
					offsetY--
				}
			} else {
				y--
			}
		case dirDown:
			if y+offsetY < e.document.LastLineNumber()-1 {
				if y < maxY {
					y++
				} else {
					offsetY++
				}
			}
		case dirLeft:
			if x == 0 {
				if offsetX > 0 {
					offsetX--
				}
			} else {
				x--
			}
		case dirRight:
			if x+offsetX < e.currentRow().Len() {
				if x < maxX {
					x++
				} else {
					offsetX++
				}
			}
		}
	}
	e.cursor.Y = y
	e.offset.Cols = offsetX
	e.offset.Rows = offsetY

	if e.mode == ModeNormal {
		limit := e.currentRow().Len() - 1
		if limit < 0 {
			limit = 0
		}
		if x > limit {
			x = limit
		}
	}
	e.cursor.X = x
}

// gotoLine jumps to a 1-based line number and column.
func (e *Editor) gotoLine(lineNumber, x int) {
	e.gotoXY(x, lineNumber-1)
}

// gotoXY jumps to an absolute document position (x grapheme column, y row
// index), recomputing both viewport offsets.
func (e *Editor) gotoXY(x, y int) {
	e.jumpToColumn(x)
	e.jumpToRow(y)
}

// jumpToRow repositions the viewport for a direct vertical jump using the
// centering rule: pin to the top half of the document, pin to the bottom
// half, stay put when the target is already visible, otherwise recenter the
// target on the screen midpoint.
func (e *Editor) jumpToRow(y int) {
	maxLine := e.document.LastLineNumber()
	height := e.textHeight()
	middle := e.middleLine()

	if y < 0 {
		y = 0
	}
	if y > maxLine {
		y = maxLine
	}
	switch {
	case y < middle:
		e.offset.Rows = 0
		e.cursor.Y = y
	case y > maxLine-middle:
		e.offset.Rows = maxLine - height
		if e.offset.Rows < 0 {
			e.offset.Rows = 0
		}
		e.cursor.Y = y - e.offset.Rows
	case e.offset.Rows <= y && y <= e.offset.Rows+height:
		e.cursor.Y = y - e.offset.Rows
	default:
		e.offset.Rows = y - middle
		e.cursor.Y = middle
	}
}

// jumpToColumn repositions the horizontal viewport for a direct column
// jump. The offset is recomputed from the target column and screen width
// alone so repeated jumps of varying widths compose.
func (e *Editor) jumpToColumn(x int) {
	if x < 0 {
		x = 0
	}
	if x >= e.width && e.width > 0 {
		e.cursor.X = e.width - 1
		e.offset.Cols = x - e.width + 1
		return
	}
	e.cursor.X = x
	e.offset.Cols = 0
}

// --- search ring ----------------------------------------------------------

// gotoNextSearchMatch advances the cyclic match ring and jumps to the match
// start. Right after a fresh search the index sits on the last match, so
// the first advance lands on the first one.
func (e *Editor) gotoNextSearchMatch() {
	if len(e.matches) == 0 {
		return
	}
	if e.matchIndex == len(e.matches)-1 {
		e.matchIndex = 0
	} else {
		e.matchIndex++
	}
	e.gotoCurrentMatch()
}

func (e *Editor) gotoPreviousSearchMatch() {
	if len(e.matches) == 0 {
		return
	}
	if e.matchIndex == 0 {
		e.matchIndex = len(e.matches) - 1
	} else {
		e.matchIndex--
	}
	e.gotoCurrentMatch()
}

func (e *Editor) gotoCurrentMatch() {
	match := e.matches[e.matchIndex]
	e.setMessage(matchMessage(e.matchIndex, len(e.matches)))
	e.gotoLine(match.Start.Y, match.Start.X)
}

// --- quit and debug -------------------------------------------------------

// quit exits unless there are unsaved changes, which only a forced quit
// overrides.
func (e *Editor) quit(force bool) {
	if e.isDirty() && !force {
		e.setError("Unsaved changes! Run :q! to override")
		return
	}
	e.quitting = true
}

// editorState is the JSON shape of the :debug dump.
type editorState struct {
	CursorPosition Position       `json:"cursor_position"`
	Offset         ViewportOffset `json:"offset"`
	Mode           string         `json:"mode"`
	Overlay        string         `json:"overlay"`
	SearchMatches  []SearchMatch  `json:"search_matches"`
	MatchIndex     int            `json:"current_search_match_index"`
	UnsavedEdits   int            `json:"unsaved_edits"`
	LastSavedHash  uint64         `json:"last_saved_hash"`
	RowPrefixLen   int            `json:"row_prefix_length"`
	Filename       string         `json:"filename"`
	NumRows        int            `json:"num_rows"`
}

// dumpState serializes the editor state into the log file for debugging.
func (e *Editor) dumpState() {
	state := editorState{
		CursorPosition: e.cursor,
		Offset:         e.offset,
		Mode:           e.mode.String(),
		Overlay:        e.overlay.Display(),
		SearchMatches:  e.matches,
		MatchIndex:     e.matchIndex,
		UnsavedEdits:   e.unsavedEdits,
		LastSavedHash:  e.lastSavedHash,
		RowPrefixLen:   e.rowPrefixLen,
		Filename:       e.document.Filename,
		NumRows:        e.document.NumRows(),
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		log.ErrorErr(log.CatEditor, "state dump failed", err)
		return
	}
	log.Info(log.CatEditor, "state dump\n"+string(data))
}
