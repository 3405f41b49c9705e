package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/verso/internal/config"
)

func newTestEditor(t *testing.T, lines ...string) *Editor {
	t.Helper()
	cfg := config.Defaults()
	e := New(docFromLines(lines...), &cfg)
	e.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return e
}

// typeKeys feeds printable characters one keystroke at a time.
func typeKeys(e *Editor, keys string) {
	for _, r := range keys {
		e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func pressSpecial(e *Editor, key tea.KeyType) {
	e.Update(tea.KeyMsg{Type: key})
}

// ============================================================================
// Counts and Basic Motions
// ============================================================================

// TestMotion_Basic verifies hjkl move one step
func TestMotion_Basic(t *testing.T) {
	e := newTestEditor(t, "hello", "world")
	typeKeys(e, "j")
	require.Equal(t, 2, e.currentLineNumber())
	typeKeys(e, "l")
	require.Equal(t, 1, e.currentX())
	typeKeys(e, "k")
	require.Equal(t, 1, e.currentLineNumber())
	typeKeys(e, "h")
	require.Equal(t, 0, e.currentX())
}

// TestMotion_StopsAtBounds verifies motions at the document edges are no-ops
func TestMotion_StopsAtBounds(t *testing.T) {
	e := newTestEditor(t, "ab", "cd")
	typeKeys(e, "k")
	require.Equal(t, 1, e.currentLineNumber())
	typeKeys(e, "h")
	require.Equal(t, 0, e.currentX())
	typeKeys(e, "jj")
	require.Equal(t, 2, e.currentLineNumber())
	typeKeys(e, "lll")
	// Normal mode keeps the cursor on the last grapheme.
	require.Equal(t, 1, e.currentX())
}

// TestMotion_Count verifies a typed count repeats the following motion
func TestMotion_Count(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	e := newTestEditor(t, lines...)

	typeKeys(e, "12j")
	require.Equal(t, 13, e.currentLineNumber())
	require.True(t, e.counts.IsEmpty(), "count buffer should be consumed")
}

// TestMotion_CountWithZero verifies 0 inside a count is a digit, bare 0 is
// the line-start motion
func TestMotion_CountWithZero(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "text here"
	}
	e := newTestEditor(t, lines...)

	typeKeys(e, "10j")
	require.Equal(t, 11, e.currentLineNumber())

	typeKeys(e, "$")
	require.NotEqual(t, 0, e.currentX())
	typeKeys(e, "0")
	require.Equal(t, 0, e.currentX())
}

// TestMotion_CountConsumedByUnboundKey verifies a pending count does not leak
// into the next motion when the key is unbound
func TestMotion_CountConsumedByUnboundKey(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "x"
	}
	e := newTestEditor(t, lines...)

	typeKeys(e, "5z")
	require.True(t, e.counts.IsEmpty())
	typeKeys(e, "j")
	require.Equal(t, 2, e.currentLineNumber())
}

// TestMotion_WordForwardBackward verifies w and b through the registry
func TestMotion_WordForwardBackward(t *testing.T) {
	e := newTestEditor(t, "foo bar baz")
	typeKeys(e, "w")
	require.Equal(t, 4, e.currentX())
	typeKeys(e, "w")
	require.Equal(t, 8, e.currentX())
	typeKeys(e, "b")
	require.Equal(t, 4, e.currentX())
}

// TestMotion_DocumentBoundaries verifies g and G
func TestMotion_DocumentBoundaries(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "x"
	}
	e := newTestEditor(t, lines...)

	typeKeys(e, "G")
	require.Equal(t, 50, e.currentLineNumber())
	typeKeys(e, "g")
	require.Equal(t, 1, e.currentLineNumber())
}

// TestMotion_Percentage verifies {count}% jumps proportionally
func TestMotion_Percentage(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "x"
	}
	e := newTestEditor(t, lines...)

	typeKeys(e, "50%")
	require.Equal(t, 50, e.currentLineNumber())
}

// TestMotion_Paragraph verifies { and } target blank lines
func TestMotion_Paragraph(t *testing.T) {
	e := newTestEditor(t, "one", "two", "", "three")
	typeKeys(e, "}")
	require.Equal(t, 3, e.currentLineNumber())
	typeKeys(e, "}")
	require.Equal(t, 4, e.currentLineNumber())
	typeKeys(e, "{")
	require.Equal(t, 3, e.currentLineNumber())
}

// TestJumpToRow_CentersTarget verifies a far jump recenters the viewport on
// the screen midpoint
func TestJumpToRow_CentersTarget(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "x"
	}
	e := newTestEditor(t, lines...)

	e.gotoLine(50, 0)
	require.Equal(t, 50, e.currentLineNumber())
	require.Equal(t, e.middleLine(), e.cursor.Y)

	// Near the top the viewport pins instead of centering.
	e.gotoLine(2, 0)
	require.Equal(t, 0, e.offset.Rows)
	require.Equal(t, 1, e.cursor.Y)
}

// ============================================================================
// Insert Mode
// ============================================================================

// TestInsertMode_TypeAndEscape verifies typed text lands in the document
func TestInsertMode_TypeAndEscape(t *testing.T) {
	e := newTestEditor(t, "")
	typeKeys(e, "i")
	require.Equal(t, ModeInsert, e.mode)

	typeKeys(e, "hi")
	pressSpecial(e, tea.KeyEscape)
	require.Equal(t, ModeNormal, e.mode)
	require.Equal(t, "hi", e.currentRow().Text())
	require.True(t, e.isDirty())
}

// TestInsertMode_Enter verifies Enter splits the line at the cursor
func TestInsertMode_Enter(t *testing.T) {
	e := newTestEditor(t, "hello world")
	typeKeys(e, "i")
	e.jumpToColumn(5)
	pressSpecial(e, tea.KeyEnter)

	require.Equal(t, []string{"hello", " world"}, docLines(e.document))
	require.Equal(t, 2, e.currentLineNumber())
	require.Equal(t, 0, e.currentX())
}

// TestInsertMode_Tab verifies Tab inserts spaces
func TestInsertMode_Tab(t *testing.T) {
	e := newTestEditor(t, "x")
	typeKeys(e, "i")
	pressSpecial(e, tea.KeyTab)
	require.Equal(t, "    x", e.currentRow().Text())
	require.Equal(t, 4, e.currentX())
}

// TestInsertMode_Backspace verifies deletion before the cursor
func TestInsertMode_Backspace(t *testing.T) {
	e := newTestEditor(t, "ab")
	typeKeys(e, "i")
	e.jumpToColumn(2)
	pressSpecial(e, tea.KeyBackspace)
	require.Equal(t, "a", e.currentRow().Text())
	require.Equal(t, 1, e.currentX())
}

// TestInsertMode_BackspaceAtColumnZero verifies the line join places the
// cursor at the previous line's old end
func TestInsertMode_BackspaceAtColumnZero(t *testing.T) {
	e := newTestEditor(t, "hello", "world")
	typeKeys(e, "ji")
	pressSpecial(e, tea.KeyBackspace)

	require.Equal(t, []string{"helloworld"}, docLines(e.document))
	require.Equal(t, 1, e.currentLineNumber())
	require.Equal(t, 5, e.currentX())
}

// TestInsertMode_BackspaceAtDocumentStart verifies no-op on the first column
// of the first line
func TestInsertMode_BackspaceAtDocumentStart(t *testing.T) {
	e := newTestEditor(t, "hello")
	typeKeys(e, "i")
	pressSpecial(e, tea.KeyBackspace)
	require.Equal(t, []string{"hello"}, docLines(e.document))
}

// TestSwapCadence verifies the periodic autosave fires after the configured
// number of insert-mode edits
func TestSwapCadence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")

	cfg := config.Defaults()
	cfg.SwapSaveEvery = 3
	doc := docFromLines("")
	doc.Filename = path
	e := New(doc, &cfg)
	e.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	typeKeys(e, "iab")
	_, err := os.Stat(SwapFilename(path))
	require.True(t, os.IsNotExist(err), "swap should not exist before the cadence")

	typeKeys(e, "c")
	_, err = os.Stat(SwapFilename(path))
	require.NoError(t, err, "swap should exist after the third edit")
	require.Equal(t, 0, e.unsavedEdits)
}

// ============================================================================
// Normal-Mode Edits
// ============================================================================

// TestDeleteLine verifies d removes the current line
func TestDeleteLine(t *testing.T) {
	e := newTestEditor(t, "one", "two", "three")
	typeKeys(e, "jd")
	require.Equal(t, []string{"one", "three"}, docLines(e.document))
}

// TestDeleteLine_LastLine verifies deleting the last line moves the cursor up
func TestDeleteLine_LastLine(t *testing.T) {
	e := newTestEditor(t, "one", "two")
	typeKeys(e, "Gd")
	require.Equal(t, []string{"one"}, docLines(e.document))
	require.Equal(t, 1, e.currentLineNumber())
}

// TestDeleteGrapheme verifies x removes the character under the cursor
func TestDeleteGrapheme(t *testing.T) {
	e := newTestEditor(t, "hello")
	typeKeys(e, "lx")
	require.Equal(t, "hllo", e.currentRow().Text())
}

// TestOpenLineBelow verifies o inserts a row below and enters insert mode
func TestOpenLineBelow(t *testing.T) {
	e := newTestEditor(t, "one", "two")
	typeKeys(e, "o")
	require.Equal(t, ModeInsert, e.mode)
	require.Equal(t, []string{"one", "", "two"}, docLines(e.document))
	require.Equal(t, 2, e.currentLineNumber())
	require.Equal(t, 0, e.currentX())
}

// TestOpenLineAbove verifies O inserts a row above
func TestOpenLineAbove(t *testing.T) {
	e := newTestEditor(t, "one", "two")
	typeKeys(e, "jO")
	require.Equal(t, ModeInsert, e.mode)
	require.Equal(t, []string{"one", "", "two"}, docLines(e.document))
	require.Equal(t, 2, e.currentLineNumber())
}

// TestAppendToLine verifies A enters insert mode one past the line end
func TestAppendToLine(t *testing.T) {
	e := newTestEditor(t, "hello")
	typeKeys(e, "A")
	require.Equal(t, ModeInsert, e.mode)
	require.Equal(t, 5, e.currentX())

	typeKeys(e, "!")
	require.Equal(t, "hello!", e.currentRow().Text())
}

// TestJoinLines verifies J joins with a single space
func TestJoinLines(t *testing.T) {
	e := newTestEditor(t, "hello", "world")
	typeKeys(e, "J")
	require.Equal(t, []string{"hello world"}, docLines(e.document))
}

// TestJoinLines_LastLine verifies J on the last line is a no-op
func TestJoinLines_LastLine(t *testing.T) {
	e := newTestEditor(t, "hello", "world")
	typeKeys(e, "jJ")
	require.Equal(t, []string{"hello", "world"}, docLines(e.document))
}

// ============================================================================
// Search
// ============================================================================

func search(e *Editor, pattern string) {
	typeKeys(e, "/"+pattern)
	pressSpecial(e, tea.KeyEnter)
}

// TestSearch_JumpsToFirstMatch verifies a fresh search lands on the first
// match with a position message
func TestSearch_JumpsToFirstMatch(t *testing.T) {
	e := newTestEditor(t, "alpha beta", "gamma", "beta beta")
	search(e, "beta")

	require.Len(t, e.matches, 2)
	require.Equal(t, 1, e.currentLineNumber())
	require.Equal(t, 6, e.currentX())
	require.Equal(t, "Match 1/2", e.message)
}

// TestSearch_MatchEndSpansPattern verifies the recorded end is start plus
// the pattern length
func TestSearch_MatchEndSpansPattern(t *testing.T) {
	e := newTestEditor(t, "say hello")
	search(e, "hello")

	require.Len(t, e.matches, 1)
	m := e.matches[0]
	require.Equal(t, 4, m.Start.X)
	require.Equal(t, 9, m.End.X)
	require.Equal(t, m.Start.Y, m.End.Y)
}

// TestSearch_RingWraps verifies n and N cycle through matches in both
// directions
func TestSearch_RingWraps(t *testing.T) {
	e := newTestEditor(t, "beta", "x", "beta", "y", "beta")
	search(e, "beta")
	require.Equal(t, 1, e.currentLineNumber())

	typeKeys(e, "n")
	require.Equal(t, 3, e.currentLineNumber())
	typeKeys(e, "n")
	require.Equal(t, 5, e.currentLineNumber())
	typeKeys(e, "n")
	require.Equal(t, 1, e.currentLineNumber(), "n wraps to the first match")

	typeKeys(e, "N")
	require.Equal(t, 5, e.currentLineNumber(), "N wraps backward")
}

// TestSearch_NoMatches verifies an error message and an empty ring
func TestSearch_NoMatches(t *testing.T) {
	e := newTestEditor(t, "hello")
	search(e, "zzz")

	require.Empty(t, e.matches)
	require.True(t, e.messageIsErr)
	typeKeys(e, "n") // must not panic or move
	require.Equal(t, 1, e.currentLineNumber())
}

// TestSearch_EscapeClears verifies Escape in normal mode resets matches and
// the message bar
func TestSearch_EscapeClears(t *testing.T) {
	e := newTestEditor(t, "beta")
	search(e, "beta")
	require.NotEmpty(t, e.matches)

	pressSpecial(e, tea.KeyEscape)
	require.Empty(t, e.matches)
	require.Equal(t, "", e.message)
}

// ============================================================================
// Overlay and Ex Commands
// ============================================================================

// TestOverlay_EscapeCancels verifies Escape discards the typed command
func TestOverlay_EscapeCancels(t *testing.T) {
	e := newTestEditor(t, "hello")
	typeKeys(e, ":q")
	require.True(t, e.overlay.Active)

	pressSpecial(e, tea.KeyEscape)
	require.False(t, e.overlay.Active)
	require.False(t, e.quitting)
}

// TestOverlay_BackspaceOnEmptyCancels verifies popping the last character
// closes the overlay
func TestOverlay_BackspaceOnEmptyCancels(t *testing.T) {
	e := newTestEditor(t, "hello")
	typeKeys(e, ":")
	pressSpecial(e, tea.KeyBackspace)
	require.False(t, e.overlay.Active)
}

// TestCommand_GotoLine verifies :<number> jumps to that line
func TestCommand_GotoLine(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "x"
	}
	e := newTestEditor(t, lines...)

	typeKeys(e, ":7")
	pressSpecial(e, tea.KeyEnter)
	require.Equal(t, 7, e.currentLineNumber())
}

// TestCommand_GotoLineResetsColumn verifies :<number> lands on column 0
// even when the cursor sat further right
func TestCommand_GotoLineResetsColumn(t *testing.T) {
	e := newTestEditor(t, "hello world", "second", "third")
	typeKeys(e, "lllll")
	require.Equal(t, 5, e.currentX())

	typeKeys(e, ":3")
	pressSpecial(e, tea.KeyEnter)
	require.Equal(t, 3, e.currentLineNumber())
	require.Equal(t, 0, e.currentX())
}

// TestCommand_SignedNumberIsNotAJump verifies ":-3" is rejected rather than
// parsed as a line number
func TestCommand_SignedNumberIsNotAJump(t *testing.T) {
	e := newTestEditor(t, "hello")
	typeKeys(e, ":-3")
	pressSpecial(e, tea.KeyEnter)
	require.True(t, e.messageIsErr)
	require.Contains(t, e.message, "-3")
}

// TestCommand_Unknown verifies unknown commands show an error
func TestCommand_Unknown(t *testing.T) {
	e := newTestEditor(t, "hello")
	typeKeys(e, ":bogus")
	pressSpecial(e, tea.KeyEnter)
	require.True(t, e.messageIsErr)
	require.Contains(t, e.message, "bogus")
}

// TestCommand_Write verifies :w persists the buffer and clears the dirty flag
func TestCommand_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")

	e := newTestEditor(t, "hello")
	e.document.Filename = path
	typeKeys(e, "ix")
	pressSpecial(e, tea.KeyEscape)
	require.True(t, e.isDirty())

	typeKeys(e, ":w")
	pressSpecial(e, tea.KeyEnter)

	require.False(t, e.isDirty())
	require.Equal(t, "File successfully saved", e.message)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "xhello\n", string(content))
}

// TestCommand_WriteTrimsTrailingSpaces verifies :w strips trailing whitespace
func TestCommand_WriteTrimsTrailingSpaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")

	e := newTestEditor(t, "hello   ")
	e.document.Filename = path
	typeKeys(e, ":w")
	pressSpecial(e, tea.KeyEnter)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(content))
}

// TestCommand_WriteAs verifies :w <name> rebinds the document
func TestCommand_WriteAs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "renamed.txt")

	e := newTestEditor(t, "hello")
	typeKeys(e, ":w "+path)
	pressSpecial(e, tea.KeyEnter)

	require.Equal(t, path, e.document.Filename)
	require.Equal(t, "Buffer saved to "+path, e.message)
	_, err := os.Stat(path)
	require.NoError(t, err)
}

// TestCommand_WriteAsWithSpaces verifies everything after :w joins into one
// filename
func TestCommand_WriteAsWithSpaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my file.txt")

	e := newTestEditor(t, "hello")
	typeKeys(e, ":w "+path)
	pressSpecial(e, tea.KeyEnter)

	require.Equal(t, path, e.document.Filename)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(content))
}

// TestCommand_WriteNoName verifies :w on an unbound buffer reports an error
func TestCommand_WriteNoName(t *testing.T) {
	e := newTestEditor(t, "hello")
	typeKeys(e, ":w")
	pressSpecial(e, tea.KeyEnter)
	require.True(t, e.messageIsErr)
	require.Equal(t, "No file name", e.message)
}

// TestCommand_QuitDirty verifies :q refuses to drop unsaved changes
func TestCommand_QuitDirty(t *testing.T) {
	e := newTestEditor(t, "hello")
	typeKeys(e, "ix")
	pressSpecial(e, tea.KeyEscape)

	typeKeys(e, ":q")
	pressSpecial(e, tea.KeyEnter)
	require.False(t, e.quitting)
	require.True(t, e.messageIsErr)

	typeKeys(e, ":q!")
	pressSpecial(e, tea.KeyEnter)
	require.True(t, e.quitting)
}

// TestCommand_QuitClean verifies :q exits an unmodified buffer
func TestCommand_QuitClean(t *testing.T) {
	e := newTestEditor(t, "hello")
	typeKeys(e, ":q")
	pressSpecial(e, tea.KeyEnter)
	require.True(t, e.quitting)
}

// TestCommand_ToggleLineNumbers verifies :ln flips the gutter
func TestCommand_ToggleLineNumbers(t *testing.T) {
	e := newTestEditor(t, "hello")
	require.Equal(t, 0, e.rowPrefixLen)

	typeKeys(e, ":ln")
	pressSpecial(e, tea.KeyEnter)
	require.Equal(t, lineNumberWidth, e.rowPrefixLen)

	typeKeys(e, ":ln")
	pressSpecial(e, tea.KeyEnter)
	require.Equal(t, 0, e.rowPrefixLen)
}

// TestCommand_Help verifies :help shows the overlay and q dismisses it
func TestCommand_Help(t *testing.T) {
	e := newTestEditor(t, "hello")
	typeKeys(e, ":help")
	pressSpecial(e, tea.KeyEnter)
	require.True(t, e.helpVisible)

	typeKeys(e, "q")
	require.False(t, e.helpVisible)
}

// TestCommand_HelpScrolls verifies the help screen scrolls when the text is
// taller than the window
func TestCommand_HelpScrolls(t *testing.T) {
	e := newTestEditor(t, "hello", "world")
	typeKeys(e, ":help")
	pressSpecial(e, tea.KeyEnter)
	require.True(t, e.helpVisible)

	typeKeys(e, "j")
	require.Equal(t, 1, e.helpView.YOffset)
	typeKeys(e, "k")
	require.Equal(t, 0, e.helpView.YOffset)

	// Keys consumed by the help screen never reach normal mode.
	require.Equal(t, Position{}, e.cursor)
}

// TestCommand_New verifies :new binds an empty document and starts insert
// mode so the user can type straight away
func TestCommand_New(t *testing.T) {
	e := newTestEditor(t, "old content")
	typeKeys(e, ":new fresh.txt")
	pressSpecial(e, tea.KeyEnter)

	require.Equal(t, "fresh.txt", e.document.Filename)
	require.Equal(t, []string{""}, docLines(e.document))
	require.Equal(t, 1, e.currentLineNumber())
	require.Equal(t, ModeInsert, e.mode)
}

// TestCommand_OpenReplacesBuffer verifies :o swaps in the named file, even
// over unsaved changes
func TestCommand_OpenReplacesBuffer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc\n"), 0o600))

	e := newTestEditor(t, "hello")
	typeKeys(e, "ix")
	pressSpecial(e, tea.KeyEscape)
	require.True(t, e.isDirty())

	typeKeys(e, ":o "+path)
	pressSpecial(e, tea.KeyEnter)
	require.Equal(t, path, e.document.Filename)
	require.Equal(t, []string{"abc"}, docLines(e.document))
	require.False(t, e.isDirty())
}

// TestCommand_OpenMissingFile verifies :open of a nonexistent path binds an
// empty buffer to it
func TestCommand_OpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	e := newTestEditor(t, "hello")
	typeKeys(e, ":open "+path)
	pressSpecial(e, tea.KeyEnter)
	require.Equal(t, path, e.document.Filename)
	require.Equal(t, []string{""}, docLines(e.document))
}

// ============================================================================
// Mouse
// ============================================================================

// TestMouse_ClickMovesCursor verifies press then release on a valid cell
func TestMouse_ClickMovesCursor(t *testing.T) {
	e := newTestEditor(t, "hello world", "second line")
	e.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 3, Y: 1})
	e.Update(tea.MouseMsg{Action: tea.MouseActionRelease, X: 3, Y: 1})

	require.Equal(t, 2, e.currentLineNumber())
	require.Equal(t, 3, e.currentX())
}

// TestMouse_ClickPastLineEndIgnored verifies clicks beyond the row length do
// not move the cursor
func TestMouse_ClickPastLineEndIgnored(t *testing.T) {
	e := newTestEditor(t, "ab")
	e.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 40, Y: 0})
	e.Update(tea.MouseMsg{Action: tea.MouseActionRelease, X: 40, Y: 0})

	require.Equal(t, 0, e.currentX())
	require.Equal(t, 1, e.currentLineNumber())
}

// ============================================================================
// Rendering
// ============================================================================

// TestView_ShowsStatusAndFiller verifies tilde rows and the mode in the
// status bar
func TestView_ShowsStatusAndFiller(t *testing.T) {
	e := newTestEditor(t, "hello")
	view := e.View()
	require.Contains(t, view, "hello")
	require.Contains(t, view, "~")
	require.Contains(t, view, "NORMAL")
	require.Contains(t, view, "[No Name]")
}

// TestView_CursorReverseVideo verifies the cursor overlay wraps the current
// grapheme
func TestView_CursorReverseVideo(t *testing.T) {
	e := newTestEditor(t, "hello")
	view := e.View()
	require.Contains(t, view, cursorOn+"h"+cursorOff)
}

// TestView_WelcomeOnScratchBuffer verifies the welcome line on an empty
// unbound document
func TestView_WelcomeOnScratchBuffer(t *testing.T) {
	cfg := config.Defaults()
	e := New(NewEmptyDocument(""), &cfg)
	e.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	require.Contains(t, e.View(), "verso editor")
}

// TestView_LineNumbers verifies the zero-filled gutter when enabled
func TestView_LineNumbers(t *testing.T) {
	cfg := config.Defaults()
	cfg.ShowLineNumbers = true
	e := New(docFromLines("hello"), &cfg)
	e.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	require.Contains(t, e.View(), "0001 ")
}

// TestView_InsertModeInStatusBar verifies the mode indicator tracks mode
func TestView_InsertModeInStatusBar(t *testing.T) {
	e := newTestEditor(t, "hello")
	typeKeys(e, "i")
	require.Contains(t, e.View(), "INSERT")
}

// TestView_OverlayEchoesInput verifies the message bar shows the overlay as
// it is typed
func TestView_OverlayEchoesInput(t *testing.T) {
	e := newTestEditor(t, "hello")
	typeKeys(e, "/abc")
	require.Contains(t, e.View(), "/abc")
}

// TestView_StatsToggle verifies :stats adds line and word counts
func TestView_StatsToggle(t *testing.T) {
	e := newTestEditor(t, "hello world", "more words here")
	typeKeys(e, ":stats")
	pressSpecial(e, tea.KeyEnter)
	require.Contains(t, e.View(), "[2L/5W]")
}

// TestView_HeightIsStable verifies the frame always fills the terminal
func TestView_HeightIsStable(t *testing.T) {
	e := newTestEditor(t, "hello")
	lines := strings.Split(e.View(), "\n")
	require.Equal(t, 24, len(lines))
}
