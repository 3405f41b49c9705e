package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zjrosen/verso/internal/log"
)

// Ex-style command names accepted after ":".
const (
	cmdQuit        = "q"
	cmdForceQuit   = "q!"
	cmdWrite       = "w"
	cmdWriteQuit   = "wq"
	cmdOpen        = "open"
	cmdOpenShort   = "o"
	cmdNew         = "new"
	cmdLineNumbers = "ln"
	cmdStats       = "stats"
	cmdHelp        = "help"
	cmdDebug       = "debug"
)

// submitOverlay runs whatever the user typed into the overlay, dispatching
// on the prefix that opened it.
func (e *Editor) submitOverlay() {
	input := e.overlay.Buffer
	if e.overlay.Prefix == searchPrefix {
		e.processSearch(input)
		return
	}
	e.processCommand(input)
}

// processCommand interprets one ex command. A bare number is a line jump;
// one word is a simple command; two words is a command with a filename
// argument.
func (e *Editor) processCommand(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}
	if isAllDigits(input) {
		lineNumber, _ := strconv.Atoi(input)
		e.gotoLine(lineNumber, 0)
		return
	}

	tokens := strings.Fields(input)
	if len(tokens) > 1 {
		switch tokens[0] {
		case cmdOpen, cmdOpenShort:
			e.openFile(tokens[1])
		case cmdNew:
			e.newFile(tokens[1])
		case cmdWrite:
			// Filenames may contain spaces; everything after "w" is the name.
			e.save(strings.Join(tokens[1:], " "))
		default:
			e.setError(fmt.Sprintf("Unknown command '%s'!", input))
		}
		return
	}

	switch input {
	case cmdForceQuit:
		e.quit(true)
	case cmdQuit:
		e.quit(false)
	case cmdWrite:
		e.save("")
	case cmdWriteQuit:
		e.save("")
		e.quit(false)
	case cmdLineNumbers:
		e.toggleLineNumbers()
	case cmdStats:
		e.cfg.ShowStats = !e.cfg.ShowStats
	case cmdHelp:
		e.helpVisible = true
		e.setMessage("Press q to return to the editor")
	case cmdDebug:
		e.dumpState()
	default:
		e.setError(fmt.Sprintf("Unknown command '%s'!", input))
	}
}

// toggleLineNumbers flips the gutter on or off. The cursor column shifts
// with the gutter width only on screen, not in the document, so no cursor
// adjustment is needed.
func (e *Editor) toggleLineNumbers() {
	if e.rowPrefixLen == 0 {
		e.rowPrefixLen = lineNumberWidth
	} else {
		e.rowPrefixLen = 0
	}
}

// isAllDigits reports whether s is a bare unsigned number. Signed input
// such as "-3" is not a line jump and falls through to command parsing.
func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// openFile replaces the buffer with the named file, discarding any unsaved
// changes in the current one.
func (e *Editor) openFile(name string) {
	doc, err := OpenDocument(name)
	if err != nil {
		e.setError(fmt.Sprintf("%s not found", name))
		return
	}
	e.replaceDocument(doc)
	e.resetMessage()
}

// newFile replaces the buffer with an empty document bound to the given
// name and starts typing into it. Nothing is written until :w.
func (e *Editor) newFile(name string) {
	e.replaceDocument(NewEmptyDocument(ExpandTilde(name)))
	e.enterInsertMode()
}

func (e *Editor) replaceDocument(doc *Document) {
	e.document = doc
	e.cursor = Position{}
	e.offset = ViewportOffset{}
	e.resetSearch()
	e.unsavedEdits = 0
	e.lastSavedHash = doc.Hash()
}

// save writes the document, under a new name when one is given. Trailing
// whitespace is trimmed first, so the cursor column is re-clamped in case it
// sat on a trimmed space.
func (e *Editor) save(newName string) {
	e.document.TrimTrailingSpaces()
	if e.currentX() >= e.currentRow().Len() {
		end := e.currentRow().Len() - 1
		if end < 0 {
			end = 0
		}
		e.jumpToColumn(end)
	}

	if newName == "" {
		if e.document.Filename == "" {
			e.setError("No file name")
			return
		}
		if err := e.document.Save(); err != nil {
			log.ErrorErr(log.CatDocument, "save failed", err)
			e.setError("Error writing to file!")
			return
		}
		e.setMessage("File successfully saved")
	} else {
		previous := e.document.Filename
		if err := e.document.SaveAs(newName); err != nil {
			log.ErrorErr(log.CatDocument, "save as failed", err, "name", newName)
			e.setError("Error writing to file!")
			return
		}
		if previous == "" {
			e.setMessage(fmt.Sprintf("Buffer saved to %s", newName))
		} else {
			e.setMessage(fmt.Sprintf("%s successfully renamed to %s", previous, newName))
		}
		e.document.Filename = ExpandTilde(newName)
	}
	e.unsavedEdits = 0
	e.lastSavedHash = e.document.Hash()
}

// processSearch rebuilds the match ring for a literal pattern, one match per
// line, and jumps to the first match. The index is parked on the last match
// so the first n lands on match one.
func (e *Editor) processSearch(pattern string) {
	e.resetSearch()
	if pattern == "" {
		return
	}
	patternLen := GraphemeCount(pattern)
	for y := 1; y <= e.document.NumRows(); y++ {
		row := e.document.RowForLineNumber(y)
		if row == nil {
			continue
		}
		x := row.Find(pattern)
		if x < 0 {
			continue
		}
		e.matches = append(e.matches, SearchMatch{
			Start: Position{X: x, Y: y},
			End:   Position{X: x + patternLen, Y: y},
		})
	}
	if len(e.matches) == 0 {
		e.setError(fmt.Sprintf("'%s' not found", pattern))
		return
	}
	e.matchIndex = len(e.matches) - 1
	e.gotoNextSearchMatch()
}

// matchMessage formats the search position indicator for the message bar.
func matchMessage(index, total int) string {
	return fmt.Sprintf("Match %d/%d", index+1, total)
}
