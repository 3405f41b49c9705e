package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// ANSI codes for the cursor. Reverse video overlays whatever styling the
// terminal theme applies without hardcoding colors.
const (
	cursorOn  = "\x1b[7m"
	cursorOff = "\x1b[27m"
)

// Version is stamped by the build; the welcome screen shows it.
var Version = "dev"

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"}).
			Background(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#353533"})

	messageStyle = lipgloss.NewStyle()
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// View implements tea.Model. The screen is text rows, then a one-line
// status bar, then a one-line message bar.
func (e *Editor) View() string {
	if e.width == 0 || e.textHeight() == 0 {
		return ""
	}

	var b strings.Builder
	if e.helpVisible {
		b.WriteString(e.helpView.View())
		b.WriteString("\n")
	} else {
		e.renderRows(&b)
	}
	b.WriteString(e.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(e.renderMessageBar())
	return b.String()
}

func (e *Editor) renderRows(b *strings.Builder) {
	welcomeLine := -1
	if first := e.document.GetRow(0); e.document.Filename == "" && first != nil && first.IsEmpty() {
		welcomeLine = e.middleLine()
	}

	visibleWidth := e.width - e.gutterWidth()
	for screenRow := 0; screenRow < e.textHeight(); screenRow++ {
		rowIndex := screenRow + e.offset.Rows
		row := e.document.GetRow(rowIndex)
		switch {
		case row != nil:
			line := row.Render(e.offset.Cols, e.offset.Cols+visibleWidth, rowIndex+1, e.rowPrefixLen)
			if rowIndex == e.currentRowIndex() {
				line = overlayCursor(line, e.gutterWidth()+e.cursor.X)
			}
			b.WriteString(line)
		case screenRow == welcomeLine:
			b.WriteString(e.welcomeMessage())
		default:
			b.WriteString("~")
		}
		b.WriteString("\n")
	}
}

// overlayCursor wraps the grapheme at the given column in reverse video,
// extending the line with a highlighted space when the cursor sits past the
// end.
func overlayCursor(line string, col int) string {
	var b strings.Builder
	index := 0
	state := -1
	rest := line
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		if index == col {
			b.WriteString(cursorOn)
			b.WriteString(cluster)
			b.WriteString(cursorOff)
		} else {
			b.WriteString(cluster)
		}
		index++
	}
	if col >= index {
		b.WriteString(cursorOn)
		b.WriteString(" ")
		b.WriteString(cursorOff)
	}
	return b.String()
}

func (e *Editor) welcomeMessage() string {
	msg := fmt.Sprintf("verso editor -- version %s", Version)
	pad := (e.width - StringDisplayWidth(msg)) / 2
	if pad < 1 {
		return msg
	}
	return "~" + strings.Repeat(" ", pad-1) + msg
}

// renderStatusBar draws the bottom-of-screen state line: file name and mode
// on the left, optional document stats and cursor position on the right.
func (e *Editor) renderStatusBar() string {
	name := "[No Name]"
	if e.document.Filename != "" {
		name = filepath.Base(e.document.Filename)
	}
	dirty := ""
	if e.isDirty() {
		dirty = " +"
	}
	left := fmt.Sprintf(" [%s]%s %s", name, dirty, e.mode)

	right := fmt.Sprintf("Ln %d, Col %d ", e.currentLineNumber(), e.currentX()+1)
	if e.cfg.ShowStats {
		right = fmt.Sprintf("[%dL/%dW] %s", e.document.NumRows(), e.document.NumWords(), right)
	}

	gap := e.width - StringDisplayWidth(left) - StringDisplayWidth(right)
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// renderMessageBar draws the last screen line: the overlay being typed, or
// the current status or error message.
func (e *Editor) renderMessageBar() string {
	if e.overlay.Active {
		return messageStyle.Render(e.overlay.Display())
	}
	if e.messageIsErr {
		return errorStyle.Render(e.message)
	}
	return messageStyle.Render(e.message)
}
