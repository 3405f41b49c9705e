package editor

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Document is the full in-memory buffer: an ordered list of Rows plus the
// path it is bound to. A Document always holds at least one row; structural
// edits that would remove the last row clear its text instead.
type Document struct {
	rows     []*Row
	Filename string
}

// NewDocument creates a Document from the given rows. Used by tests and by
// callers that already split content into lines. An empty slice yields a
// single empty row, keeping the at-least-one-row invariant.
func NewDocument(rows []*Row, filename string) *Document {
	if len(rows) == 0 {
		rows = []*Row{NewRow("")}
	}
	return &Document{rows: rows, Filename: filename}
}

// NewEmptyDocument creates a single-empty-row Document bound to the given
// path. The path may be empty for a scratch buffer.
func NewEmptyDocument(filename string) *Document {
	return &Document{rows: []*Row{NewRow("")}, Filename: filename}
}

// SwapFilename derives the swap file path for a document path:
// ".<basename>.swp" in the same directory.
func SwapFilename(filename string) string {
	if filename == "" {
		return ""
	}
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)
	return filepath.Join(dir, "."+base+".swp")
}

// ExpandTilde expands a leading "~" in a path to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// OpenDocument loads the document at path. A nonexistent path yields an
// empty single-row Document bound to it. When a swap file sibling exists its
// content is preferred over the file itself, recovering edits written by the
// periodic autosave before a crash.
func OpenDocument(path string) (*Document, error) {
	path = ExpandTilde(path)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		if err == nil {
			return nil, fmt.Errorf("open %s: not a regular file", path)
		}
		return NewEmptyDocument(path), nil
	}

	source := path
	if swap := SwapFilename(path); swap != "" {
		if swapInfo, swapErr := os.Stat(swap); swapErr == nil && swapInfo.Mode().IsRegular() {
			source = swap
		}
	}
	content, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	var rows []*Row
	for _, line := range strings.Split(strings.TrimSuffix(string(content), "\n"), "\n") {
		rows = append(rows, NewRow(strings.TrimSuffix(line, "\r")))
	}
	if len(rows) == 0 {
		rows = []*Row{NewRow("")}
	}
	return &Document{rows: rows, Filename: path}, nil
}

// writeRows writes every row newline-terminated to path, flushing and
// closing on all exit paths so a failed write never leaves a dangling
// handle.
func (d *Document) writeRows(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, row := range d.rows {
		if _, err = w.WriteString(row.Text()); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if err = w.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

// Save writes the document to its bound path and removes the swap file on
// success. Saving an unbound document is a successful no-op; callers decide
// whether that deserves a user-facing message.
func (d *Document) Save() error {
	if d.Filename == "" {
		return nil
	}
	if err := d.writeRows(d.Filename); err != nil {
		return err
	}
	// Best effort: a missing swap file is not an error.
	_ = os.Remove(SwapFilename(d.Filename))
	return nil
}

// SaveAs writes the document to an explicit path without changing the bound
// path.
func (d *Document) SaveAs(name string) error {
	return d.writeRows(ExpandTilde(name))
}

// SaveToSwapFile writes the document to its swap file path. The swap file is
// kept; only a successful real Save removes it.
func (d *Document) SaveToSwapFile() error {
	swap := SwapFilename(d.Filename)
	if swap == "" {
		return nil
	}
	return d.writeRows(swap)
}

// TrimTrailingSpaces trims trailing whitespace from every row. Rows may
// shrink; any live cursor x position must be re-clamped by the caller.
func (d *Document) TrimTrailingSpaces() {
	for _, row := range d.rows {
		row.TrimTrailingSpaces()
	}
}

// GetRow returns the row at the given zero-based index, or nil.
func (d *Document) GetRow(index int) *Row {
	if index < 0 || index >= len(d.rows) {
		return nil
	}
	return d.rows[index]
}

// RowForLineNumber returns the row for a 1-based line number, or nil.
func (d *Document) RowForLineNumber(lineNumber int) *Row {
	return d.GetRow(lineNumber - 1)
}

// NumRows returns the number of rows in the document.
func (d *Document) NumRows() int {
	return len(d.rows)
}

// LastLineNumber returns the 1-based line number of the last row.
func (d *Document) LastLineNumber() int {
	return len(d.rows)
}

// NumWords returns the total word count across all rows.
func (d *Document) NumWords() int {
	total := 0
	for _, row := range d.rows {
		total += row.NumWords()
	}
	return total
}

// Hash returns a digest of the document content. Equal content always
// yields an equal hash, which is what dirty tracking relies on.
func (d *Document) Hash() uint64 {
	h := xxhash.New()
	for _, row := range d.rows {
		_, _ = h.WriteString(row.Text())
		_, _ = h.Write([]byte{'\n'})
	}
	return h.Sum64()
}

// Insert inserts a grapheme at column x of row y. A y at or past the row
// count appends a new row holding just that grapheme.
func (d *Document) Insert(g string, x, y int) {
	if y < 0 {
		return
	}
	if y >= len(d.rows) {
		row := NewRow("")
		row.Insert(0, g)
		d.rows = append(d.rows, row)
		return
	}
	d.rows[y].Insert(x, g)
}

// Delete removes the grapheme at column x of row y. When both x and fromX
// are zero on a non-first row this is the backspace line-join: row y is
// removed and its text appended to row y-1. Out-of-range y is a no-op.
func (d *Document) Delete(x, fromX, y int) {
	if y < 0 || y >= len(d.rows) {
		return
	}
	if x == 0 && fromX == 0 && y > 0 {
		current := d.rows[y]
		d.rows = append(d.rows[:y], d.rows[y+1:]...)
		d.rows[y-1].Append(current)
		return
	}
	d.rows[y].Delete(x)
}

// InsertNewline splits row y at column x. When x falls strictly before the
// row's last grapheme the remainder becomes a new row immediately after;
// otherwise an empty row is inserted after y (appended when y is last).
// A y past the row count is a no-op.
func (d *Document) InsertNewline(x, y int) {
	if y < 0 || y > len(d.rows) {
		return
	}
	current := d.GetRow(y)
	if current == nil {
		d.rows = append(d.rows, NewRow(""))
		return
	}
	if x < current.Len()-1 {
		rest := current.Split(x)
		d.insertRowAt(y+1, rest)
		return
	}
	if y+1 == len(d.rows) {
		d.rows = append(d.rows, NewRow(""))
	} else {
		d.insertRowAt(y+1, NewRow(""))
	}
}

// DeleteRow removes row y. The last remaining row has its text cleared
// instead of being removed, preserving the at-least-one-row invariant.
func (d *Document) DeleteRow(y int) {
	if y < 0 || y > len(d.rows) {
		return
	}
	if len(d.rows) == 1 {
		d.rows[0].text = ""
		return
	}
	if y < len(d.rows) {
		d.rows = append(d.rows[:y], d.rows[y+1:]...)
	}
}

// JoinRowWithPrevious merges row y into row y-1, optionally separated by a
// single grapheme (the explicit J command joins with a space; the backspace
// join uses none).
func (d *Document) JoinRowWithPrevious(y int, separator string) {
	if y <= 0 || y >= len(d.rows) {
		return
	}
	current := d.rows[y]
	d.rows = append(d.rows[:y], d.rows[y+1:]...)
	previous := d.rows[y-1]
	if separator != "" && !previous.IsEmpty() {
		previous.Insert(previous.Len(), separator)
	}
	previous.Append(current)
}

func (d *Document) insertRowAt(index int, row *Row) {
	d.rows = append(d.rows, nil)
	copy(d.rows[index+1:], d.rows[index:])
	d.rows[index] = row
}
