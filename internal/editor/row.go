package editor

import (
	"fmt"
	"strings"
)

// spacesPerTab is the fixed display width of a tab character, and the number
// of spaces inserted when Tab is pressed in insert mode.
const spacesPerTab = 4

// Row is a single line of text in a Document. All indices are grapheme
// cluster indices; callers are expected to clamp them to [0, Len()] and Row
// saturates rather than failing when they do not.
type Row struct {
	text string
}

// NewRow creates a Row holding the given text.
func NewRow(text string) *Row {
	return &Row{text: text}
}

// Text returns the raw text of the row.
func (r *Row) Text() string {
	return r.text
}

// Len returns the number of grapheme clusters in the row.
func (r *Row) Len() int {
	return GraphemeCount(r.text)
}

// IsEmpty reports whether the row contains no text.
func (r *Row) IsEmpty() bool {
	return r.text == ""
}

// NumWords returns the number of whitespace-separated words in the row.
func (r *Row) NumWords() int {
	return len(strings.Fields(r.text))
}

// TrimTrailingSpaces removes trailing whitespace in place.
func (r *Row) TrimTrailingSpaces() {
	r.text = strings.TrimRight(r.text, " \t")
}

// NthGrapheme returns the grapheme cluster at the given index, or "" when
// the index is out of range.
func (r *Row) NthGrapheme(idx int) string {
	return GraphemeAt(r.text, idx)
}

// Insert inserts a grapheme at the given index. Indices beyond the current
// length append rather than fail.
func (r *Row) Insert(at int, g string) {
	r.text = InsertAtGrapheme(r.text, at, g)
}

// Delete removes the grapheme at the given index. Out-of-range indices are a
// no-op.
func (r *Row) Delete(at int) {
	if at < 0 || at >= r.Len() {
		return
	}
	r.text = DeleteGraphemeRange(r.text, at, at+1)
}

// Append appends the text of another row to this one.
func (r *Row) Append(other *Row) {
	r.text += other.text
}

// Split truncates the row at the given grapheme index and returns a new Row
// holding the remainder.
func (r *Row) Split(at int) *Row {
	rest := SliceByGraphemes(r.text, at, r.Len())
	r.text = SliceByGraphemes(r.text, 0, at)
	return NewRow(rest)
}

// Contains reports whether the row contains the literal pattern.
func (r *Row) Contains(pattern string) bool {
	return strings.Contains(r.text, pattern)
}

// Find returns the grapheme index of the first occurrence of the literal
// pattern, or -1 when absent.
func (r *Row) Find(pattern string) int {
	byteIdx := strings.Index(r.text, pattern)
	if byteIdx < 0 {
		return -1
	}
	return ByteToGraphemeOffset(r.text, byteIdx)
}

// Render returns the displayed form of the row sliced to the horizontal
// window [start, end): tabs expanded, optionally prefixed by a zero-filled
// line number of prefixWidth characters followed by a space.
func (r *Row) Render(start, end, lineNumber, prefixWidth int) string {
	display := expandTabs(r.text, spacesPerTab)
	if end > GraphemeCount(display) {
		end = GraphemeCount(display)
	}
	visible := SliceByGraphemes(display, start, end)
	if prefixWidth == 0 {
		return visible
	}
	return zfill(fmt.Sprintf("%d", lineNumber), "0", prefixWidth) + " " + visible
}

// zfill left-pads s with fill up to size characters. A size of 0 yields "".
func zfill(s, fill string, size int) string {
	if size == 0 {
		return ""
	}
	if len(s) >= size {
		return s
	}
	return strings.Repeat(fill, size-len(s)) + s
}
