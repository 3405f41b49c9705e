// Package editor implements the core of the verso text editor: the Row and
// Document buffer model, the pure Navigator motion functions, and the modal
// Editor state machine driving them.
//
// All cursor columns and Row indices in this package are grapheme-cluster
// indices, not byte offsets. A grapheme cluster is what the user perceives as
// one character; it may span several runes ("e" + combining accent) and many
// bytes. Conversion helpers between bytes, graphemes, and terminal display
// columns live in this file.
package editor

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Character classes for word boundary detection.
const (
	classWhitespace = iota
	classWord
	classPunctuation
)

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// GraphemeAt returns the grapheme cluster at the given grapheme index.
// Returns "" if idx is out of bounds or negative.
func GraphemeAt(s string, idx int) string {
	if idx < 0 {
		return ""
	}
	i := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		if i == idx {
			return cluster
		}
		i++
		s = rest
		state = newState
	}
	return ""
}

// GraphemeToByteOffset converts a grapheme index to a byte offset.
// Returns len(s) if idx is at or past the grapheme count, 0 if idx <= 0.
func GraphemeToByteOffset(s string, idx int) int {
	if idx <= 0 {
		return 0
	}
	i := 0
	state := -1
	original := s
	for len(s) > 0 {
		_, rest, _, newState := uniseg.StepString(s, state)
		i++
		if i == idx {
			return len(original) - len(rest)
		}
		s = rest
		state = newState
	}
	return len(original)
}

// ByteToGraphemeOffset converts a byte offset to a grapheme index. An offset
// falling inside a cluster maps to that cluster's index.
func ByteToGraphemeOffset(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset >= len(s) {
		return GraphemeCount(s)
	}
	i := 0
	pos := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		next := pos + len(cluster)
		if byteOffset < next {
			return i
		}
		i++
		pos = next
		s = rest
		state = newState
	}
	return i
}

// SliceByGraphemes returns the substring spanning grapheme indices
// [start, end). Like s[start:end] but grapheme-aware; invalid ranges
// degrade to "".
func SliceByGraphemes(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		return ""
	}
	startByte := GraphemeToByteOffset(s, start)
	endByte := GraphemeToByteOffset(s, end)
	if startByte >= len(s) {
		return ""
	}
	if endByte > len(s) {
		endByte = len(s)
	}
	return s[startByte:endByte]
}

// Graphemes returns every grapheme cluster of s in order.
func Graphemes(s string) []string {
	var out []string
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		out = append(out, cluster)
		s = rest
		state = newState
	}
	return out
}

// InsertAtGrapheme inserts text at the given grapheme index. Indices past the
// end append.
func InsertAtGrapheme(s string, idx int, insert string) string {
	byteOffset := GraphemeToByteOffset(s, idx)
	return s[:byteOffset] + insert + s[byteOffset:]
}

// DeleteGraphemeRange deletes grapheme clusters in [start, end).
func DeleteGraphemeRange(s string, start, end int) string {
	startByte := GraphemeToByteOffset(s, start)
	endByte := GraphemeToByteOffset(s, end)
	return s[:startByte] + s[endByte:]
}

// StringDisplayWidth returns the width of s in terminal cells.
func StringDisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// graphemeClass classifies a grapheme cluster for word boundary detection.
// Multi-rune clusters are classified by their base character.
func graphemeClass(cluster string) int {
	for _, r := range cluster {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			return classWhitespace
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_':
			return classWord
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			return classWord
		default:
			return classPunctuation
		}
	}
	return classPunctuation
}

// expandTabs replaces tab characters with the given number of spaces, for
// display purposes only.
func expandTabs(s string, spacesPerTab int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", spacesPerTab))
}
