// Package scan isolates the half-block QR rendering inside captured
// terminal output.
package scan

import "strings"

// Glyphs the terminal renderer uses for QR modules. Each character cell
// covers two vertically stacked modules.
const (
	FullBlock = '█' // U+2588, both modules black
	UpperHalf = '▀' // U+2580, top module black
	LowerHalf = '▄' // U+2584, bottom module black
)

// borderRunLen is the minimum run of LowerHalf glyphs that makes a line a
// decorative border marker.
const borderRunLen = 10

// Block is the extracted QR rendering, one string per character row,
// stripped of surrounding prose. An empty Block means no rendering was
// found; that is an expected outcome, not an error.
type Block []string

func (b Block) Empty() bool { return len(b) == 0 }

// Options controls extraction.
type Options struct {
	// IncludeBorder keeps the ▄-run marker lines as data rows instead of
	// treating them as decoration. The framing convention of the emitting
	// tool is ambiguous, so both readings are supported; decorative is
	// the default.
	IncludeBorder bool
}

// Extract scans text line by line for the contiguous block of half-block
// glyph rows delimited by border markers. The block ends at the bottom
// border, a blank line, or the first line containing a rune outside the
// QR alphabet. Extract is a pure function over its input.
func Extract(text string, opts Options) Block {
	var block Block
	inside := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if !inside {
			if IsBorderMarker(line) {
				inside = true
				if opts.IncludeBorder {
					block = append(block, line)
				}
			}
			continue
		}
		if isBottomBorder(line) {
			if opts.IncludeBorder {
				block = append(block, line)
			}
			break
		}
		if strings.TrimSpace(line) == "" || !inAlphabet(line) {
			break
		}
		block = append(block, line)
	}
	return block
}

// IsBorderMarker reports whether line opens or closes a QR rendering:
// it begins with at least ten consecutive lower-half glyphs.
func IsBorderMarker(line string) bool {
	n := 0
	for _, r := range line {
		if r != LowerHalf {
			return false
		}
		n++
		if n == borderRunLen {
			return true
		}
	}
	return false
}

// isBottomBorder matches the closing marker: the whole line is lower-half
// glyphs. A data row merely starting with ten of them still counts as
// data, matching the emitting tool's framing.
func isBottomBorder(line string) bool {
	trimmed := strings.TrimSpace(line)
	n := 0
	for _, r := range trimmed {
		if r != LowerHalf {
			return false
		}
		n++
	}
	return n >= borderRunLen
}

func inAlphabet(line string) bool {
	for _, r := range line {
		switch r {
		case FullBlock, UpperHalf, LowerHalf, ' ':
		default:
			return false
		}
	}
	return true
}
