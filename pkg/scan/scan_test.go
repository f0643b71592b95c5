package scan

import (
	"strings"
	"testing"
)

const sampleOutput = `Starting pairing flow...
Scan this code with the mobile app:
▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄
█▀▀▀█ ▄█ █▀▀▀█
█ ███ ▀▄▀ █ ███
▀▀▀▀▀ ▀ █ ▀▀▀▀▀
▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄
Waiting for scan...
`

func TestExtract(t *testing.T) {
	block := Extract(sampleOutput, Options{})
	if len(block) != 3 {
		t.Fatalf("expected 3 rows, got %d: %q", len(block), block)
	}
	if block[0] != "█▀▀▀█ ▄█ █▀▀▀█" {
		t.Fatalf("unexpected first row: %q", block[0])
	}
	for _, row := range block {
		if !inAlphabet(row) {
			t.Fatalf("row escaped the QR alphabet: %q", row)
		}
	}
}

func TestExtractNoMarker(t *testing.T) {
	block := Extract("just some logs\nno QR art here\n", Options{})
	if !block.Empty() {
		t.Fatalf("expected empty block, got %q", block)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	if block := Extract("", Options{}); !block.Empty() {
		t.Fatalf("expected empty block, got %q", block)
	}
}

func TestExtractStopsAtInvalidRune(t *testing.T) {
	input := "▄▄▄▄▄▄▄▄▄▄▄▄\n█▀█▀█▀█▀█▀█▀\n█▀x▀█▀█▀█▀█▀\n█▀█▀█▀█▀█▀█▀\n"
	block := Extract(input, Options{})
	if len(block) != 1 {
		t.Fatalf("expected truncation at the invalid rune, got %d rows", len(block))
	}
}

func TestExtractStopsAtBlankLine(t *testing.T) {
	input := "▄▄▄▄▄▄▄▄▄▄▄▄\n█▀█▀█▀█▀█▀█▀\n\n█▀█▀█▀█▀█▀█▀\n"
	block := Extract(input, Options{})
	if len(block) != 1 {
		t.Fatalf("expected block to end at the blank line, got %d rows", len(block))
	}
}

func TestExtractIncludeBorder(t *testing.T) {
	block := Extract(sampleOutput, Options{IncludeBorder: true})
	if len(block) != 5 {
		t.Fatalf("expected 5 rows with borders kept, got %d", len(block))
	}
	if !IsBorderMarker(block[0]) || !IsBorderMarker(block[4]) {
		t.Fatalf("border rows missing: %q", block)
	}
}

func TestExtractLowerHalfRunInsideDataRow(t *testing.T) {
	// A data row that merely starts with ten ▄ must not terminate the
	// block; only an all-▄ line is the bottom border.
	input := "▄▄▄▄▄▄▄▄▄▄▄▄▄▄\n▄▄▄▄▄▄▄▄▄▄█▀ █\n█ █ █ █ █ █ █ \n▄▄▄▄▄▄▄▄▄▄▄▄▄▄\n"
	block := Extract(input, Options{})
	if len(block) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(block), block)
	}
}

func TestExtractIdempotent(t *testing.T) {
	block := Extract(sampleOutput, Options{})
	if block.Empty() {
		t.Fatal("fixture did not extract")
	}
	marker := strings.Repeat(string(LowerHalf), 15)
	rewrapped := marker + "\n" + strings.Join(block, "\n") + "\n" + marker + "\n"
	again := Extract(rewrapped, Options{})
	if len(again) != len(block) {
		t.Fatalf("re-extraction changed row count: %d vs %d", len(again), len(block))
	}
	for i := range block {
		if again[i] != block[i] {
			t.Fatalf("row %d changed on re-extraction: %q vs %q", i, again[i], block[i])
		}
	}
}

func TestIsBorderMarker(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{strings.Repeat(string(LowerHalf), 10), true},
		{strings.Repeat(string(LowerHalf), 9), false},
		{strings.Repeat(string(LowerHalf), 10) + "█▀ ", true},
		{"▄▄▄ ▄▄▄▄▄▄▄▄", false},
		{"", false},
		{"██████████", false},
	}
	for _, c := range cases {
		if got := IsBorderMarker(c.line); got != c.want {
			t.Fatalf("IsBorderMarker(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}
