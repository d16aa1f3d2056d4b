package console

import (
	"errors"
	"testing"
)

func TestParseMoveTable(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantRow int
		wantCol int
		wantErr bool
	}{
		{name: "top left", input: "1A", wantRow: 0, wantCol: 0},
		{name: "lowercase column", input: "1a", wantRow: 0, wantCol: 0},
		{name: "centre", input: "2B", wantRow: 1, wantCol: 1},
		{name: "bottom right lowercase", input: "3c", wantRow: 2, wantCol: 2},
		{name: "row out of range", input: "4A", wantErr: true},
		{name: "zero row", input: "0A", wantErr: true},
		{name: "column out of range", input: "1D", wantErr: true},
		{name: "swapped order", input: "A1", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "too short", input: "1", wantErr: true},
		{name: "too long", input: "1AB", wantErr: true},
		{name: "leading space", input: " 1A", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, err := ParseMove(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseMove(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				var inv *InvalidMoveError
				if !errors.As(err, &inv) {
					t.Errorf("ParseMove(%q) error type = %T, want *InvalidMoveError", tt.input, err)
				} else if inv.Token != tt.input {
					t.Errorf("ParseMove(%q) error echoes token %q", tt.input, inv.Token)
				}
				return
			}
			if row != tt.wantRow || col != tt.wantCol {
				t.Errorf("ParseMove(%q) = (%d,%d), want (%d,%d)", tt.input, row, col, tt.wantRow, tt.wantCol)
			}
		})
	}
}

func TestSquare(t *testing.T) {
	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "1A"},
		{1, 1, "2B"},
		{2, 2, "3C"},
		{0, 2, "1C"},
	}

	for _, tt := range tests {
		if got := Square(tt.row, tt.col); got != tt.want {
			t.Errorf("Square(%d,%d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestSquareRoundTrip(t *testing.T) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			gotRow, gotCol, err := ParseMove(Square(row, col))
			if err != nil {
				t.Fatalf("ParseMove(Square(%d,%d)) failed: %v", row, col, err)
			}
			if gotRow != row || gotCol != col {
				t.Errorf("round trip (%d,%d) -> (%d,%d)", row, col, gotRow, gotCol)
			}
		}
	}
}
