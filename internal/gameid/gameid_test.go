package gameid

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
)

func TestGenerate(t *testing.T) {
	id := Generate()

	if len(id) != encodedLen {
		t.Errorf("expected %d characters, got %d", encodedLen, len(id))
	}

	if err := Validate(id); err != nil {
		t.Errorf("generated ID failed validation: %v", err)
	}
}

func TestGenerateUnique(t *testing.T) {
	ids := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id := Generate()
		if ids[id] {
			t.Errorf("duplicate ID generated: %s", id)
		}
		ids[id] = true
	}
}

func TestGenerateTimeSorted(t *testing.T) {
	ctx := context.Background()
	mock := quartz.NewMock(t)
	gen := NewGenerator(mock, nil)

	var ids []string
	for i := 0; i < 10; i++ {
		ids = append(ids, gen.Generate())
		mock.Advance(time.Millisecond).MustWait(ctx)
	}

	for i := 1; i < len(ids); i++ {
		if strings.Compare(ids[i-1], ids[i]) >= 0 {
			t.Errorf("IDs not sorted: %s >= %s", ids[i-1], ids[i])
		}
	}
}

func TestGenerateSharesTimestampPrefix(t *testing.T) {
	mock := quartz.NewMock(t)
	gen := NewGenerator(mock, nil)

	// The first 45 bits of an ID come from the millisecond timestamp, so
	// two IDs from the same instant share their first 9 characters.
	a := gen.Generate()
	b := gen.Generate()

	if a[:9] != b[:9] {
		t.Errorf("IDs from the same millisecond diverge early: %s vs %s", a, b)
	}
	if a == b {
		t.Errorf("IDs from the same millisecond should still differ: %s", a)
	}
}

func TestGeneratorDeterministicRandom(t *testing.T) {
	seed := bytes.Repeat([]byte{0xab}, 10)

	mock := quartz.NewMock(t)
	a := NewGenerator(mock, bytes.NewReader(seed)).Generate()
	b := NewGenerator(mock, bytes.NewReader(seed)).Generate()

	if a != b {
		t.Errorf("same clock and random bytes should reproduce the ID: %s vs %s", a, b)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{
			name:    "valid ID",
			id:      "01h5n0et5q6mt3v7ms1234abcd",
			wantErr: false,
		},
		{
			name:    "too short",
			id:      "01h5n0et5q6mt3v7ms123",
			wantErr: true,
		},
		{
			name:    "too long",
			id:      "01h5n0et5q6mt3v7ms1234abcdef",
			wantErr: true,
		},
		{
			name:    "invalid character",
			id:      "01h5n0et5q6mt3v7ms1234abci",
			wantErr: true,
		},
		{
			name:    "uppercase not allowed",
			id:      "01H5N0ET5Q6MT3V7MS1234ABCD",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAlphabet(t *testing.T) {
	if len(alphabet) != 32 {
		t.Errorf("alphabet should have 32 characters, got %d", len(alphabet))
	}

	seen := make(map[rune]bool)
	for _, char := range alphabet {
		if seen[char] {
			t.Errorf("duplicate character in alphabet: %c", char)
		}
		seen[char] = true
	}

	// Crockford's alphabet drops the characters easily misread as digits.
	forbidden := "ilou"
	for _, char := range forbidden {
		if strings.ContainsRune(alphabet, char) {
			t.Errorf("alphabet should not contain %c", char)
		}
	}
}
