// Package gameid generates the identifiers used to correlate log lines
// from a single game.
//
// An ID is a UUIDv7 encoded with Crockford's base32 alphabet, so IDs
// sort lexicographically by the time the game started.
package gameid

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/coder/quartz"
)

// alphabet is Crockford's base32, lowercased.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// encodedLen is 128 bits in 5-bit groups, final group padded.
const encodedLen = 26

// Generator produces game IDs. Tests inject a mock clock and a seeded
// reader to make the output deterministic.
type Generator struct {
	clock  quartz.Clock
	random io.Reader
}

// NewGenerator returns a Generator. A nil clock means the system clock
// and a nil reader means crypto/rand.
func NewGenerator(clock quartz.Clock, random io.Reader) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if random == nil {
		random = rand.Reader
	}
	return &Generator{clock: clock, random: random}
}

// Generate returns a fresh ID from a default Generator.
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate creates a UUIDv7 and encodes it as a 26-character string.
func (g *Generator) Generate() string {
	return encode(g.newUUIDv7())
}

// newUUIDv7 lays out an RFC 9562 version 7 UUID: a 48-bit millisecond
// timestamp followed by random bits, with the version and variant
// fields forced.
func (g *Generator) newUUIDv7() [16]byte {
	var uuid [16]byte

	now := g.clock.Now().UnixMilli()
	uuid[0] = byte(now >> 40)
	uuid[1] = byte(now >> 32)
	uuid[2] = byte(now >> 24)
	uuid[3] = byte(now >> 16)
	uuid[4] = byte(now >> 8)
	uuid[5] = byte(now)

	if _, err := io.ReadFull(g.random, uuid[6:]); err != nil {
		panic("failed to read random bytes: " + err.Error())
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return uuid
}

// encode writes the 128 bits as base32 characters, most significant
// bits first. 128 is not a multiple of 5, so the final character
// carries two zero padding bits.
func encode(uuid [16]byte) string {
	var out [encodedLen]byte

	var acc uint16
	bits := 0
	n := 0
	for _, b := range uuid {
		acc = acc<<8 | uint16(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out[n] = alphabet[(acc>>bits)&0x1f]
			n++
		}
	}
	out[n] = alphabet[(acc<<(5-bits))&0x1f]

	return string(out[:])
}

// Validate reports whether id could have come from Generate.
func Validate(id string) error {
	if len(id) != encodedLen {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", encodedLen, len(id))
	}

	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}

	return nil
}
