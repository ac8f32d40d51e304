/*
 * bcdconv - Six bit and punch card conversion routines.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package card

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rcornwell/bcdconv/charset/encoding"
	"github.com/rcornwell/bcdconv/charset/mapping"
	"github.com/rcornwell/bcdconv/util/hex"
)

// Name the six bit set is registered under.
const SixBit = "SIXBIT"

// register the six bit set on initialize.
func init() {
	if err := encoding.Register(encoding.FromMapping(SixBit, SixTable())); err != nil {
		panic(err)
	}
}

// Return six bit code of an ASCII character, ok false if none.
func ASCIIToSix(v uint8) (uint8, bool) {
	if v >= 128 || asciiToSix[v] < 0 {
		return 0, false
	}
	return uint8(asciiToSix[v]), true
}

// Build the six bit tables. Decode holds every ASCII character with a
// code; Encode holds the first character in ASCII order for each code.
func SixTable() *mapping.Mapping[byte, rune] {
	m := mapping.New[byte, rune]()
	for ch := range uint8(128) {
		bcd, ok := ASCIIToSix(ch)
		if !ok {
			continue
		}
		if _, ok := m.Encode[bcd]; !ok {
			m.Encode[bcd] = rune(ch)
		}
		m.Decode[rune(ch)] = bcd
	}
	return m
}

// Convert BCD character into hollerith code.
func BcdToHol(bcd uint8) uint16 {
	// Handle space correctly
	if bcd == 0 {
		return 0x82 // 0 to 82 punch
	}

	if bcd == 0o20 {
		return 0 // 20 no punch
	}

	var hol uint16
	// Convert top row
	switch bcd & 0o60 {
	case 0o20:
		hol = 0o1000
	case 0o40:
		hol = 0o2000
	case 0o60:
		hol = 0o4000
	}

	// Handle case of 10 special
	// only 032 is punched as 8-2
	if (bcd&0o17) == 10 && (bcd&0o60) != 0o20 {
		hol |= 1 << 9
		return hol
	}

	// Convert to 0-9 row
	bcd &= 0o17
	if bcd > 9 {
		hol |= 0o2 // Row 8
		bcd -= 8
	}
	if bcd != 0 {
		hol |= 1 << (9 - bcd)
	}
	return hol
}

// Returns the BCD of the hollerith code or 0o177 if error.
func HolToBcd(hol uint16) uint8 {
	var bcd uint8

	// Convert rows 10,11,12
	switch hol & 0o7000 {
	case 0o0000:
		bcd = 0
	case 0o1000: // 10 Punch
		if (hol & 0x1ff) == 0 {
			return 10
		}
		bcd = 0o20
	case 0o2000: // 11 punch
		bcd = 0o40
	case 0o3000: // 11-10 punch
		bcd = 0o52
	case 0o4000: // 12 punch
		bcd = 0o60
	case 0o5000: // 12-10 Punch
		bcd = 0o72
	default: // Punch in 10,11,12 rows
		return 0o177
	}

	hol &= 0o777          // Mask rows 0-9
	if (hol & 0o2) != 0 { // Check if row 8 punched
		bcd += 8
		hol &= 0o775 // Clear row 8.
	}

	// Convert rows 0-9
	for hol != 0 && (hol&0o1000) == 0 {
		bcd++
		hol <<= 1
	}

	// Any more rows punched?
	if (hol & 0o777) != 0 {
		return 0o177
	}
	return bcd
}

// BCD code that does not come back from its punch code.
type PunchMismatch struct {
	Index  byte
	Punch  uint16
	Result byte
}

func (p PunchMismatch) String() string {
	return fmt.Sprintf("Failed round-trip! %s -> punch %03X -> %s", hex.Octal(p.Index), p.Punch, hex.Octal(p.Result))
}

// Punch every six bit code and read it back. Failures are written to w.
func CheckPunch(w io.Writer) []PunchMismatch {
	var list []PunchMismatch
	reported := false
	for i := range uint8(64) {
		hol := BcdToHol(i)
		back := HolToBcd(hol)
		if back == i {
			continue
		}
		p := PunchMismatch{Index: i, Punch: hol, Result: back}
		if w != nil {
			if _, err := fmt.Fprintln(w, p.String()); err != nil && !reported {
				slog.Error("unable to write punch check", "error", err)
				reported = true
			}
		}
		list = append(list, p)
	}
	return list
}
