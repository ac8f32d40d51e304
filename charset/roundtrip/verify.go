/*
 * bcdconv - Round-trip checks for parsed charmaps.
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

package roundtrip

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rcornwell/bcdconv/charset/mapping"
	"github.com/rcornwell/bcdconv/util/hex"
)

// Code point whose byte decodes to something else.
type Mismatch struct {
	Char    rune
	Byte    byte
	Back    rune
	HasBack bool
}

func (m Mismatch) String() string {
	back := Absent
	if m.HasBack {
		back = hex.Codepoint(m.Back)
	}
	return fmt.Sprintf("Failed round-trip! %s -> %s -> %s", hex.Codepoint(m.Char), hex.Byte(m.Byte), back)
}

// Verify checks every code point of a parsed charmap in ascending order.
func Verify(m *mapping.Mapping[rune, byte], w io.Writer) []Mismatch {
	var list []Mismatch
	reported := false
	for _, r := range m.Keys() {
		mis := Mismatch{Char: r, Byte: m.Encode[r]}
		mis.Back, mis.HasBack = m.Decode[mis.Byte]
		if mis.HasBack && mis.Back == r {
			continue
		}
		if w != nil {
			if _, err := fmt.Fprintln(w, mis.String()); err != nil && !reported {
				slog.Error("unable to write round-trip report", "error", err)
				reported = true
			}
		}
		list = append(list, mis)
	}
	return list
}
