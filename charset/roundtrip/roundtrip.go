/*
 * bcdconv - Round-trip checks for character tables.
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
	"strings"

	"github.com/rcornwell/bcdconv/charset/mapping"
	"github.com/rcornwell/bcdconv/util/hex"
)

// Number of six bit codes checked.
const Size = 64

// Shown in place of a missing table entry.
const Absent = "undefined"

// One index that did not survive encode then decode.
type Discrepancy struct {
	Index     byte // Index that was encoded.
	Char      rune // Character Encode gave for it.
	HasChar   bool // Encode had an entry.
	Result    byte // Index Decode gave back.
	HasResult bool // Decode had an entry.
}

func (d Discrepancy) String() string {
	var str strings.Builder
	str.WriteString("Failed round-trip! 0o")
	hex.FormatOctal(&str, d.Index)
	str.WriteString(" -> '")
	if d.HasChar {
		str.WriteRune(d.Char)
	} else {
		str.WriteString(Absent)
	}
	str.WriteString("' -> 0o")
	if d.HasResult {
		hex.FormatOctal(&str, d.Result)
	} else {
		str.WriteString(Absent)
	}
	return str.String()
}

// Check encodes each index 0 to 077 and decodes it again. Every index is
// tried; each failure is written to w as a line and returned.
func Check(m *mapping.Mapping[byte, rune], w io.Writer) []Discrepancy {
	var list []Discrepancy
	reported := false
	for i := range byte(Size) {
		d := Discrepancy{Index: i}
		d.Char, d.HasChar = m.Encode[i]
		if d.HasChar {
			d.Result, d.HasResult = m.Decode[d.Char]
		}
		if d.HasResult && d.Result == i {
			continue
		}
		slog.Debug("round-trip failed", "index", hex.Octal(i))
		if w != nil {
			if _, err := fmt.Fprintln(w, d.String()); err != nil && !reported {
				slog.Error("unable to write round-trip report", "error", err)
				reported = true
			}
		}
		list = append(list, d)
	}
	return list
}
