/*
 * bcdconv - Named BCD character sets.
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

package encoding

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/rcornwell/bcdconv/charset/mapping"
)

var ErrUnknownEncoding = errors.New("unknown encoding")

// BCD blank, used for characters a set can't represent.
const Blank = 0o00

// A six bit BCD character set. Encode goes from BCD to character.
type Encoding struct {
	Name       string
	Substitute rune // Returned for BCD codes with no character.
	table      *mapping.Mapping[byte, rune]
}

var (
	mu        sync.Mutex
	encodings = map[string]*Encoding{}
)

// Create a set from a 64 entry index table.
func New(name string, table []rune) *Encoding {
	return &Encoding{
		Name:       strings.ToUpper(name),
		Substitute: unicode.ReplacementChar,
		table:      mapping.FromTable(table),
	}
}

// Create a set from ready made tables. Decode may hold more characters
// than Encode when several characters share a code.
func FromMapping(name string, m *mapping.Mapping[byte, rune]) *Encoding {
	return &Encoding{
		Name:       strings.ToUpper(name),
		Substitute: unicode.ReplacementChar,
		table:      m,
	}
}

// Create a set from base with some codes replaced.
func Derive(name string, base *Encoding, overrides map[byte]rune) *Encoding {
	return &Encoding{
		Name:       strings.ToUpper(name),
		Substitute: base.Substitute,
		table:      mapping.Derive(base.table, overrides),
	}
}

// Tables behind the set.
func (e *Encoding) Mapping() *mapping.Mapping[byte, rune] {
	return e.table
}

// Convert text to BCD codes. Letters missing from the set are tried
// in upper case, anything else becomes a blank.
func (e *Encoding) ToBCD(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		bcd, ok := e.table.Decode[r]
		if !ok {
			bcd, ok = e.table.Decode[unicode.ToUpper(r)]
		}
		if !ok {
			bcd = Blank
		}
		out = append(out, bcd)
	}
	return out
}

// Convert BCD codes to text. Only the low six bits of each code are used.
func (e *Encoding) FromBCD(bcd []byte) string {
	var str strings.Builder
	for _, by := range bcd {
		r, ok := e.table.Encode[by&0o77]
		if !ok {
			r = e.Substitute
		}
		str.WriteRune(r)
	}
	return str.String()
}

// Translate a line of text from one set to another.
func Convert(from, to *Encoding, line string) string {
	return to.FromBCD(from.ToBCD(line))
}

// Register should be called from init functions or before lookups start.
func Register(e *Encoding) error {
	name := strings.ToUpper(e.Name)
	mu.Lock()
	defer mu.Unlock()
	if _, ok := encodings[name]; ok {
		return fmt.Errorf("encoding %s already registered", name)
	}
	encodings[name] = e
	return nil
}

// Find a set by name, case is ignored.
func Lookup(name string) (*Encoding, error) {
	mu.Lock()
	defer mu.Unlock()
	e, ok := encodings[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	return e, nil
}

// Registered names in order.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	return slices.Sorted(maps.Keys(encodings))
}
