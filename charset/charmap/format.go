/*
 * bcdconv - Charmap output and standard code pages.
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

package charmap

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rcornwell/bcdconv/charset/mapping"
	"github.com/rcornwell/bcdconv/util/hex"
	xcharmap "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

var ErrNotSingleByte = errors.New("not a single byte code page")

// Format writes one record per reverse entry in byte order. Code points
// that do not fit in four hex digits are left out.
func Format(m *mapping.Mapping[rune, byte]) string {
	var str strings.Builder
	for by := range 256 {
		r, ok := m.Decode[byte(by)]
		if !ok || r < 0 || r > 0xffff {
			continue
		}
		str.WriteString("<U")
		hex.FormatCodepoint(&str, r)
		str.WriteString("> \\x")
		hex.FormatByte(&str, byte(by))
		str.WriteString(" |0\n")
	}
	return str.String()
}

// Build a mapping from an x/text code page. Undefined positions are
// skipped.
func FromCharmap(cm *xcharmap.Charmap) *mapping.Mapping[rune, byte] {
	m := mapping.New[rune, byte]()
	for by := range 256 {
		r := cm.DecodeByte(byte(by))
		if r == utf8.RuneError {
			continue
		}
		m.Set(r, byte(by))
	}
	return m
}

// Look up a code page by IANA name.
func Standard(name string) (*mapping.Mapping[rune, byte], error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("code page %s: %w", name, err)
	}
	cm, ok := enc.(*xcharmap.Charmap)
	if !ok {
		return nil, fmt.Errorf("code page %s: %w", name, ErrNotSingleByte)
	}
	return FromCharmap(cm), nil
}
