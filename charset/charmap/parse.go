/*
 * bcdconv - Charmap text parser.
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
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/rcornwell/bcdconv/charset/mapping"
)

/* Charmap record format:
 *
 * <record> ::= '<U' <hex4> '>' ' ' '\x' <hex2> ' ' '|0' <eol>
 * <hex4>   ::= 4 * <hexdigit>
 * <hex2>   ::= 2 * <hexdigit>
 * <hexdigit> ::= '0'..'9' | 'A'..'F'
 *
 * Anything else on a line that does not end with a record is ignored.
 */
var record = regexp2.MustCompile(`<U([0-9A-F]{4})> \\x([0-9A-F]{2}) \|0$`, regexp2.None)

func init() {
	record.MatchTimeout = 100 * time.Millisecond
}

// Parse charmap text into a code point to byte mapping. Lines without a
// record are skipped, later records replace earlier ones.
func Parse(text string) *mapping.Mapping[rune, byte] {
	m := mapping.New[rune, byte]()
	for number, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		match, err := record.FindStringMatch(line)
		for match != nil && err == nil {
			r, b, ok := decodeRecord(match)
			if ok {
				m.Set(r, b)
			}
			match, err = record.FindNextMatch(match)
		}
		if err != nil {
			slog.Warn("charmap line skipped", "line", number+1, "error", err)
		}
	}
	return m
}

// Read all of r and parse it.
func ParseReader(r io.Reader) (*mapping.Mapping[rune, byte], error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read charmap: %w", err)
	}
	return Parse(string(text)), nil
}

// Pull code point and byte out of one record match.
func decodeRecord(match *regexp2.Match) (rune, byte, bool) {
	code, err := strconv.ParseUint(match.GroupByNumber(1).String(), 16, 16)
	if err != nil {
		return 0, 0, false
	}
	by, err := strconv.ParseUint(match.GroupByNumber(2).String(), 16, 8)
	if err != nil {
		return 0, 0, false
	}
	return rune(code), byte(by), true
}
