/*
 * bcdconv - Round-trip test cases.
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
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/rcornwell/bcdconv/charset/charmap"
	"github.com/rcornwell/bcdconv/charset/mapping"
)

// Table where every index maps to its own character.
func cleanTable() *mapping.Mapping[byte, rune] {
	table := make([]rune, Size)
	for i := range table {
		table[i] = rune(0x100 + i)
	}
	return mapping.FromTable(table)
}

func TestCheckClean(t *testing.T) {
	var out bytes.Buffer
	list := Check(cleanTable(), &out)
	if len(list) != 0 {
		t.Errorf("Clean table reported %d failures", len(list))
	}
	if out.Len() != 0 {
		t.Errorf("Clean table wrote output: %s", out.String())
	}
}

// Decode entry pointing at the wrong index.
func TestCheckSingleWrong(t *testing.T) {
	m := cleanTable()
	m.Decode[m.Encode[0o25]] = 0o26
	var out bytes.Buffer
	list := Check(m, &out)
	if len(list) != 1 {
		t.Fatalf("Expected 1 failure got: %d", len(list))
	}
	if list[0].Index != 0o25 || list[0].Result != 0o26 || !list[0].HasResult {
		t.Errorf("Wrong failure reported: %+v", list[0])
	}
	want := "Failed round-trip! 0o25 -> 'ĕ' -> 0o26\n"
	if out.String() != want {
		t.Errorf("Output got: %q expected: %q", out.String(), want)
	}
}

// Decode entry missing.
func TestCheckSingleMissing(t *testing.T) {
	m := cleanTable()
	delete(m.Decode, m.Encode[0o77])
	list := Check(m, nil)
	if len(list) != 1 {
		t.Fatalf("Expected 1 failure got: %d", len(list))
	}
	if list[0].Index != 0o77 || list[0].HasResult {
		t.Errorf("Wrong failure reported: %+v", list[0])
	}
	want := "Failed round-trip! 0o77 -> 'Ŀ' -> 0oundefined"
	if list[0].String() != want {
		t.Errorf("String got: %q expected: %q", list[0].String(), want)
	}
}

// Every index of an empty mapping fails, in order.
func TestCheckEmpty(t *testing.T) {
	var out bytes.Buffer
	list := Check(mapping.Invert(charmap.Parse("")), &out)
	if len(list) != Size {
		t.Fatalf("Expected %d failures got: %d", Size, len(list))
	}
	for i, d := range list {
		if int(d.Index) != i || d.HasChar || d.HasResult {
			t.Errorf("Failure %d not correct: %+v", i, d)
		}
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != Size {
		t.Errorf("Expected %d lines got: %d", Size, len(lines))
	}
	if lines[0o10] != "Failed round-trip! 0o10 -> 'undefined' -> 0oundefined" {
		t.Errorf("Line 0o10 got: %s", lines[0o10])
	}
}

// Entries above 077 are not looked at.
func TestCheckIgnoresHigh(t *testing.T) {
	m := cleanTable()
	m.Encode[0o100] = 'x'
	if list := Check(m, nil); len(list) != 0 {
		t.Errorf("High entry checked: %v", list)
	}
}

func TestVerify(t *testing.T) {
	m := charmap.Parse("<U0041> \\x41 |0\n<U0042> \\x42 |0\n")
	if list := Verify(m, nil); len(list) != 0 {
		t.Errorf("Clean charmap reported: %v", list)
	}

	// Two code points share a byte, the first loses.
	m = charmap.Parse("<U0041> \\x41 |0\n<U00C1> \\x41 |0\n")
	var out bytes.Buffer
	list := Verify(m, &out)
	if len(list) != 1 {
		t.Fatalf("Expected 1 mismatch got: %d", len(list))
	}
	want := "Failed round-trip! U+0041 -> 0x41 -> U+00C1\n"
	if out.String() != want {
		t.Errorf("Output got: %q expected: %q", out.String(), want)
	}
}

// Writer that always fails.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

// A failing writer is logged once and does not stop the check.
func TestCheckWriteError(t *testing.T) {
	var logOut bytes.Buffer
	saved := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logOut, nil)))
	defer slog.SetDefault(saved)

	list := Check(mapping.New[byte, rune](), failWriter{})
	if len(list) != Size {
		t.Errorf("Expected %d failures got: %d", Size, len(list))
	}
	if n := strings.Count(logOut.String(), "unable to write round-trip report"); n != 1 {
		t.Errorf("Expected 1 log line got: %d\n%s", n, logOut.String())
	}

	logOut.Reset()
	m := charmap.Parse("<U0041> \\x41 |0\n<U0061> \\x41 |0\n<U0042> \\x42 |0\n<U0062> \\x42 |0\n")
	if list := Verify(m, failWriter{}); len(list) != 2 {
		t.Errorf("Expected 2 mismatches got: %d", len(list))
	}
	if n := strings.Count(logOut.String(), "unable to write round-trip report"); n != 1 {
		t.Errorf("Expected 1 log line got: %d\n%s", n, logOut.String())
	}
}
