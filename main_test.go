/*
 * bcdconv - Main process test cases.
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	encoding "github.com/rcornwell/bcdconv/charset/encoding"
)

func TestConvertLines(t *testing.T) {
	from, _ := encoding.Lookup("unicode")
	to, _ := encoding.Lookup("ascii")
	var out bytes.Buffer
	err := convertLines(strings.NewReader("hello ¢\nGROUP ⯒\n"), &out, from, to)
	if err != nil {
		t.Fatalf("convertLines failed: %v", err)
	}
	if out.String() != "HELLO [\nGROUP }\n" {
		t.Errorf("Converted got: %q", out.String())
	}
}

func TestCheckSets(t *testing.T) {
	var out bytes.Buffer
	failed, err := checkSets("ascii", &out)
	if err != nil {
		t.Fatalf("checkSets failed: %v", err)
	}
	if failed != 0 || out.Len() != 0 {
		t.Errorf("ASCII set failed: %s", out.String())
	}

	// Six bit set has one hole, punch codes have two failures.
	out.Reset()
	failed, err = checkSets("all", &out)
	if err != nil {
		t.Fatalf("checkSets failed: %v", err)
	}
	if failed != 3 {
		t.Errorf("Expected 3 failures got: %d\n%s", failed, out.String())
	}
	if !strings.Contains(out.String(), "0o37 -> 'undefined'") {
		t.Errorf("Six bit hole not reported: %s", out.String())
	}

	out.Reset()
	failed, err = checkSets("PUNCH", &out)
	if err != nil || failed != 2 {
		t.Errorf("Punch check got: %d %v", failed, err)
	}
	if _, err := checkSets("none", &out); err == nil {
		t.Errorf("Unknown set checked")
	}
}

func TestVerifyCharmap(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.ucm")
	text := "<code_set_name> \"test\"\nCHARMAP\n<U0041> \\x41 |0\n<U0061> \\x41 |0\nEND CHARMAP\n"
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		t.Fatalf("Unable to write charmap: %v", err)
	}
	var out bytes.Buffer
	failed, err := verifyCharmap(name, &out)
	if err != nil {
		t.Fatalf("verifyCharmap failed: %v", err)
	}
	if failed != 1 {
		t.Errorf("Expected 1 failure got: %d", failed)
	}
	if out.String() != "Failed round-trip! U+0041 -> 0x41 -> U+0061\n" {
		t.Errorf("Output got: %q", out.String())
	}
	if _, err := verifyCharmap(filepath.Join(t.TempDir(), "none"), &out); err == nil {
		t.Errorf("Missing file verified")
	}
}

// run closes the log file and returns the status instead of exiting.
func TestRun(t *testing.T) {
	logName := filepath.Join(t.TempDir(), "run.log")
	saved := os.Args
	defer func() { os.Args = saved }()
	os.Args = []string{"bcdconv", "-l", logName, "-k", "unicode"}

	if status := run(); status != 0 {
		t.Errorf("run status got: %d", status)
	}
	text, err := os.ReadFile(logName)
	if err != nil {
		t.Fatalf("Log file not written: %v", err)
	}
	if !strings.Contains(string(text), "INFO: Checked set=UNICODE failed=0") {
		t.Errorf("Log file got: %s", text)
	}
}

func TestWriteStandard(t *testing.T) {
	var out bytes.Buffer
	if err := writeStandard("IBM437", &out); err != nil {
		t.Fatalf("writeStandard failed: %v", err)
	}
	if !strings.Contains(out.String(), "<U00C7> \\x80 |0\n") {
		t.Errorf("Output missing C cedilla")
	}
	if strings.Count(out.String(), "\n") != 256 {
		t.Errorf("Expected 256 lines")
	}
}
