/*
 * bcdconv - Log handler test cases.
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

package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleLevels(t *testing.T) {
	var file, console bytes.Buffer
	log := slog.New(NewHandler(&file, &console, &slog.HandlerOptions{Level: slog.LevelDebug}, false))
	log.Debug("quiet", "index", "0o10")
	log.Info("loud")

	if !strings.Contains(file.String(), "DEBUG: quiet index=0o10") {
		t.Errorf("Debug not in file: %s", file.String())
	}
	if strings.Contains(console.String(), "quiet") {
		t.Errorf("Debug on console: %s", console.String())
	}
	if !strings.Contains(console.String(), "INFO: loud") {
		t.Errorf("Info not on console: %s", console.String())
	}
}

func TestDebugMode(t *testing.T) {
	var console bytes.Buffer
	h := NewHandler(nil, &console, &slog.HandlerOptions{Level: slog.LevelDebug}, false)
	h.SetDebug(true)
	slog.New(h).Debug("shown")
	if !strings.Contains(console.String(), "DEBUG: shown") {
		t.Errorf("Debug not on console: %s", console.String())
	}
}

func TestLevelFilter(t *testing.T) {
	var file bytes.Buffer
	log := slog.New(NewHandler(&file, nil, nil, true))
	log.Debug("dropped")
	if file.Len() != 0 {
		t.Errorf("Debug written at info level: %s", file.String())
	}
}

func TestAttrsAndGroups(t *testing.T) {
	var file bytes.Buffer
	log := slog.New(NewHandler(&file, nil, nil, false))
	log.With("set", "ASCII").WithGroup("check").Info("done", "failed", 0)
	if !strings.Contains(file.String(), "INFO: done set=ASCII check.failed=0") {
		t.Errorf("Attributes not correct: %s", file.String())
	}
}
