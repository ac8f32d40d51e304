/*
 * bcdconv - Main process.
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
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	charmap "github.com/rcornwell/bcdconv/charset/charmap"
	encoding "github.com/rcornwell/bcdconv/charset/encoding"
	roundtrip "github.com/rcornwell/bcdconv/charset/roundtrip"
	config "github.com/rcornwell/bcdconv/config/configparser"
	card "github.com/rcornwell/bcdconv/util/card"
	logger "github.com/rcornwell/bcdconv/util/logger"
)

// Check name that selects the punch card code test.
const punchCheck = "punch"

func main() {
	os.Exit(run())
}

// Body of main, returns the exit status.
func run() int {
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Log debug to console")
	optFrom := getopt.StringLong("from", 'f', "", "Input character set")
	optTo := getopt.StringLong("to", 't', "", "Output character set")
	optCheck := getopt.StringLong("check", 'k', "", "Round-trip check a character set, punch, or all")
	optCharmap := getopt.StringLong("charmap", 'm', "", "Parse and verify a charmap file")
	optStandard := getopt.StringLong("standard", 's', "", "Write a standard code page as a charmap")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		return 0
	}

	cfg := config.Default()
	if *optConfig != "" {
		var err error
		cfg, err = config.Load(*optConfig)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	logName := cfg.LogFile
	if *optLogFile != "" {
		logName = *optLogFile
	}
	var file io.Writer
	if logName != "" {
		f, err := os.Create(logName)
		if err != nil {
			fmt.Fprintln(os.Stderr, "unable to create log file:", err)
			return 1
		}
		defer f.Close()
		file = f
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger := slog.New(logger.NewHandler(file, os.Stderr, &slog.HandlerOptions{Level: programLevel}, *optDebug || cfg.Debug))
	slog.SetDefault(Logger)

	if err := cfg.Apply(); err != nil {
		Logger.Error(err.Error())
		return 1
	}

	status := 0
	action := false
	if *optStandard != "" {
		action = true
		if err := writeStandard(*optStandard, os.Stdout); err != nil {
			Logger.Error(err.Error())
			return 1
		}
	}

	if *optCharmap != "" {
		action = true
		failed, err := verifyCharmap(*optCharmap, os.Stdout)
		if err != nil {
			Logger.Error(err.Error())
			return 1
		}
		if failed != 0 {
			status = 2
		}
	}

	if *optCheck != "" {
		action = true
		failed, err := checkSets(*optCheck, os.Stdout)
		if err != nil {
			Logger.Error(err.Error())
			return 1
		}
		if failed != 0 {
			status = 2
		}
	}

	if !action {
		fromName := cfg.From
		if *optFrom != "" {
			fromName = *optFrom
		}
		toName := cfg.To
		if *optTo != "" {
			toName = *optTo
		}
		from, err := encoding.Lookup(fromName)
		if err != nil {
			Logger.Error("Unsupported from encoding", "error", err)
			return 1
		}
		to, err := encoding.Lookup(toName)
		if err != nil {
			Logger.Error("Unsupported to encoding", "error", err)
			return 1
		}
		Logger.Debug("converting", "from", from.Name, "to", to.Name)
		if err := convertLines(os.Stdin, os.Stdout, from, to); err != nil {
			Logger.Error("Error reading line from stdin", "error", err)
			return 1
		}
	}
	return status
}

// Translate each input line and write it out.
func convertLines(in io.Reader, out io.Writer, from, to *encoding.Encoding) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, encoding.Convert(from, to, scanner.Text())); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Round-trip check one set, the punch codes, or everything for "all".
// Returns number of failures.
func checkSets(name string, out io.Writer) (int, error) {
	failed := 0
	all := strings.EqualFold(name, "all")
	if all || strings.EqualFold(name, punchCheck) {
		list := card.CheckPunch(out)
		slog.Info("Checked", "set", punchCheck, "failed", len(list))
		failed += len(list)
		if !all {
			return failed, nil
		}
	}

	names := []string{name}
	if all {
		names = encoding.Names()
	}
	for _, n := range names {
		e, err := encoding.Lookup(n)
		if err != nil {
			return failed, err
		}
		list := roundtrip.Check(e.Mapping(), out)
		slog.Info("Checked", "set", e.Name, "failed", len(list))
		failed += len(list)
	}
	return failed, nil
}

// Parse a charmap file and report entries that do not round-trip.
func verifyCharmap(name string, out io.Writer) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	m, err := charmap.ParseReader(f)
	if err != nil {
		return 0, err
	}
	list := roundtrip.Verify(m, out)
	slog.Info("Charmap loaded", "file", name, "codes", m.Len(), "bytes", len(m.Decode), "failed", len(list))
	return len(list), nil
}

// Write a standard code page in charmap form.
func writeStandard(name string, out io.Writer) error {
	m, err := charmap.Standard(name)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, charmap.Format(m))
	return err
}
