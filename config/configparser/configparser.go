/*
 * bcdconv - Configuration file.
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

package configparser

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/rcornwell/bcdconv/charset/encoding"
)

/* Configuration file format (TOML):
 *
 * from = "unicode"            # Default input set.
 * to = "ascii"                # Default output set.
 * log_file = "bcdconv.log"
 * debug = false
 *
 * [encoding.<name>]           # Derived character set.
 * base = "unicode"            # Set to start from, may be defined later
 *                             # in the file but not in a loop.
 * substitute = "?"            # Shown for codes with no character.
 * [encoding.<name>.overrides]
 * "074" = "^"                 # Octal BCD code = one character.
 */

// Derived character set definition.
type EncodingDef struct {
	Base       string            `toml:"base"`
	Substitute string            `toml:"substitute"`
	Overrides  map[string]string `toml:"overrides"`
}

type Config struct {
	From      string                 `toml:"from"`
	To        string                 `toml:"to"`
	LogFile   string                 `toml:"log_file"`
	Debug     bool                   `toml:"debug"`
	Encodings map[string]EncodingDef `toml:"encoding"`
}

// Load in a configuration file.
func Load(name string) (*Config, error) {
	config := &Config{}
	if _, err := toml.DecodeFile(name, config); err != nil {
		return nil, fmt.Errorf("unable to load config %s: %w", name, err)
	}
	config.setDefaults()
	return config, nil
}

// Decode configuration text.
func Decode(text string) (*Config, error) {
	config := &Config{}
	if _, err := toml.Decode(text, config); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	config.setDefaults()
	return config, nil
}

// Configuration with no file.
func Default() *Config {
	config := &Config{}
	config.setDefaults()
	return config
}

func (config *Config) setDefaults() {
	if config.From == "" {
		config.From = "unicode"
	}
	if config.To == "" {
		config.To = "unicode"
	}
}

// Register every derived set. A set is built once its base exists, so
// sets may refer to each other in any order; otherwise name order is used.
func (config *Config) Apply() error {
	defined := map[string]bool{}
	for name := range config.Encodings {
		defined[strings.ToUpper(name)] = true
	}

	pending := slices.Sorted(maps.Keys(config.Encodings))
	for len(pending) > 0 {
		var waiting []string
		for _, name := range pending {
			def := config.Encodings[name]
			if defined[strings.ToUpper(def.Base)] {
				waiting = append(waiting, name)
				continue
			}
			e, err := def.build(name)
			if err != nil {
				return err
			}
			if err := encoding.Register(e); err != nil {
				return err
			}
			delete(defined, strings.ToUpper(name))
		}
		if len(waiting) == len(pending) {
			name := waiting[0]
			return fmt.Errorf("encoding %s: base %s is part of a loop", name, config.Encodings[name].Base)
		}
		pending = waiting
	}
	return nil
}

// Create the set described by def.
func (def EncodingDef) build(name string) (*encoding.Encoding, error) {
	if def.Base == "" {
		return nil, fmt.Errorf("encoding %s: no base given", name)
	}
	base, err := encoding.Lookup(def.Base)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", name, err)
	}

	overrides := map[byte]rune{}
	for key, value := range def.Overrides {
		code, err := strconv.ParseUint(key, 8, 8)
		if err != nil || code > 0o77 {
			return nil, fmt.Errorf("encoding %s: code %q not octal 0-77", name, key)
		}
		r, err := single(value)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: code %s: %w", name, key, err)
		}
		overrides[byte(code)] = r
	}

	e := encoding.Derive(name, base, overrides)
	if def.Substitute != "" {
		r, err := single(def.Substitute)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: substitute: %w", name, err)
		}
		e.Substitute = r
	}
	return e, nil
}

// Return the only character of s.
func single(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.New("value must be one character: " + strconv.Quote(s))
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
