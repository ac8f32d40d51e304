/*
 * bcdconv - Hex and octal string builders.
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

package hex

import "strings"

var hexMap = "0123456789ABCDEF"

// Write four hex digits of a code point, as used in <UHHHH>.
func FormatCodepoint(str *strings.Builder, r rune) {
	shift := 12
	for range 4 {
		str.WriteByte(hexMap[(r>>shift)&0xf])
		shift -= 4
	}
}

// Write two hex digits of a byte.
func FormatByte(str *strings.Builder, data byte) {
	str.WriteByte(hexMap[(data>>4)&0xf])
	str.WriteByte(hexMap[data&0xf])
}

// Write a byte in octal without leading zeros.
func FormatOctal(str *strings.Builder, data byte) {
	if data >= 0o100 {
		str.WriteByte(hexMap[data>>6])
	}
	if data >= 0o10 {
		str.WriteByte(hexMap[(data>>3)&0o7])
	}
	str.WriteByte(hexMap[data&0o7])
}

// Code point as U+HHHH.
func Codepoint(r rune) string {
	var str strings.Builder
	str.WriteString("U+")
	// Digits above the low four, leading zeros dropped.
	lead := false
	for shift := 20; shift >= 16; shift -= 4 {
		digit := (r >> shift) & 0xf
		if digit == 0 && !lead {
			continue
		}
		lead = true
		str.WriteByte(hexMap[digit])
	}
	FormatCodepoint(&str, r)
	return str.String()
}

// Byte as 0xHH.
func Byte(data byte) string {
	var str strings.Builder
	str.WriteString("0x")
	FormatByte(&str, data)
	return str.String()
}

// Byte as 0oNN.
func Octal(data byte) string {
	var str strings.Builder
	str.WriteString("0o")
	FormatOctal(&str, data)
	return str.String()
}
