/*
 * bcdconv - IBM 1401 card chain character sets.
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

// Taken from the IBM 1401 Reference Manual A24-1403-5, using the card
// chain. Index is the six bit B A 8 4 2 1 code, C (parity) is ignored.
var cardChain = []rune{
	/*    1  2  3  4  5  6  7 */
	' ', '1', '2', '3', '4', '5', '6', '7', /* 00 - 07 */
	/* 8  9  0  #  @  :  >  √ */
	'8', '9', '0', '#', '@', ':', '>', '√', /* 10 - 17 */
	/* ¢  /  S  T  U  V  W  X */
	'¢', '/', 'S', 'T', 'U', 'V', 'W', 'X', /* 20 - 27 */
	/* Y  Z  ⧧  ,  %  =  '  " */
	'Y', 'Z', '⧧', ',', '%', '=', '\'', '"', /* 30 - 37 */
	/* -  J  K  L  M  N  O  P */
	'-', 'J', 'K', 'L', 'M', 'N', 'O', 'P', /* 40 - 47 */
	/* Q  R  !  $  *  )  ;  Δ */
	'Q', 'R', '!', '$', '*', ')', ';', 'Δ', /* 50 - 57 */
	/* &  A  B  C  D  E  F  G */
	'&', 'A', 'B', 'C', 'D', 'E', 'F', 'G', /* 60 - 67 */
	/* H  I  ?  .  ⌑  (  <  ⯒ */
	'H', 'I', '?', '.', '⌑', '(', '<', '⯒', /* 70 - 77 */
}

// Plain ASCII stand ins for the glyphs above that are not ASCII.
var asciiSubstitutes = map[byte]rune{
	0o17: '`', // Tape mark
	0o20: '[', // Cent
	0o32: '|', // Record mark
	0o57: '~', // Delta
	0o74: '^', // Lozenge
	0o77: '}', // Group mark
}

// register the built in sets on initialize.
func init() {
	card := New("UNICODE", cardChain)
	if err := Register(card); err != nil {
		panic(err)
	}
	if err := Register(Derive("ASCII", card, asciiSubstitutes)); err != nil {
		panic(err)
	}
}
