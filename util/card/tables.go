/*
 * bcdconv - Six bit and punch card code tables.
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

package card

// ASCII to six bit BCD, -1 where there is no code. Lower case folds
// onto upper case, and some pairs share a code.
var asciiToSix = [128]int8{
	/* Control                              */
	-1, -1, -1, -1, -1, -1, -1, -1, /* 0 - 37 */
	/* Control                              */
	-1, -1, -1, -1, -1, -1, -1, -1,
	/* Control                              */
	-1, -1, -1, -1, -1, -1, -1, -1,
	/* Control                              */
	-1, -1, -1, -1, -1, -1, -1, -1,
	/*sp    !    "    #    $    %    &    ' */
	0o00, 0o52, -1, 0o32, 0o53, 0o17, 0o60, 0o14, /* 40 - 77 */
	/* (    )    *    +    ,    -    .    / */
	0o34, 0o74, 0o54, 0o60, 0o33, 0o40, 0o73, 0o21,
	/* 0    1    2    3    4    5    6    7 */
	0o12, 0o01, 0o02, 0o03, 0o04, 0o05, 0o06, 0o07,
	/* 8    9    :    ;    <    =    >    ? */
	0o10, 0o11, 0o15, 0o56, 0o76, 0o13, 0o16, 0o72,
	/* @    A    B    C    D    E    F    G */
	0o14, 0o61, 0o62, 0o63, 0o64, 0o65, 0o66, 0o67, /* 100 - 137 */
	/* H    I    J    K    L    M    N    O */
	0o70, 0o71, 0o41, 0o42, 0o43, 0o44, 0o45, 0o46,
	/* P    Q    R    S    T    U    V    W */
	0o47, 0o50, 0o51, 0o22, 0o23, 0o24, 0o25, 0o26,
	/* X    Y    Z    [    \    ]    ^    _ */
	0o27, 0o30, 0o31, 0o75, 0o36, 0o55, 0o57, 0o20,
	/* `    a    b    c    d    e    f    g */
	0o35, 0o61, 0o62, 0o63, 0o64, 0o65, 0o66, 0o67, /* 140 - 177 */
	/* h    i    j    k    l    m    n    o */
	0o70, 0o71, 0o41, 0o42, 0o43, 0o44, 0o45, 0o46,
	/* p    q    r    s    t    u    v    w */
	0o47, 0o50, 0o51, 0o22, 0o23, 0o24, 0o25, 0o26,
	/* x    y    z    {    |    }    ~   del*/
	0o27, 0o30, 0o31, 0o57, 0o77, 0o17, -1, -1,
}
