// SPDX-License-Identifier: EPL-2.0

package click

import (
	"fmt"
	"math/bits"
)

// Division is the metrical role of a click: a bar line or the note value of
// the subdivision it marks.
type Division int

const (
	Bar          Division = 1
	Quarter      Division = 4
	Eighth       Division = 8
	Sixteenth    Division = 16
	ThirtySecond Division = 32
)

// Divisions lists every supported division in classification order.
var Divisions = []Division{Bar, Quarter, Eighth, Sixteenth, ThirtySecond}

// Valid reports whether d is one of Divisions.
func (d Division) Valid() bool {
	switch d {
	case Bar, Quarter, Eighth, Sixteenth, ThirtySecond:
		return true
	}
	return false
}

// Exponent returns log2(d), the form a MIDI time signature stores its
// denominator in.
func (d Division) Exponent() int {
	return bits.TrailingZeros(uint(d))
}

// Quarters returns the length of one click of division d in quarter notes.
func (d Division) Quarters() float64 {
	return 4 / float64(d)
}

func (d Division) String() string {
	switch d {
	case Bar:
		return "bar"
	case Quarter:
		return "1/4"
	case Eighth:
		return "1/8"
	case Sixteenth:
		return "1/16"
	case ThirtySecond:
		return "1/32"
	}
	return fmt.Sprintf("Division(%d)", int(d))
}
