// seehuhn.de/go/dalmatian - generative brush-stroke graphics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package fracgeom implements exact-rational 2D geometry: points, point
// lists and SVG-like paths whose coordinates are fractions.
//
// All compositions (addition, scaling, translation) are exact.  Operations
// which need a trigonometric value use a fixed grid of 1/1000, see
// [CosTurn], [SinTurn] and [AtanTurn].  Angles are always given as
// fractions of a full turn.
package fracgeom

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/rand/v2"
	"strings"
)

// ErrSyntax is returned when a string cannot be parsed as a fraction.
var ErrSyntax = errors.New("invalid fraction")

// Frac is an exact rational number.  Values are immutable; all arithmetic
// returns a new Frac.  The zero value represents 0.
type Frac struct {
	r *big.Rat
}

// NewFrac returns num/den.  It panics if den is zero.
func NewFrac(num, den int64) Frac {
	if den == 0 {
		panic("fracgeom: zero denominator")
	}
	return Frac{r: big.NewRat(num, den)}
}

// Int returns the integer n as a fraction.
func Int(n int64) Frac {
	return Frac{r: new(big.Rat).SetInt64(n)}
}

// ParseFrac parses a fraction in the notation "n", "n/d" or "-n/d".
// Decimal notation like "0.25" is accepted as well.
func ParseFrac(s string) (Frac, error) {
	s = strings.TrimSpace(s)
	r, ok := new(big.Rat).SetString(s)
	if !ok || s == "" {
		return Frac{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return Frac{r: r}, nil
}

// MustParseFrac is like [ParseFrac] but panics on invalid input.
func MustParseFrac(s string) Frac {
	f, err := ParseFrac(s)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Frac) rat() *big.Rat {
	if f.r == nil {
		return new(big.Rat)
	}
	return f.r
}

// String returns "n" for integers and the reduced "n/d" otherwise.
func (f Frac) String() string {
	return f.rat().RatString()
}

// Add returns f+g.
func (f Frac) Add(g Frac) Frac {
	return Frac{r: new(big.Rat).Add(f.rat(), g.rat())}
}

// Sub returns f-g.
func (f Frac) Sub(g Frac) Frac {
	return Frac{r: new(big.Rat).Sub(f.rat(), g.rat())}
}

// Mul returns f*g.
func (f Frac) Mul(g Frac) Frac {
	return Frac{r: new(big.Rat).Mul(f.rat(), g.rat())}
}

// Div returns f/g.  It panics if g is zero.
func (f Frac) Div(g Frac) Frac {
	if g.IsZero() {
		panic("fracgeom: division by zero")
	}
	return Frac{r: new(big.Rat).Quo(f.rat(), g.rat())}
}

// Neg returns -f.
func (f Frac) Neg() Frac {
	return Frac{r: new(big.Rat).Neg(f.rat())}
}

// Abs returns |f|.
func (f Frac) Abs() Frac {
	return Frac{r: new(big.Rat).Abs(f.rat())}
}

// Cmp compares f and g and returns -1, 0 or +1.
func (f Frac) Cmp(g Frac) int {
	return f.rat().Cmp(g.rat())
}

// Equal reports whether f and g represent the same number.
func (f Frac) Equal(g Frac) bool {
	return f.Cmp(g) == 0
}

// Sign returns -1, 0 or +1 depending on the sign of f.
func (f Frac) Sign() int {
	return f.rat().Sign()
}

// IsZero reports whether f is 0.
func (f Frac) IsZero() bool {
	return f.Sign() == 0
}

// Float64 returns the float64 value nearest to f.
func (f Frac) Float64() float64 {
	x, _ := f.rat().Float64()
	return x
}

// truncMul returns f*n, truncated towards zero.
func (f Frac) truncMul(n int64) int64 {
	r := f.rat()
	num := new(big.Int).Mul(r.Num(), big.NewInt(n))
	return num.Quo(num, r.Denom()).Int64()
}

// format3 formats f*scale with exactly three decimals.
func (f Frac) format3(scale Frac) string {
	x := f.Mul(scale).Float64()
	if x == 0 {
		// avoid "-0.000" for exact zeros
		x = 0
	}
	return fmt.Sprintf("%.3f", x)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (f Frac) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (f *Frac) UnmarshalText(text []byte) error {
	g, err := ParseFrac(string(text))
	if err != nil {
		return err
	}
	*f = g
	return nil
}

// FracList is an ordered list of fractions.  Its text form is a
// space-separated list like "0 1/4 1/2 3/4".
type FracList []Frac

// ParseFracList parses a space-separated list of fractions.
func ParseFracList(s string) (FracList, error) {
	fields := strings.Fields(s)
	res := make(FracList, 0, len(fields))
	for _, field := range fields {
		f, err := ParseFrac(field)
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, nil
}

// MustParseFracList is like [ParseFracList] but panics on invalid input.
func MustParseFracList(s string) FracList {
	l, err := ParseFracList(s)
	if err != nil {
		panic(err)
	}
	return l
}

func (l FracList) String() string {
	parts := make([]string, len(l))
	for i, f := range l {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}

// Equal reports whether both lists hold the same values in the same order.
func (l FracList) Equal(other FracList) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if !l[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Choice returns a random element of l.  The list must not be empty.
func (l FracList) Choice(rng *rand.Rand) Frac {
	return l[rng.IntN(len(l))]
}

// Sample returns n distinct elements of l in random order.
// If n exceeds the length of the list, all elements are returned.
func (l FracList) Sample(rng *rand.Rand, n int) FracList {
	n = min(max(n, 0), len(l))
	res := make(FracList, n)
	for i, j := range rng.Perm(len(l))[:n] {
		res[i] = l[j]
	}
	return res
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (l FracList) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (l *FracList) UnmarshalText(text []byte) error {
	m, err := ParseFracList(string(text))
	if err != nil {
		return err
	}
	*l = m
	return nil
}

// FractionsBetween returns all distinct fractions i/d with 0 <= i < d < denom
// which lie in the closed interval [lo, hi], in increasing order.
func FractionsBetween(lo, hi Frac, denom int) FracList {
	var res FracList
	seen := make(map[string]bool)
	for d := 1; d < denom; d++ {
		for i := range d {
			f := NewFrac(int64(i), int64(d))
			if f.Cmp(lo) < 0 || f.Cmp(hi) > 0 || seen[f.String()] {
				continue
			}
			seen[f.String()] = true
			res = append(res, f)
		}
	}
	sortFracs(res)
	return res
}

// trigScale is the denominator of all quantized trigonometric values.
const trigScale = 1000

var (
	pi       = math.Pi
	degToRad = pi / 180.0
)

func radians(turn Frac) float64 {
	return turn.Mul(Int(360)).Float64() * degToRad
}

// CosTurn returns the cosine of the angle a, given as a fraction of a full
// turn.  The result is truncated to a multiple of 1/1000.
func CosTurn(a Frac) Frac {
	return NewFrac(int64(trigScale*math.Cos(radians(a))), trigScale)
}

// SinTurn returns the sine of the angle a, given as a fraction of a full
// turn.  The result is truncated to a multiple of 1/1000.
func SinTurn(a Frac) Frac {
	return NewFrac(int64(trigScale*math.Sin(radians(a))), trigScale)
}

// AtanTurn returns the arc tangent of q as a fraction of a full turn,
// rounded half-to-even to the nearest 1/1000.
func AtanTurn(q Frac) Frac {
	turns := math.Atan(q.Float64()) / (2 * pi)
	return NewFrac(int64(math.RoundToEven(turns*trigScale)), trigScale)
}
