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

package fracgeom

import (
	"errors"
	"math"
	"testing"
)

func TestV2dRotate(t *testing.T) {
	p := MustParseV2d("1/3 -2/5")

	if got := p.Rotate(NewFrac(1, 2)); !got.Equal(p.Neg()) {
		t.Errorf("half turn: got %s, want %s", got, p.Neg())
	}
	if got := p.Rotate(NewFrac(1, 4)); !got.Equal(MustParseV2d("2/5 1/3")) {
		t.Errorf("quarter turn: got %s", got)
	}
	if got := p.Rotate(Int(0)); !got.Equal(p) {
		t.Errorf("zero turn: got %s", got)
	}
}

func TestV2dIdentities(t *testing.T) {
	p := MustParseV2d("1/2 -1/3")
	v := MustParseV2d("7/9 5")

	if got := p.Mul(Int(1)); !got.Equal(p) {
		t.Errorf("p*1 = %s", got)
	}
	if got := p.Add(v).Sub(v); !got.Equal(p) {
		t.Errorf("p+v-v = %s", got)
	}
	if got := p.NegX().NegY(); !got.Equal(p.Neg()) {
		t.Errorf("per-axis negation: %s", got)
	}
	if got := p.SquareMagnitude(); !got.Equal(MustParseFrac("13/36")) {
		t.Errorf("square magnitude: %s", got)
	}
}

func TestV2dAngle(t *testing.T) {
	cases := []struct {
		v    string
		want string
	}{
		{"1 1", "1/8"},
		{"-1 1", "-1/8"},
		{"0 1", "1/4"},
		{"1 0", "0"},
	}
	for _, c := range cases {
		if got := MustParseV2d(c.v).Angle().String(); got != c.want {
			t.Errorf("angle of %s = %s, want %s", c.v, got, c.want)
		}
	}
}

func TestV2dFormat(t *testing.T) {
	p := MustParseV2d("1/2 -1/3")
	if got := p.Cartesian(Int(10)); got != "(5.000,3.333)" {
		t.Errorf("Cartesian: %q", got)
	}
	if got := p.SVG(Int(100)); got != "50.000 33.333" {
		t.Errorf("SVG: %q", got)
	}
	if got := (V2d{}).Cartesian(Int(10)); got != "(0.000,0.000)" {
		t.Errorf("origin: %q", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{XY: MustParseV2d("0 0"), Width: Int(1), Height: NewFrac(1, 2)}
	cases := []struct {
		p    string
		want bool
	}{
		{"0 0", true},
		{"1 1/2", true},
		{"1/2 1/4", true},
		{"1 3/4", false},
		{"-1/100 0", false},
	}
	for _, c := range cases {
		if got := MustParseV2d(c.p).IsInsideRect(r); got != c.want {
			t.Errorf("%s inside %s: got %t", c.p, r, got)
		}
	}
}

func TestV2dListOps(t *testing.T) {
	a, err := ParseV2dList("1 1, 2 2, 3 3")
	if err != nil {
		t.Fatal(err)
	}
	b := MustParseV2dList("1 0")

	if got := a.Add(b).String(); got != "2 1, 2 2, 3 3" {
		t.Errorf("Add: %s", got)
	}
	if got := b.Sub(a).String(); got != "0 -1, -2 -2, -3 -3" {
		t.Errorf("Sub: %s", got)
	}
	if got := a.Mirror().String(); got != "1 1, 2 2, 3 3, 3 3, 2 2, 1 1" {
		t.Errorf("Mirror: %s", got)
	}
	if got := a.Circular().String(); got != "1 1, 2 2, 3 3, 1 1" {
		t.Errorf("Circular: %s", got)
	}
	if got := a.Bigrams(); len(got) != 2 || !got[1][0].Equal(a[1]) || !got[1][1].Equal(a[2]) {
		t.Errorf("Bigrams: %v", got)
	}
	r := MustParseV2dList("1 -2, -1/2 3, 0 0").ContainingRect()
	if r.String() != "xy -1/2 -2 width 3/2 height 5" {
		t.Errorf("ContainingRect: %s", r)
	}
}

func TestCorrelation(t *testing.T) {
	var up, down V2dList
	for i := range 10 {
		up = append(up, V2d{X: Int(int64(i)), Y: Int(int64(2 * i))})
		down = append(down, V2d{X: Int(int64(i)), Y: Int(int64(-i))})
	}

	c, err := up.Correlation()
	if err != nil || math.Abs(c-1) > 1e-12 {
		t.Errorf("increasing: %g, %v", c, err)
	}
	c, err = down.Correlation()
	if err != nil || math.Abs(c+1) > 1e-12 {
		t.Errorf("decreasing: %g, %v", c, err)
	}

	flat := MustParseV2dList("0 1, 1 1, 2 1")
	if _, err := flat.Correlation(); !errors.Is(err, ErrZeroVariance) {
		t.Errorf("flat: expected ErrZeroVariance, got %v", err)
	}
	if _, err := flat[:1].Correlation(); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("single point: expected ErrTooFewPoints, got %v", err)
	}
}

func TestMedianRange(t *testing.T) {
	var l V2dList
	for _, i := range []int64{4, 9, 0, 7, 1, 3, 8, 2, 6, 5} {
		l = append(l, V2d{X: Int(i), Y: Int(2 * i)})
	}
	if got := l.MedianRange(5); !got.Equal(MustParseV2d("5 10")) {
		t.Errorf("MedianRange(5) = %s", got)
	}
	if got := l.MedianRange(100); !got.Equal(MustParseV2d("9 18")) {
		t.Errorf("MedianRange(100) = %s", got)
	}
}
