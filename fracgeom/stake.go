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

// maxStakePoints bounds the length of generated stakes, in case the
// termination conditions are never met.
const maxStakePoints = 10000

// CircleStake describes a spiral of points around the origin.
//
// The radius starts at RadiusFirst.  The increment starts at
// RadiusInc*RadiusNext and is multiplied by RadiusNext before every step.
// The angle works the same way, starting at 0.
// Points are generated while the radius is at least RadiusLast and the
// angle is at most AngleLast.
type CircleStake struct {
	RadiusFirst, RadiusLast, RadiusInc, RadiusNext Frac
	AngleLast, AngleInc, AngleNext                 Frac
}

// DefaultCircleStake returns a spiral which shrinks from radius 1/4 to
// radius 1/8 over one turn.
func DefaultCircleStake() CircleStake {
	return CircleStake{
		RadiusFirst: NewFrac(1, 4),
		RadiusLast:  NewFrac(1, 8),
		RadiusInc:   NewFrac(-1, 48),
		RadiusNext:  Int(1),
		AngleLast:   Int(1),
		AngleInc:    NewFrac(1, 64),
		AngleNext:   Int(1),
	}
}

// Points returns the points of the stake.
func (c CircleStake) Points() V2dList {
	var res V2dList
	radius := c.RadiusFirst
	radiusInc := c.RadiusInc.Mul(c.RadiusNext)
	var angle Frac
	angleInc := c.AngleInc.Mul(c.AngleNext)
	for len(res) < maxStakePoints {
		res = append(res, V2d{X: radius.Mul(CosTurn(angle)), Y: radius.Mul(SinTurn(angle))})
		radiusInc = radiusInc.Mul(c.RadiusNext)
		radius = radius.Add(radiusInc)
		angleInc = angleInc.Mul(c.AngleNext)
		angle = angle.Add(angleInc)
		if radius.Cmp(c.RadiusLast) < 0 || angle.Cmp(c.AngleLast) > 0 {
			break
		}
	}
	return res
}

// SineStake describes a sine wave from x = -AmplitudeFirst to
// x = AmplitudeFirst.
//
// The amplitude and the phase evolve like the radius and the angle of
// a [CircleStake]; PeriodLast is the phase at the right end.
type SineStake struct {
	AmplitudeFirst, AmplitudeLast, AmplitudeInc, AmplitudeNext Frac
	PeriodLast, PeriodInc, PeriodNext                          Frac
}

// Points returns the points of the stake.
func (s SineStake) Points() V2dList {
	var res V2dList
	amplitude := s.AmplitudeFirst
	amplitudeInc := s.AmplitudeInc.Mul(s.AmplitudeNext)
	var period Frac
	periodInc := s.PeriodInc.Mul(s.PeriodNext)
	for len(res) < maxStakePoints {
		x := s.AmplitudeFirst.Neg().Add(Int(2).Mul(s.AmplitudeFirst).Mul(period).Div(s.PeriodLast))
		res = append(res, V2d{X: x, Y: amplitude.Mul(SinTurn(period))})
		amplitudeInc = amplitudeInc.Mul(s.AmplitudeNext)
		amplitude = amplitude.Add(amplitudeInc)
		periodInc = periodInc.Mul(s.PeriodNext)
		period = period.Add(periodInc)
		if amplitude.Cmp(s.AmplitudeLast) < 0 || period.Cmp(s.PeriodLast) > 0 {
			break
		}
	}
	return res
}
