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

package tortuga

import (
	"seehuhn.de/go/dalmatian/dlmt"
	"seehuhn.de/go/dalmatian/fracgeom"
)

type target int

const (
	targetAngle target = iota
	targetMagnitude
	targetBrush
	targetTag
)

// state is the complete interpreter state.  It holds no references, so
// copies are independent snapshots.
type state struct {
	xy, prev fracgeom.V2d

	angle, magnitude, brush, tag int
	negAngle, negMagnitude       bool

	target target
}

// Producer runs the turtle over the chain of a configuration.
type Producer struct {
	cfg Config
}

// NewProducer returns a producer for the given configuration.
func NewProducer(cfg Config) (*Producer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Producer{cfg: cfg}, nil
}

// Produce interprets the chain and returns the emitted brushstrokes.
func (p *Producer) Produce() []dlmt.Brushstroke {
	cfg := p.cfg
	s := state{xy: cfg.XY, prev: cfg.XY}
	var stack []state
	var res []dlmt.Brushstroke

	for _, c := range cfg.Chain {
		switch c {
		case 'A':
			s.target = targetAngle
		case 'L':
			s.target = targetMagnitude
		case 'B':
			s.target = targetBrush
		case 'T':
			s.target = targetTag
		case '>':
			s.move(cfg, +1)
		case '<':
			s.move(cfg, -1)
		case 'Z':
			s.reset()
		case '-':
			switch s.target {
			case targetAngle:
				s.negAngle = !s.negAngle
			case targetMagnitude:
				s.negMagnitude = !s.negMagnitude
			}
		case 'P':
			res = append(res, s.emit(cfg))
		case '[':
			stack = append(stack, s)
		case ']':
			if n := len(stack); n > 0 {
				s = stack[n-1]
				stack = stack[:n-1]
			}
		}
	}
	return res
}

// move advances the selected cursor by delta, wrapping around.
func (s *state) move(cfg Config, delta int) {
	step := func(idx, n int) int {
		return ((idx+delta)%n + n) % n
	}
	switch s.target {
	case targetAngle:
		s.angle = step(s.angle, len(cfg.Angles))
	case targetMagnitude:
		s.magnitude = step(s.magnitude, len(cfg.Magnitudes))
	case targetBrush:
		s.brush = step(s.brush, len(cfg.BrushIDs))
	case targetTag:
		s.tag = step(s.tag, len(cfg.TagIDs))
	}
}

func (s *state) reset() {
	switch s.target {
	case targetAngle:
		s.angle = 0
	case targetMagnitude:
		s.magnitude = 0
	case targetBrush:
		s.brush = 0
	case targetTag:
		s.tag = 0
	}
}

// heading returns the direction from the previous to the current position.
func (s *state) heading() fracgeom.Frac {
	if s.xy.Equal(s.prev) {
		return fracgeom.Frac{}
	}
	return s.xy.Sub(s.prev).Angle()
}

// emit moves the turtle and returns the brushstroke at the new position.
func (s *state) emit(cfg Config) dlmt.Brushstroke {
	angle := cfg.Angles[s.angle]
	if s.negAngle {
		angle = angle.Neg()
	}
	magnitude := cfg.Magnitudes[s.magnitude]
	signed := magnitude
	if s.negMagnitude {
		signed = signed.Neg()
	}

	direction := s.heading().Add(angle)
	delta := fracgeom.FromMagnitudeAngle(signed.Mul(cfg.MagnitudePageRatio), direction)
	s.prev, s.xy = s.xy, s.xy.Add(delta)

	var tags []string
	if tag := cfg.TagIDs[s.tag]; tag != "" {
		tags = []string{tag}
	}
	return dlmt.Brushstroke{
		BrushID: cfg.BrushIDs[s.brush],
		XY:      s.xy,
		Scale:   magnitude.Mul(cfg.ScaleMagnitudeRatio),
		Angle:   direction.Add(cfg.AngleOffset),
		Tags:    tags,
	}
}
