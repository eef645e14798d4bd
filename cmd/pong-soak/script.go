package main

import (
	"fmt"

	"github.com/plus3/pong/input"
	"github.com/plus3/pong/sim"
)

type pattern int

const (
	patternIdle pattern = iota
	patternUp
	patternDown
	patternBoth
	patternAlternate
)

var patternNames = map[pattern]string{
	patternIdle:      "idle",
	patternUp:        "up",
	patternDown:      "down",
	patternBoth:      "both",
	patternAlternate: "alternate",
}

func (p pattern) String() string {
	return patternNames[p]
}

func parsePattern(name string) (pattern, error) {
	for p, n := range patternNames {
		if n == name {
			return p, nil
		}
	}
	return patternIdle, fmt.Errorf("unknown input pattern %q", name)
}

// script produces the held keys for each tick. Both paddles follow the
// pattern; for alternate the right paddle runs in the opposite phase.
type script struct {
	cfg     sim.Config
	pattern pattern
	period  uint64
	keys    *input.Snapshot
}

func newScript(cfg sim.Config, p pattern, period int) *script {
	return &script{
		cfg:     cfg,
		pattern: p,
		period:  uint64(max(period, 1)),
		keys:    input.NewSnapshot(),
	}
}

func (s *script) next(tick uint64) *input.Snapshot {
	l, r := s.cfg.LeftKeys, s.cfg.RightKeys

	s.keys.Reset()
	switch s.pattern {
	case patternUp:
		s.keys.Press(l.Up, r.Up)
	case patternDown:
		s.keys.Press(l.Down, r.Down)
	case patternBoth:
		s.keys.Press(l.Up, l.Down, r.Up, r.Down)
	case patternAlternate:
		if (tick/s.period)%2 == 0 {
			s.keys.Press(l.Up, r.Down)
		} else {
			s.keys.Press(l.Down, r.Up)
		}
	}
	return s.keys
}
