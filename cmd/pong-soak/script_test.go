package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/pong/sim"
)

func TestParsePattern(t *testing.T) {
	for p, name := range patternNames {
		got, err := parsePattern(name)
		require.NoError(t, err)
		assert.Equal(t, p, got)
		assert.Equal(t, name, got.String())
	}

	_, err := parsePattern("sideways")
	assert.Error(t, err)
}

func TestScriptNext(t *testing.T) {
	cfg := sim.DefaultConfig()

	t.Run("idle", func(t *testing.T) {
		s := newScript(cfg, patternIdle, 10)
		assert.Equal(t, 0, s.next(0).Len())
	})

	t.Run("both holds all four keys", func(t *testing.T) {
		s := newScript(cfg, patternBoth, 10)
		assert.Equal(t, []ebiten.Key{ebiten.KeyA, ebiten.KeyD, ebiten.KeyArrowLeft, ebiten.KeyArrowRight}, s.next(3).Keys())
	})

	t.Run("alternate flips every period", func(t *testing.T) {
		s := newScript(cfg, patternAlternate, 10)

		keys := s.next(9)
		assert.True(t, keys.Pressed(ebiten.KeyA))
		assert.True(t, keys.Pressed(ebiten.KeyArrowRight))
		assert.Equal(t, 2, keys.Len())

		keys = s.next(10)
		assert.True(t, keys.Pressed(ebiten.KeyD))
		assert.True(t, keys.Pressed(ebiten.KeyArrowLeft))
		assert.Equal(t, 2, keys.Len())
	})

	t.Run("period is at least one tick", func(t *testing.T) {
		s := newScript(cfg, patternAlternate, 0)
		assert.True(t, s.next(0).Pressed(ebiten.KeyA))
		assert.True(t, s.next(1).Pressed(ebiten.KeyD))
	})
}
