// Package blink cycles the colors of identified stars on a rendered tree.
//
// Each tick assigns blink identifier i the color of identifier
// (phase+i) mod n, then advances the phase. After n ticks every star is
// back to its starting color. Generic stars are never touched.
package blink

import (
	"time"

	"github.com/san-kum/xmastree/internal/tree"
)

const DefaultInterval = 500 * time.Millisecond

// State is the rotation offset, always in [0, len(ids)).
type State struct {
	Phase int
}

// Recolorer is the part of a render target the animator needs.
type Recolorer interface {
	Stars() []tree.Star
	SetColor(h tree.Handle, color string)
}

type Animator struct {
	ids     []rune
	palette tree.Palette
	state   State
}

func New(p tree.Palette) *Animator {
	return &Animator{ids: tree.BlinkIDs, palette: p}
}

func (a *Animator) State() State { return a.state }

// Rotation returns the color each blink identifier takes at phase.
func (a *Animator) Rotation(phase int) map[rune]string {
	n := len(a.ids)
	colors := make(map[rune]string, n)
	for i, id := range a.ids {
		idx := ((phase+i)%n + n) % n
		colors[id] = a.palette.StarColor(a.ids[idx])
	}
	return colors
}

// Tick recolors every blinking star on r and advances the phase.
func (a *Animator) Tick(r Recolorer) {
	colors := a.Rotation(a.state.Phase)
	for _, s := range r.Stars() {
		if c, ok := colors[s.Tag]; ok {
			r.SetColor(s.Handle, c)
		}
	}
	a.state.Phase = (a.state.Phase + 1) % len(a.ids)
}
