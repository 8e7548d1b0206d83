package tree

import "sync"

// Canvas is the in-memory render target. The renderer fills it once and the
// animator recolors star units in place through handles.
type Canvas struct {
	mu    sync.RWMutex
	rows  [][]Unit
	stars []Star
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

func (c *Canvas) Replace(rows [][]Unit) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rows = rows
	c.stars = c.stars[:0]
	for r, row := range rows {
		for col, u := range row {
			if u.Kind == KindStar {
				c.stars = append(c.stars, Star{Handle: Handle{Row: r, Col: col}, Tag: u.Tag})
			}
		}
	}
}

// Stars returns every star unit in render order.
func (c *Canvas) Stars() []Star {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Star, len(c.stars))
	copy(out, c.stars)
	return out
}

// SetColor recolors a star unit. Handles that do not address a star are ignored.
func (c *Canvas) SetColor(h Handle, color string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if h.Row < 0 || h.Row >= len(c.rows) || h.Col < 0 || h.Col >= len(c.rows[h.Row]) {
		return
	}
	if c.rows[h.Row][h.Col].Kind != KindStar {
		return
	}
	c.rows[h.Row][h.Col].Color = color
}

// Unit returns the unit at h.
func (c *Canvas) Unit(h Handle) (Unit, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if h.Row < 0 || h.Row >= len(c.rows) || h.Col < 0 || h.Col >= len(c.rows[h.Row]) {
		return Unit{}, false
	}
	return c.rows[h.Row][h.Col], true
}

// Rows returns a snapshot of the canvas.
func (c *Canvas) Rows() [][]Unit {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([][]Unit, len(c.rows))
	for i, row := range c.rows {
		out[i] = append([]Unit(nil), row...)
	}
	return out
}
