// Package cart holds the in-memory cart aggregate and the per-session
// store. Carts never touch the database: each browsing session gets its
// own cart and loses it when the session expires.
package cart

import (
	"sync"

	"cafe-order/models"
)

// Line is one (menu item, quantity) pairing. Quantity is always >= 1; a
// line that would drop to zero is removed from the cart instead.
type Line struct {
	Item models.MenuItem `json:"item"`
	Qty  int             `json:"qty"`
}

func (l Line) Subtotal() int64 {
	return l.Item.Price * int64(l.Qty)
}

// Cart is an ordered collection of lines, unique by menu item id. Safe
// for concurrent use: requests carrying the same session id can overlap.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddItem increments the existing line for the item or appends a fresh
// line with quantity 1. Returns the resulting quantity.
func (c *Cart) AddItem(item models.MenuItem) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Qty++
			return c.lines[i].Qty
		}
	}
	c.lines = append(c.lines, Line{Item: item, Qty: 1})
	return 1
}

// ChangeQuantity applies delta to the matching line. A resulting quantity
// <= 0 removes the line. Unknown menu ids are ignored.
func (c *Cart) ChangeQuantity(menuID string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Item.ID != menuID {
			continue
		}
		c.lines[i].Qty += delta
		if c.lines[i].Qty <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// Total recomputes the sum of line subtotals on every call.
func (c *Cart) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total int64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy; callers cannot mutate the cart through it.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}
