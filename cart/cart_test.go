package cart

import (
	"sync"
	"testing"

	"cafe-order/models"
)

var (
	kopiSusu  = models.MenuItem{ID: "1", Name: "Kopi Susu", Price: 15000, Category: models.CategoryMinuman, Available: true}
	rotiBakar = models.MenuItem{ID: "2", Name: "Roti Bakar", Price: 12000, Category: models.CategoryMakanan, Available: true}
)

func TestAddItemMergesLines(t *testing.T) {
	c := New()
	if got := c.AddItem(kopiSusu); got != 1 {
		t.Errorf("first AddItem qty = %d, want 1", got)
	}
	if got := c.AddItem(kopiSusu); got != 2 {
		t.Errorf("second AddItem qty = %d, want 2", got)
	}
	if c.Len() != 1 {
		t.Errorf("cart has %d lines, want 1", c.Len())
	}
	if got := c.Total(); got != 30000 {
		t.Errorf("Total() = %d, want 30000", got)
	}
}

func TestChangeQuantity(t *testing.T) {
	tests := []struct {
		name      string
		ops       func(c *Cart)
		wantLines int
		wantTotal int64
	}{
		{
			name: "increment",
			ops: func(c *Cart) {
				c.AddItem(kopiSusu)
				c.ChangeQuantity("1", 1)
			},
			wantLines: 1,
			wantTotal: 30000,
		},
		{
			name: "decrement to zero removes line",
			ops: func(c *Cart) {
				c.AddItem(kopiSusu)
				c.AddItem(rotiBakar)
				c.ChangeQuantity("1", -1)
			},
			wantLines: 1,
			wantTotal: 12000,
		},
		{
			name: "decrement below zero removes line",
			ops: func(c *Cart) {
				c.AddItem(kopiSusu)
				c.ChangeQuantity("1", -5)
			},
			wantLines: 0,
			wantTotal: 0,
		},
		{
			name: "unknown id is a no-op",
			ops: func(c *Cart) {
				c.AddItem(kopiSusu)
				c.ChangeQuantity("999", -1)
			},
			wantLines: 1,
			wantTotal: 15000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.ops(c)
			if c.Len() != tt.wantLines {
				t.Errorf("lines = %d, want %d", c.Len(), tt.wantLines)
			}
			if got := c.Total(); got != tt.wantTotal {
				t.Errorf("Total() = %d, want %d", got, tt.wantTotal)
			}
			for _, l := range c.Lines() {
				if l.Qty < 1 {
					t.Errorf("line %s kept with qty %d", l.Item.ID, l.Qty)
				}
			}
		})
	}
}

func TestTotalIndependentOfInsertionOrder(t *testing.T) {
	a := New()
	a.AddItem(kopiSusu)
	a.AddItem(kopiSusu)
	a.AddItem(rotiBakar)

	b := New()
	b.AddItem(rotiBakar)
	b.AddItem(kopiSusu)
	b.ChangeQuantity(kopiSusu.ID, 1)

	if a.Total() != b.Total() {
		t.Errorf("totals differ by insertion order: %d vs %d", a.Total(), b.Total())
	}
	if a.Total() != 42000 {
		t.Errorf("Total() = %d, want 42000", a.Total())
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(kopiSusu)
	c.Clear()
	if !c.IsEmpty() {
		t.Error("cart not empty after Clear")
	}
	if c.Total() != 0 {
		t.Errorf("Total() = %d after Clear, want 0", c.Total())
	}
}

// Overlapping requests on one session hit the same cart; mutations and
// reads from different goroutines must not corrupt the one-line-per-item
// invariant. Run with -race to catch unsynchronized access.
func TestConcurrentMutation(t *testing.T) {
	c := New()
	const workers = 50

	var wg sync.WaitGroup
	wg.Add(3 * workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			c.AddItem(kopiSusu)
		}()
		go func() {
			defer wg.Done()
			c.ChangeQuantity(rotiBakar.ID, -1)
		}()
		go func() {
			defer wg.Done()
			_ = c.Total()
			_ = c.Lines()
		}()
	}
	wg.Wait()

	if c.Len() != 1 {
		t.Fatalf("cart has %d lines, want 1", c.Len())
	}
	lines := c.Lines()
	if lines[0].Qty != workers {
		t.Errorf("qty = %d, want %d", lines[0].Qty, workers)
	}
	if got := c.Total(); got != int64(workers)*kopiSusu.Price {
		t.Errorf("Total() = %d, want %d", got, int64(workers)*kopiSusu.Price)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	c := New()
	c.AddItem(kopiSusu)
	lines := c.Lines()
	lines[0].Qty = 99
	if got := c.Total(); got != 15000 {
		t.Errorf("mutating Lines() copy changed the cart: total = %d", got)
	}
}
