package services

import "cafe-julio/models"

// CartLine is one (item, quantity) pair. Name and Price are snapshotted
// when the line is created so a later catalog price change never alters
// an in-progress cart.
type CartLine struct {
	ItemID   int64  `json:"itemId"`
	Name     string `json:"name"`
	Price    int64  `json:"unitPrice"` // centavos
	Qty      int    `json:"quantity"`
	Category string `json:"category,omitempty"`
}

func (l CartLine) Subtotal() int64 {
	return l.Price * int64(l.Qty)
}

// Cart holds an in-progress selection: an ordered list of lines with at
// most one line per item id. It is purely in-memory and not safe for
// concurrent use; each customer request carries its own cart.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// NewCartFromLines rebuilds a cart from client-submitted lines, merging
// duplicate item ids and dropping lines with quantity < 1.
func NewCartFromLines(lines []CartLine) *Cart {
	c := NewCart()
	for _, l := range lines {
		if l.Qty < 1 {
			continue
		}
		if existing := c.find(l.ItemID); existing != nil {
			existing.Qty += l.Qty
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

func (c *Cart) find(itemID int64) *CartLine {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			return &c.lines[i]
		}
	}
	return nil
}

// AddItem increments the line for the item, creating it with quantity 1
// and the item's current name/price if absent.
func (c *Cart) AddItem(item models.MenuItem) {
	if l := c.find(item.ID); l != nil {
		l.Qty++
		return
	}
	c.lines = append(c.lines, CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Qty:      1,
		Category: item.Category,
	})
}

// RemoveItem deletes the item's line. Absent line is a no-op.
func (c *Cart) RemoveItem(itemID int64) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line's quantity; q <= 0 removes the line.
// A missing line is a no-op: quantity changes come from controls on an
// existing line, so there is nothing to snapshot a price from.
func (c *Cart) SetQuantity(itemID int64, q int) {
	if q <= 0 {
		c.RemoveItem(itemID)
		return
	}
	if l := c.find(itemID); l != nil {
		l.Qty = q
	}
}

// Total recomputes the sum over current lines on every call.
func (c *Cart) Total() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.Subtotal()
	}
	return sum
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy; mutating it does not touch the cart.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}
