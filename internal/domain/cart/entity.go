package cart

// Product is a storefront catalog entry.
type Product struct {
	ID        int64
	Name      string
	UnitPrice float64
	Image     string
}

// LineItem is one cart row. Quantity is always >= 1; a line whose last
// unit goes away is removed from the cart rather than kept at zero.
type LineItem struct {
	ProductID int64
	Name      string
	UnitPrice float64
	Quantity  int
}

// Cart keeps insertion order and is keyed by product ID: adding a product
// that is already present increments its quantity instead of duplicating
// the line.
type Cart struct {
	items []LineItem
}

func (c *Cart) AddItem(p Product) {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Quantity:  1,
	})
}

// RemoveItem deletes the matching line. An absent ID is a no-op, not an
// error.
func (c *Cart) RemoveItem(productID int64) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces a line's quantity and reports whether the mutation
// applied. Quantities below 1 are rejected without touching the cart:
// an explicit guard, not a delete.
func (c *Cart) SetQuantity(productID int64, quantity int) bool {
	if quantity < 1 {
		return false
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Subtotal is the sum of unit price times quantity over all lines.
// Deterministic and order-independent.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.UnitPrice * float64(it.Quantity)
	}
	return sum
}

func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Clear() {
	c.items = nil
}
