// Package catalog serves the fixed demo storefront catalog. Product data
// is not part of the voucher system; three hardcoded entries exist so the
// shopping flow has something to put in a cart.
package catalog

import "offerbee-storefront/internal/domain/cart"

var products = []cart.Product{
	{ID: 1, Name: "RK 64 Mechanical Keyboard", UnitPrice: 149.99, Image: "/keyboard.jpg"},
	{ID: 2, Name: "Razer Viper Ultimate", UnitPrice: 79.99, Image: "/mouse.jpg"},
	{ID: 3, Name: "Razer BlackShark V2 Pro", UnitPrice: 199.99, Image: "/headset.jpg"},
}

type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) FindByID(id int64) (cart.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return cart.Product{}, false
}

func (s *Store) List() []cart.Product {
	out := make([]cart.Product, len(products))
	copy(out, products)
	return out
}
