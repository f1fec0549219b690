package models

// SelectionSet is a read-only snapshot of which service categories the
// customer already holds, split by where they were seen: the active cart or
// a prior confirmed/completed booking. The pricing engine never mutates it.
type SelectionSet struct {
	cart     map[Category]struct{}
	bookings map[Category]struct{}
}

func NewSelectionSet(cart, bookings []Category) SelectionSet {
	s := SelectionSet{
		cart:     make(map[Category]struct{}, len(cart)),
		bookings: make(map[Category]struct{}, len(bookings)),
	}
	for _, c := range cart {
		s.cart[c] = struct{}{}
	}
	for _, c := range bookings {
		s.bookings[c] = struct{}{}
	}
	return s
}

// InCart reports whether the category sits in the active cart.
func (s SelectionSet) InCart(c Category) bool {
	_, ok := s.cart[c]
	return ok
}

// Contains reports whether the category is held anywhere in the snapshot.
func (s SelectionSet) Contains(c Category) bool {
	if _, ok := s.cart[c]; ok {
		return true
	}
	_, ok := s.bookings[c]
	return ok
}

// HasVehicle is the bundle-discount gate.
func (s SelectionSet) HasVehicle() bool {
	return s.Contains(CategoryVehicle)
}
