// Package cart holds the pure merge semantics of the category-keyed cart:
// at most one entry per service category, replacement in place.
package cart

import "github.com/luxerent/pricing-service/internal/models"

// Merge returns a new slice with entry folded in. An existing entry of the
// same category is replaced at its position; otherwise the entry is
// appended. The input slice is never mutated.
func Merge(entries []models.CartEntry, entry models.CartEntry) []models.CartEntry {
	out := make([]models.CartEntry, len(entries))
	copy(out, entries)
	for i, e := range out {
		if e.EntryCategory() == entry.EntryCategory() {
			out[i] = entry
			return out
		}
	}
	return append(out, entry)
}

// RemoveCategory returns a new slice without the (at most one) entry of the
// category. Total: removing an absent category is a no-op.
func RemoveCategory(entries []models.CartEntry, category models.Category) []models.CartEntry {
	out := make([]models.CartEntry, 0, len(entries))
	for _, e := range entries {
		if e.EntryCategory() == category {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Total sums the net amounts of the entries. Advisory only: checkout
// recomputes the authoritative figure server-side.
func Total(entries []models.CartEntry) models.Money {
	var total models.Money
	for _, e := range entries {
		total += e.Line.NetAmount
	}
	return total
}

// Categories lists the categories currently held, in cart order.
func Categories(entries []models.CartEntry) []models.Category {
	out := make([]models.Category, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.EntryCategory())
	}
	return out
}
