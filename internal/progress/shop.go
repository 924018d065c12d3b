package progress

import "fmt"

// Purchase buys a skin from the catalog. On success the price is deducted
// and the skin is owned; the caller is responsible for persisting.
// A failed purchase leaves the record untouched.
func Purchase(rec *Record, cat *Catalog, name string) (Skin, error) {
	s, ok := cat.Lookup(name)
	if !ok || s.Free() {
		return Skin{}, fmt.Errorf("progress: %q is not for sale: %w", name, ErrUnknownItem)
	}
	if rec.Owns(name) {
		return Skin{}, fmt.Errorf("progress: %q: %w", name, ErrAlreadyOwned)
	}
	if err := rec.SpendCoins(s.Price); err != nil {
		return Skin{}, err
	}
	rec.AddSkin(name)
	return s, nil
}
