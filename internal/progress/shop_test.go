package progress

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
)

func testCatalog() *Catalog {
	return NewCatalog(config.DefaultDashConfig().Skins)
}

func TestPurchaseSpendsBalanceAndRejectsRepeat(t *testing.T) {
	rec := New()
	rec.Coins = 5
	cat := testCatalog()

	skin, err := Purchase(rec, cat, "Бобер")
	if err != nil {
		t.Fatalf("Purchase() failed: %v", err)
	}
	if skin.Price != 5 {
		t.Errorf("price = %d, expected 5", skin.Price)
	}
	if rec.Coins != 0 {
		t.Errorf("coins = %d, expected 0", rec.Coins)
	}
	if !rec.Owns("Бобер") {
		t.Error("skin should be owned after purchase")
	}

	rec.Coins = 20
	if _, err := Purchase(rec, cat, "Бобер"); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("repeat purchase error = %v, expected ErrAlreadyOwned", err)
	}
	if rec.Coins != 20 {
		t.Errorf("rejected purchase changed coins to %d", rec.Coins)
	}
	if len(rec.Skins) != 1 {
		t.Errorf("skins = %v, expected a single entry", rec.Skins)
	}
}

func TestPurchaseErrors(t *testing.T) {
	tests := []struct {
		name    string
		coins   int
		item    string
		wantErr error
	}{
		{"insufficient coins", 9, "Огузок", ErrInsufficientCoins},
		{"unknown item", 100, "Dragon", ErrUnknownItem},
		{"free skin not for sale", 100, "Skin 1", ErrUnknownItem},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := New()
			rec.Coins = tc.coins

			if _, err := Purchase(rec, testCatalog(), tc.item); !errors.Is(err, tc.wantErr) {
				t.Errorf("Purchase() error = %v, expected %v", err, tc.wantErr)
			}
			if rec.Coins != tc.coins || len(rec.Skins) != 0 {
				t.Errorf("failed purchase mutated record: %+v", rec)
			}
		})
	}
}

func TestCatalogSelection(t *testing.T) {
	cat := testCatalog()
	rec := New()

	if got := cat.DefaultIndex(rec); got != 0 {
		t.Errorf("DefaultIndex() with no skins = %d, expected 0", got)
	}

	rec.AddSkin("Шлепа")
	if got := cat.Skins()[cat.DefaultIndex(rec)].Name; got != "Шлепа" {
		t.Errorf("default selection = %q, expected last bought skin", got)
	}

	rec.AddSkin("retired skin")
	if got := cat.DefaultIndex(rec); got != 0 {
		t.Errorf("DefaultIndex() with unknown last skin = %d, expected 0", got)
	}

	if err := cat.CheckSelectable(rec, "Skin 3"); err != nil {
		t.Errorf("free skin should be selectable: %v", err)
	}
	if err := cat.CheckSelectable(rec, "Шлепа"); err != nil {
		t.Errorf("owned skin should be selectable: %v", err)
	}
	if err := cat.CheckSelectable(rec, "Огузок"); !errors.Is(err, ErrSkinLocked) {
		t.Errorf("unowned priced skin error = %v, expected ErrSkinLocked", err)
	}
	if err := cat.CheckSelectable(rec, "nobody"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("unknown skin error = %v, expected ErrUnknownItem", err)
	}
}

func TestCatalogPlaceholders(t *testing.T) {
	cat := NewCatalog([]config.SkinConfig{
		{Name: "ok", Glyph: "■", Color: "green"},
		{Name: "no glyph", Color: "green"},
		{Name: "wide glyph", Glyph: "ab", Color: "green"},
		{Name: "bad color", Glyph: "x", Color: "ultraviolet"},
	})

	if s, _ := cat.Lookup("ok"); s.Placeholder || s.Glyph != '■' {
		t.Errorf("valid skin resolved as %+v", s)
	}
	for _, name := range []string{"no glyph", "wide glyph", "bad color"} {
		s, ok := cat.Lookup(name)
		if !ok || !s.Placeholder || s.Glyph != PlaceholderGlyph || s.Color != core.ColorGray {
			t.Errorf("%s should degrade to the placeholder, got %+v", name, s)
		}
	}

	missing := cat.Resolve("ghost")
	if !missing.Placeholder || missing.Name != "ghost" {
		t.Errorf("Resolve(ghost) = %+v, expected named placeholder", missing)
	}
	if len(cat.ForSale()) != 0 {
		t.Error("catalog without prices should have nothing for sale")
	}
}
