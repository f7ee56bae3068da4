package asset

import (
	"image/color"
	"testing"
)

func testSupplier(items map[string]*Drawable) Supplier {
	return SupplierFunc(func(name string) (*Drawable, bool) {
		d, ok := items[name]
		return d, ok
	})
}

func TestRegistryLoad(t *testing.T) {
	items := map[string]*Drawable{
		Portal:  {Name: Portal, Width: 48, Height: 48},
		Surface: {Name: Surface, Width: 36, Height: 48},
		Cloud:   {Name: Cloud, Width: 0, Height: 30}, // unusable
	}
	reg := NewRegistry()

	missing := reg.Load(testSupplier(items), Portal, Surface, Cloud, Bush)
	if missing != 2 {
		t.Errorf("Expected 2 missing sprites, got %d", missing)
	}
	if reg.Len() != 2 {
		t.Errorf("Expected 2 registered sprites, got %d", reg.Len())
	}

	if _, ok := reg.Get(Portal); !ok {
		t.Error("Expected portal sprite to be registered")
	}
	if _, ok := reg.Get(Bush); ok {
		t.Error("Expected bush sprite to be missing")
	}
}

func TestRegistryLoadNilSupplier(t *testing.T) {
	reg := NewRegistry()
	if missing := reg.Load(nil, Portal, Bush); missing != 2 {
		t.Errorf("Expected every sprite missing with nil supplier, got %d", missing)
	}
}

func TestRegistrySizeFallback(t *testing.T) {
	reg := NewRegistry()
	reg.Put(Portal, &Drawable{Name: Portal, Width: 64, Height: 32})

	w, h := reg.Size(Portal, 1, 1)
	if w != 64 || h != 32 {
		t.Errorf("Expected registered size 64x32, got %vx%v", w, h)
	}

	w, h = reg.Size(Surface, 36, 48)
	if w != 36 || h != 48 {
		t.Errorf("Expected fallback size 36x48, got %vx%v", w, h)
	}
}

func TestDrawableSampleAt(t *testing.T) {
	art := NewBitmap(2, 2)
	red := color.RGBA{R: 255, A: 255}
	art.Set(1, 0, red)
	d := &Drawable{Name: "test", Width: 20, Height: 20, Art: art}

	if c, ok := d.SampleAt(0.75, 0.25); !ok || c != red {
		t.Errorf("Expected red opaque pixel, got %v ok=%v", c, ok)
	}
	if _, ok := d.SampleAt(0.25, 0.25); ok {
		t.Error("Expected transparent pixel")
	}
	if _, ok := d.SampleAt(1.0, 0.5); ok {
		t.Error("Expected out-of-range sample to be transparent")
	}
}

func TestSceneNames(t *testing.T) {
	names := SceneNames(4)
	if len(names) != 12 {
		t.Fatalf("Expected 12 scene sprites, got %d", len(names))
	}
	if names[len(names)-1] != "coin-3" {
		t.Errorf("Expected last name coin-3, got %s", names[len(names)-1])
	}
}
