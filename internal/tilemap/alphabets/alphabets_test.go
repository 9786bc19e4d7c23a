package alphabets_test

import (
	"testing"

	"github.com/vovakirdan/tilegrid/internal/registry"
	"github.com/vovakirdan/tilegrid/internal/tilemap/alphabets"
)

func TestBuiltinsRegistered(t *testing.T) {
	digits, err := registry.Get(alphabets.Digits)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", alphabets.Digits, err)
	}
	for _, c := range []byte("0123") {
		if !digits.Accepts(c) {
			t.Errorf("digits should accept %q", c)
		}
	}
	for _, c := range []byte("4X \t") {
		if digits.Accepts(c) {
			t.Errorf("digits should reject %q", c)
		}
	}

	anyTile, err := registry.Get(alphabets.Any)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", alphabets.Any, err)
	}
	if !anyTile.Accepts('X') {
		t.Error("any should accept X")
	}
}
