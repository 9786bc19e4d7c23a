package registry

import (
	"testing"

	"github.com/vovakirdan/tilegrid/internal/tilemap/core"
)

func TestRegisterAndGet(t *testing.T) {
	Register("test-hash", "hash and dot", core.Codes("#."))

	if !Exists("test-hash") {
		t.Fatal("expected test-hash to exist")
	}

	a, err := Get("test-hash")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !a.Accepts('#') || a.Accepts('0') {
		t.Error("registered alphabet does not behave as expected")
	}

	found := false
	for _, info := range List() {
		if info.Name == "test-hash" && info.Description == "hash and dot" {
			found = true
		}
	}
	if !found {
		t.Error("test-hash missing from List")
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("does-not-exist"); err == nil {
		t.Error("expected error for unknown alphabet")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "first", core.AnyTile)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test-dup", "second", core.AnyTile)
}

func TestListSorted(t *testing.T) {
	Register("test-b", "", core.AnyTile)
	Register("test-a", "", core.AnyTile)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Errorf("list not sorted: %s >= %s", list[i-1].Name, list[i].Name)
		}
	}
}
