package storage

import "testing"

func TestMemStoreRoundTrip(t *testing.T) {
	store := NewMemStore()

	if _, ok, _ := store.Get("dev1", KeyRegion); ok {
		t.Error("empty store should miss")
	}

	if err := store.Set("dev1", KeyRegion, "us"); err != nil {
		t.Fatal(err)
	}
	value, ok, err := store.Get("dev1", KeyRegion)
	if err != nil || !ok || value != "us" {
		t.Errorf("Get = (%q, %v, %v), want (us, true, nil)", value, ok, err)
	}

	// Devices are isolated.
	if _, ok, _ := store.Get("dev2", KeyRegion); ok {
		t.Error("value leaked across devices")
	}

	if err := store.Remove("dev1", KeyRegion); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get("dev1", KeyRegion); ok {
		t.Error("value survived removal")
	}

	// Removing a missing key is not an error.
	if err := store.Remove("dev1", "never-set"); err != nil {
		t.Errorf("remove of missing key errored: %v", err)
	}
}
