package contacts

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBoltStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "contacts.db")

	store, err := OpenBoltStore(path)
	if err != nil {
		t.Fatalf("OpenBoltStore failed: %v", err)
	}

	if err := store.Put("Jime", "0501234356"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put("Anna", "0501112233"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopen and verify the contacts survived
	store, err = OpenBoltStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	entries, err := store.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	expected := map[string]string{
		"Jime": "0501234356",
		"Anna": "0501112233",
	}
	if diff := cmp.Diff(expected, entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadBookWritesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.db")

	store, err := OpenBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}

	book, err := LoadBook(store)
	if err != nil {
		t.Fatalf("LoadBook failed: %v", err)
	}
	if book.Len() != 0 {
		t.Fatalf("expected empty book, got %d contacts", book.Len())
	}

	if err := book.Set("Jime", "0501234356"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	store.Close()

	// A fresh session sees the contact
	store, err = OpenBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	book, err = LoadBook(store)
	if err != nil {
		t.Fatalf("LoadBook failed: %v", err)
	}
	phone, ok := book.Get("Jime")
	if !ok || phone != "0501234356" {
		t.Errorf("Get(Jime) = %q, %v after reload", phone, ok)
	}
}
