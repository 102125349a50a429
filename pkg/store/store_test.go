package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"digip/pkg/pet"
	"digip/pkg/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	return s
}

func TestNewCreatesLayout(t *testing.T) {
	t.Parallel()

	base := filepath.Join(t.TempDir(), "state")
	s, err := store.New(base)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}

	if s.Base() != base {
		t.Errorf("Base() = %q, want %q", s.Base(), base)
	}
	if _, err := os.Stat(s.TradeDir()); err != nil {
		t.Errorf("trade dir missing: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(s.PetPath())); err != nil {
		t.Errorf("pets dir missing: %v", err)
	}
}

func TestPetSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	p := pet.New("Bitsy", pet.KindByte)
	p.Feed()
	p.Tick()

	if err := s.SavePet(p); err != nil {
		t.Fatalf("SavePet: %v", err)
	}
	got, err := s.LoadPet()
	if err != nil {
		t.Fatalf("LoadPet: %v", err)
	}

	if !reflect.DeepEqual(got.Record(), p.Record()) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got.Record(), p.Record())
	}
}

func TestLoadPetNotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	_, err := s.LoadPet()
	var nf *store.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("LoadPet on empty store = %v, want NotFoundError", err)
	}
	if !store.IsNotFound(err) {
		t.Error("IsNotFound = false for NotFoundError")
	}
}

func TestLoadPetCorrupt(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := os.WriteFile(s.PetPath(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := s.LoadPet()
	var pe *store.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("LoadPet on corrupt save = %v, want ParseError", err)
	}
	if store.IsNotFound(err) {
		t.Error("corrupt save misreported as not found")
	}
}

func TestSaveDocLoadDoc(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	path := filepath.Join(s.Base(), "doc.json")
	in := map[string]int{"a": 1, "b": 2}

	if err := s.SaveDoc(path, in); err != nil {
		t.Fatalf("SaveDoc: %v", err)
	}

	out := map[string]int{}
	if err := s.LoadDoc(path, &out); err != nil {
		t.Fatalf("LoadDoc: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("LoadDoc = %v, want %v", out, in)
	}
}

func TestSaveDocLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	path := filepath.Join(s.Base(), "doc.json")
	if err := s.SaveDoc(path, map[string]int{"a": 1}); err != nil {
		t.Fatalf("SaveDoc: %v", err)
	}

	entries, err := os.ReadDir(s.Base())
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "doc.json" && e.Name() != "pets" && e.Name() != "trades" {
			t.Errorf("unexpected file after save: %s", e.Name())
		}
	}
}
