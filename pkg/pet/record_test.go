package pet_test

import (
	"reflect"
	"testing"

	"digip/pkg/pet"
)

func TestRecordRoundTrip(t *testing.T) {
	t.Parallel()

	p := pet.New("Bitsy", pet.KindByte, pet.WithPicker(firstPick))
	p.Inventory.Food = 7
	p.Feed()
	p.Play()
	p.ToggleSleep()
	p.Tick()
	p.Tick()

	data, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := pet.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !reflect.DeepEqual(got.Record(), p.Record()) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got.Record(), p.Record())
	}
}

func TestDecodeMissingKeysUseDefaults(t *testing.T) {
	t.Parallel()

	doc := []byte(`{"name": "Rex", "pet_type": "glitch", "level": 3}`)

	p, err := pet.Decode(doc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if p.Name != "Rex" || p.Kind != pet.KindGlitch || p.Level != 3 {
		t.Errorf("explicit fields = %q/%q/%d", p.Name, p.Kind, p.Level)
	}
	if p.Hunger != 50 || p.Happiness != 50 || p.Energy != 50 {
		t.Errorf("stats = %v/%v/%v, want constructor defaults", p.Hunger, p.Happiness, p.Energy)
	}
	if p.XPToNext != 100 {
		t.Errorf("xpToNext = %d, want default 100", p.XPToNext)
	}
	if !p.Alive {
		t.Error("missing alive key should default to true")
	}
	if p.Inventory.Food != 3 {
		t.Errorf("food = %d, want default 3", p.Inventory.Food)
	}
	// Glitch base traits come from the constructor, not the document.
	if p.Speed != 15 {
		t.Errorf("speed = %v, want glitch base 15", p.Speed)
	}
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	t.Parallel()

	doc := []byte(`{"name": "Rex", "pet_type": "pixel", "favorite_color": "teal", "hunger": 10}`)

	p, err := pet.Decode(doc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.Hunger != 10 {
		t.Errorf("hunger = %v, want 10", p.Hunger)
	}
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	if _, err := pet.Decode([]byte(`{"name": `)); err == nil {
		t.Fatal("Decode accepted malformed JSON")
	}
}

func TestDecodeDeadCompanionStaysReadable(t *testing.T) {
	t.Parallel()

	p := pet.New("Goner", pet.KindCrunch)
	p.Hunger = 100
	p.Tick()

	data, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := pet.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Alive {
		t.Error("dead companion resurrected by round trip")
	}
}
