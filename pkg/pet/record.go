package pet

import (
	"encoding/json"
	"fmt"
)

// Record is the persisted form of a companion and the snapshot embedded in
// trade offers and marketplace listings. Field names match the on-disk
// document format.
type Record struct {
	Name         string    `json:"name"`
	Kind         Kind      `json:"pet_type"`
	Level        int       `json:"level"`
	XP           int       `json:"xp"`
	XPToNext     int       `json:"xp_to_next"`
	Hunger       float64   `json:"hunger"`
	Happiness    float64   `json:"happiness"`
	Energy       float64   `json:"energy"`
	Strength     float64   `json:"strength"`
	Intelligence float64   `json:"intelligence"`
	Charisma     float64   `json:"charisma"`
	Speed        float64   `json:"speed"`
	Inventory    Inventory `json:"inventory"`
	History      []string  `json:"history"`
	AgeTicks     int       `json:"age_hours"`
	Sleeping     bool      `json:"is_sleeping"`
	Alive        bool      `json:"alive"`
}

// Record captures the companion's full state for persistence or a trade
// snapshot.
func (p *Pet) Record() Record {
	return Record{
		Name:         p.Name,
		Kind:         p.Kind,
		Level:        p.Level,
		XP:           p.XP,
		XPToNext:     p.XPToNext,
		Hunger:       p.Hunger,
		Happiness:    p.Happiness,
		Energy:       p.Energy,
		Strength:     p.Strength,
		Intelligence: p.Intelligence,
		Charisma:     p.Charisma,
		Speed:        p.Speed,
		Inventory:    p.Inventory,
		History:      p.History,
		AgeTicks:     p.AgeTicks,
		Sleeping:     p.Sleeping,
		Alive:        p.Alive,
	}
}

// FromRecord reconstructs a companion from a record.
func FromRecord(rec Record, opts ...Option) *Pet {
	p := &Pet{
		Name:         rec.Name,
		Kind:         rec.Kind,
		Level:        rec.Level,
		XP:           rec.XP,
		XPToNext:     rec.XPToNext,
		Hunger:       rec.Hunger,
		Happiness:    rec.Happiness,
		Energy:       rec.Energy,
		Strength:     rec.Strength,
		Intelligence: rec.Intelligence,
		Charisma:     rec.Charisma,
		Speed:        rec.Speed,
		Inventory:    rec.Inventory,
		History:      rec.History,
		AgeTicks:     rec.AgeTicks,
		Sleeping:     rec.Sleeping,
		Alive:        rec.Alive,
		pick:         defaultPicker,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Decode reconstructs a companion from a persisted JSON document. Keys the
// document omits keep their constructor defaults; keys the record does not
// define are dropped.
func Decode(data []byte, opts ...Option) (*Pet, error) {
	var probe struct {
		Name string `json:"name"`
		Kind Kind   `json:"pet_type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode companion: %w", err)
	}

	// Start from a fresh companion so absent keys fall back to the
	// constructor defaults, then overlay the document on top.
	rec := New(probe.Name, probe.Kind).Record()
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode companion: %w", err)
	}
	return FromRecord(rec, opts...), nil
}

// Encode serializes the companion to its persisted JSON document form.
func (p *Pet) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(p.Record(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode companion: %w", err)
	}
	return data, nil
}
