package pet

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind selects a companion's base traits. Immutable after creation.
type Kind string

// The four companion kinds.
const (
	KindCrunch Kind = "crunch"
	KindByte   Kind = "byte"
	KindPixel  Kind = "pixel"
	KindGlitch Kind = "glitch"
)

// KindTraits holds the catalog entry for one kind: its display name, the
// sprite family used by the care screen, and the four base trait values.
type KindTraits struct {
	Display      string  `yaml:"display"`
	Sprite       string  `yaml:"sprite"`
	Strength     float64 `yaml:"strength"`
	Intelligence float64 `yaml:"intelligence"`
	Charisma     float64 `yaml:"charisma"`
	Speed        float64 `yaml:"speed"`
}

// Catalog maps kinds to their base traits.
type Catalog map[Kind]KindTraits

//go:embed kinds.yaml
var kindsYAML []byte

// catalog is the active kind catalog, the embedded one unless overridden.
var catalog = mustParseCatalog(kindsYAML)

func mustParseCatalog(data []byte) Catalog {
	c := Catalog{}
	if err := yaml.Unmarshal(data, &c); err != nil {
		panic(fmt.Sprintf("pet: embedded kind catalog: %v", err))
	}
	return c
}

// LoadCatalog replaces the active kind catalog from a YAML file. Used when
// the state dir carries a kinds.yaml override; the embedded catalog stays in
// effect on any error.
func LoadCatalog(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read kind catalog: %w", err)
	}
	c := Catalog{}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("parse kind catalog %s: %w", path, err)
	}
	if len(c) == 0 {
		return fmt.Errorf("kind catalog %s defines no kinds", path)
	}
	catalog = c
	return nil
}

// Known reports whether the kind exists in the active catalog.
func Known(k Kind) bool {
	_, ok := catalog[k]
	return ok
}

// Kinds returns the kinds defined by the active catalog in a stable order:
// the four built-ins first, then any catalog extras.
func Kinds() []Kind {
	order := []Kind{KindCrunch, KindByte, KindPixel, KindGlitch}
	out := make([]Kind, 0, len(catalog))
	for _, k := range order {
		if Known(k) {
			out = append(out, k)
		}
	}
	for k := range catalog {
		switch k {
		case KindCrunch, KindByte, KindPixel, KindGlitch:
		default:
			out = append(out, k)
		}
	}
	return out
}

// Traits returns the base traits for a kind, falling back to crunch for an
// unknown kind.
func Traits(k Kind) KindTraits {
	if t, ok := catalog[k]; ok {
		return t
	}
	return catalog[KindCrunch]
}

// DisplayName returns the catalog display name for a kind, or the raw kind
// string when the catalog entry omits one.
func DisplayName(k Kind) string {
	t := Traits(k)
	if t.Display != "" {
		return t.Display
	}
	return string(k)
}

// SpriteBase returns the sprite family name for a kind.
func SpriteBase(k Kind) string {
	return Traits(k).Sprite
}
