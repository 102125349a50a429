package main

import (
	"fmt"
	"strings"

	"digip/pkg/pet"
)

// barWidth is the character width of a stat bar.
const barWidth = 10

// statBar renders a 0-100 value as a fixed-width bar like [#####.....].
func statBar(value float64) string {
	filled := int(value) * barWidth / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

// statusView renders the companion's full status block for "digip status".
func statusView(p *pet.Pet) string {
	var b strings.Builder

	state := "awake"
	if p.Sleeping {
		state = "sleeping"
	}
	if !p.Alive {
		state = "deceased"
	}

	fmt.Fprintf(&b, "%s the %s (%s, level %d, %s)\n",
		p.Name, pet.DisplayName(p.Kind), p.Stage(), p.Level, state)
	fmt.Fprintf(&b, "\n%s\n\n", p.Sprite())
	fmt.Fprintf(&b, "  Hunger    %s %3.0f\n", statBar(p.Hunger), p.Hunger)
	fmt.Fprintf(&b, "  Happiness %s %3.0f\n", statBar(p.Happiness), p.Happiness)
	fmt.Fprintf(&b, "  Energy    %s %3.0f\n", statBar(p.Energy), p.Energy)
	fmt.Fprintf(&b, "\n  XP %d/%d   STR %.1f  INT %.1f  CHA %.1f  SPD %.1f\n",
		p.XP, p.XPToNext, p.Strength, p.Intelligence, p.Charisma, p.Speed)
	fmt.Fprintf(&b, "  Food %d  Treats %d  Toys %d   Age %d ticks\n",
		p.Inventory.Food, p.Inventory.Treats, p.Inventory.Toys, p.AgeTicks)

	return b.String()
}
