package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"digip/pkg/pet"
)

const barWidth = 20

// View implements tea.Model.
func (m *Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary)
	mutedStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)
	messageStyle := lipgloss.NewStyle().Foreground(m.theme.Secondary)
	badgeStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Warning)

	var b strings.Builder

	state := "Awake"
	if m.p.Sleeping {
		state = "Sleeping"
	}
	if !m.p.Alive {
		state = "Deceased"
	}

	header := fmt.Sprintf("%s the %s  (%s, Lv %d, %s)",
		m.p.Name, pet.DisplayName(m.p.Kind), m.p.Stage(), m.p.Level, state)
	b.WriteString(titleStyle.Render(header))
	if m.incoming > 0 {
		b.WriteString("  " + badgeStyle.Render(fmt.Sprintf("[%d offer(s) waiting]", m.incoming)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.p.Sprite())
	b.WriteString("\n\n")

	if !m.p.Alive {
		deadStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Error)
		b.WriteString(deadStyle.Render(fmt.Sprintf("%s has passed away.", m.p.Name)))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("h: history  q: quit"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.statLine("Hunger   ", m.p.Hunger, m.theme.hungerColor(m.p.Hunger)))
	b.WriteString(m.statLine("Happiness", m.p.Happiness, m.theme.statColor(m.p.Happiness)))
	b.WriteString(m.statLine("Energy   ", m.p.Energy, m.theme.statColor(m.p.Energy)))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("XP %d/%d   STR %.1f  INT %.1f  CHA %.1f  SPD %.1f\n",
		m.p.XP, m.p.XPToNext,
		m.p.Strength, m.p.Intelligence, m.p.Charisma, m.p.Speed))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Food %d  Treats %d  Toys %d   Age %d ticks",
		m.p.Inventory.Food, m.p.Inventory.Treats, m.p.Inventory.Toys, m.p.AgeTicks)))
	b.WriteString("\n\n")

	if m.message != "" {
		b.WriteString(messageStyle.Render(m.message))
		b.WriteString("\n\n")
	}

	if m.renaming {
		b.WriteString("Rename to: " + m.input.View() + "\n")
		b.WriteString(mutedStyle.Render("enter: confirm  esc: cancel"))
		b.WriteString("\n")
		return b.String()
	}

	if m.showHistory {
		b.WriteString(titleStyle.Render("History"))
		b.WriteString("\n")
		b.WriteString(m.historyView(mutedStyle))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render("f: feed  p: play  s: sleep  r: rename  h: history  q: quit"))
	b.WriteString("\n")
	return b.String()
}

// statLine renders a labeled 0-100 bar.
func (m *Model) statLine(label string, value float64, color lipgloss.Color) string {
	filled := int(value / 100 * barWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled)
	barStyle := lipgloss.NewStyle().Foreground(color)
	return fmt.Sprintf("%s [%s] %5.1f\n", label, barStyle.Render(bar), value)
}

// historyView renders the most recent log entries, newest last.
func (m *Model) historyView(style lipgloss.Style) string {
	const show = 10
	entries := m.p.History
	if len(entries) > show {
		entries = entries[len(entries)-show:]
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(style.Render("  " + e))
		b.WriteString("\n")
	}
	return b.String()
}
