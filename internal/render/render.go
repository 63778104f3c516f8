// Package render turns cards into display strings. Presentation only; the
// scoring engine never depends on it.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/cribtrain/internal/deck"
)

// Renderer maps cards to display strings.
type Renderer interface {
	Card(c deck.Card) string
	Cards(cards []deck.Card) string
}

var redSuit = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

// Color renders cards with red hearts and diamonds, for the prompt.
type Color struct{}

func (Color) Card(c deck.Card) string {
	if c.Suit.Red() {
		return redSuit.Render(c.String())
	}
	return c.String()
}

func (r Color) Cards(cards []deck.Card) string {
	return join(r, cards)
}

// Plain renders cards as "J spades", for history rows.
type Plain struct{}

func (Plain) Card(c deck.Card) string {
	return c.Rank.String() + " " + c.Suit.String()
}

func (r Plain) Cards(cards []deck.Card) string {
	return join(r, cards)
}

func join(r Renderer, cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.Card(c)
	}
	return strings.Join(parts, " ")
}
