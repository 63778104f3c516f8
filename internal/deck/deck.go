// Package deck models a standard 52-card deck with dealing and shuffling.
package deck

import (
	"errors"
	"math/rand"
)

// Size is the number of cards in a full deck.
const Size = 52

// ErrExhausted is returned when a draw asks for more cards than remain.
var ErrExhausted = errors.New("deck exhausted")

// Deck deals cards without replacement. Not safe for concurrent use; each
// session owns exactly one deck at a time.
type Deck struct {
	cards []Card
}

// New returns a full ordered deck: clubs through spades, ace through king.
func New() *Deck {
	cards := make([]Card, 0, Size)
	for s := Clubs; s <= Spades; s++ {
		for r := Ace; r <= King; r++ {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return &Deck{cards: cards}
}

// Shuffle permutes the remaining cards in place.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top n cards.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, ErrExhausted
	}
	drawn := d.cards[:n]
	d.cards = d.cards[n:]
	return drawn, nil
}

// Remaining reports how many cards have not been dealt.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
