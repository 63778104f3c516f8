// Package session owns the round lifecycle around the scoring engine: dealing
// disjoint hand/starter pairs and tallying results across a session.
package session

import (
	"math/rand"

	"github.com/jask/cribtrain/internal/deck"
	"github.com/jask/cribtrain/internal/score"
)

// Deal is one round's cards: four in hand plus the shared starter, all drawn
// from a single deck so disjointness holds by construction.
type Deal struct {
	Hand    []deck.Card
	Starter deck.Card
}

// Dealer produces fresh deals from reshuffled decks.
type Dealer struct {
	rng *rand.Rand
}

// NewDealer wraps the given source; callers choose the seed.
func NewDealer(rng *rand.Rand) *Dealer {
	return &Dealer{rng: rng}
}

// Deal shuffles a fresh deck and draws five cards.
func (d *Dealer) Deal() (Deal, error) {
	dk := deck.New()
	dk.Shuffle(d.rng)
	cards, err := dk.Draw(score.HandSize + 1)
	if err != nil {
		return Deal{}, err
	}
	return Deal{Hand: cards[:score.HandSize], Starter: cards[score.HandSize]}, nil
}

// Score runs the engine over this deal.
func (d Deal) Score() (score.Breakdown, error) {
	return score.Score(d.Hand, d.Starter)
}
