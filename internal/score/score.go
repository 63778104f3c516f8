// Package score computes the show score of a cribbage hand.
//
// Scoring is deliberately redundant: the same card can contribute to a pair,
// a run and a fifteen at once. The five categories are evaluated independently
// and summed.
package score

import (
	"fmt"
	"sort"

	"github.com/jask/cribtrain/internal/deck"
)

// HandSize is the number of cards held; the starter makes five in total.
const HandSize = 4

// Breakdown is the score of one hand split by category.
type Breakdown struct {
	Pairs    int
	Fifteens int
	Runs     int
	Flushes  int
	Nobs     int
}

// Total is the sum of all five categories.
func (b Breakdown) Total() int {
	return b.Pairs + b.Fifteens + b.Runs + b.Flushes + b.Nobs
}

// InvalidInputError reports a malformed scoring request: wrong cardinality or
// a repeated card. It is a caller bug, never retried.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid scoring input: " + e.Reason
}

// Score computes the breakdown for a 4-card hand plus starter. The hand and
// starter together must be five distinct cards. Pure and deterministic: the
// same five cards always produce the same breakdown.
func Score(hand []deck.Card, starter deck.Card) (Breakdown, error) {
	if len(hand) != HandSize {
		return Breakdown{}, &InvalidInputError{
			Reason: fmt.Sprintf("hand has %d cards, want %d", len(hand), HandSize),
		}
	}
	all := make([]deck.Card, 0, HandSize+1)
	all = append(all, hand...)
	all = append(all, starter)
	seen := make(map[deck.Card]struct{}, len(all))
	for _, c := range all {
		if _, dup := seen[c]; dup {
			return Breakdown{}, &InvalidInputError{
				Reason: fmt.Sprintf("duplicate card %s", c),
			}
		}
		seen[c] = struct{}{}
	}

	return Breakdown{
		Pairs:    scorePairs(all),
		Fifteens: scoreFifteens(all),
		Runs:     scoreRuns(all),
		Flushes:  scoreFlush(hand, starter),
		Nobs:     scoreNobs(hand, starter),
	}, nil
}

// scorePairs awards 2 for every equal-rank pair. Three and four of a kind fall
// out of the pairwise count (3 and 6 pairs respectively).
func scorePairs(cards []deck.Card) int {
	points := 0
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			if cards[i].Rank == cards[j].Rank {
				points += 2
			}
		}
	}
	return points
}

// scoreFifteens awards 2 for every subset of pip values summing to exactly 15.
// The starter is an ordinary member of the set.
func scoreFifteens(cards []deck.Card) int {
	points := 0
	for mask := 1; mask < 1<<len(cards); mask++ {
		sum := 0
		for i, c := range cards {
			if mask&(1<<i) != 0 {
				sum += c.Rank.PipValue()
			}
		}
		if sum == 15 {
			points += 2
		}
	}
	return points
}

// scoreRuns finds the longest consecutive sequence of distinct ranks. A run of
// length L >= 3 pays L per instantiation, where duplicate ranks multiply the
// instantiation count. Contained shorter runs never pay.
func scoreRuns(cards []deck.Card) int {
	count := map[deck.Rank]int{}
	for _, c := range cards {
		count[c.Rank]++
	}
	ranks := make([]deck.Rank, 0, len(count))
	for r := range count {
		ranks = append(ranks, r)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })

	bestLen, bestMult := 0, 0
	for i := 0; i < len(ranks); {
		j := i + 1
		mult := count[ranks[i]]
		for j < len(ranks) && ranks[j] == ranks[j-1]+1 {
			mult *= count[ranks[j]]
			j++
		}
		if length := j - i; length > bestLen {
			bestLen, bestMult = length, mult
		}
		i = j
	}
	if bestLen < 3 {
		return 0
	}
	return bestLen * bestMult
}

// scoreFlush pays 4 for a one-suit hand, 5 when the starter matches as well.
// The starter can never complete a flush on its own.
func scoreFlush(hand []deck.Card, starter deck.Card) int {
	suit := hand[0].Suit
	for _, c := range hand[1:] {
		if c.Suit != suit {
			return 0
		}
	}
	if starter.Suit == suit {
		return 5
	}
	return 4
}

// scoreNobs pays 1 for a jack in the hand matching the starter's suit. A jack
// as the starter never counts.
func scoreNobs(hand []deck.Card, starter deck.Card) int {
	for _, c := range hand {
		if c.Rank == deck.Jack && c.Suit == starter.Suit {
			return 1
		}
	}
	return 0
}
