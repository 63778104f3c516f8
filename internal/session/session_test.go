package session

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/cribtrain/internal/deck"
	"github.com/jask/cribtrain/internal/score"
)

func TestDealDrawsFiveDisjointCards(t *testing.T) {
	t.Parallel()

	dealer := NewDealer(rand.New(rand.NewSource(7)))
	for i := 0; i < 100; i++ {
		d, err := dealer.Deal()
		require.NoError(t, err)
		require.Len(t, d.Hand, 4)

		seen := map[deck.Card]struct{}{d.Starter: {}}
		for _, c := range d.Hand {
			_, dup := seen[c]
			require.False(t, dup, "deal %d repeated %s", i, c)
			seen[c] = struct{}{}
		}

		// every deal must be scoreable
		_, err = d.Score()
		require.NoError(t, err)
	}
}

func TestStatsRecord(t *testing.T) {
	t.Parallel()

	var s Stats
	require.Zero(t, s.Accuracy())

	right := s.Record(8, score.Breakdown{Pairs: 2, Fifteens: 2, Runs: 4})
	require.True(t, right)
	wrong := s.Record(0, score.Breakdown{Fifteens: 4})
	require.False(t, wrong)

	require.Equal(t, 2, s.Rounds)
	require.Equal(t, 1, s.Correct)
	require.InDelta(t, 0.5, s.Accuracy(), 0.0001)
	require.Equal(t, score.Breakdown{Pairs: 2, Fifteens: 6, Runs: 4}, s.Tallies)
}
