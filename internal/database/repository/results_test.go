package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jask/cribtrain/internal/database"
)

func openTestDB(t *testing.T) *ResultRepo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewResultRepo(db)
}

func TestResultRepoRoundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := openTestDB(t)

	base := database.Now()
	first := Result{
		ID:       uuid.NewString(),
		PlayedAt: base.Add(-time.Minute),
		Hand:     "5 hearts 7 spades 8 hearts 9 diamonds",
		Starter:  "J clubs",
		Guess:    7,
		Total:    7,
		Fifteens: 4,
		Runs:     3,
		Correct:  true,
	}
	second := Result{
		ID:       uuid.NewString(),
		PlayedAt: base,
		Hand:     "2 spades 6 spades T spades Q spades",
		Starter:  "4 hearts",
		Guess:    0,
		Total:    4,
		Flushes:  4,
	}
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, second.ID, recent[0].ID)
	require.Equal(t, first.ID, recent[1].ID)
	require.Equal(t, 4, recent[1].Fifteens)
	require.True(t, recent[1].Correct)
	require.False(t, recent[0].Correct)

	sum, err := repo.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, Summary{Rounds: 2, Correct: 1}, sum)
}

func TestSummaryOnEmptyDB(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestDB(t)

	sum, err := repo.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, Summary{}, sum)
}
