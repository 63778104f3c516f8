package tui

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/cribtrain/internal/render"
	"github.com/jask/cribtrain/internal/session"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dealer := session.NewDealer(rand.New(rand.NewSource(3)))
	return New(context.Background(), dealer, &session.Stats{}, nil, render.Plain{})
}

func enter(a *App, text string) (tea.Model, tea.Cmd) {
	a.input.SetValue(text)
	return a.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestNewDealsARound(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	require.NoError(t, a.dealErr)
	require.Len(t, a.deal.Hand, 4)

	view := a.View()
	require.Contains(t, view, " | ")
	require.Contains(t, view, "'?' for help")
}

func TestCorrectGuessAdvancesRound(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	before := a.deal

	_, _ = enter(a, strconv.Itoa(a.answer.Total()))
	require.Equal(t, "Correct!", a.status)
	require.Empty(t, a.feedback)
	require.Equal(t, 1, a.stats.Rounds)
	require.Equal(t, 1, a.stats.Correct)
	require.NotEqual(t, before, a.deal, "a new round should be dealt")
}

func TestWrongGuessShowsBreakdown(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	total := a.answer.Total()

	_, _ = enter(a, strconv.Itoa(total+1))
	require.Equal(t, 1, a.stats.Rounds)
	require.Equal(t, 0, a.stats.Correct)
	require.Contains(t, a.feedback, "Actual score: "+strconv.Itoa(total))
	require.Contains(t, a.View(), "Fifteens")
}

func TestHelpAndStatsViews(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)

	_, _ = enter(a, "?")
	require.Equal(t, viewHelp, a.state)
	require.Contains(t, a.View(), "Deal a random cribbage hand")

	// any key returns to the prompt
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.Equal(t, viewPrompt, a.state)

	_, _ = enter(a, "stats")
	require.Equal(t, viewStats, a.state)
	require.Contains(t, a.View(), "Rounds")
}

func TestUnknownCommandSuggestion(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)

	_, _ = enter(a, "hlep")
	require.Contains(t, a.status, `Did you mean "help"`)
	require.Equal(t, 0, a.stats.Rounds, "near-miss commands never count as guesses")

	_, _ = enter(a, "blorp")
	require.Equal(t, "Invalid input. Score this hand again.", a.status)
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = enter(a, "quit")
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Equal(t, 0, a.stats.Rounds, "quitting never records the open round")
}

func TestGuessesAreDeterministicPerDeal(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	first, err := a.deal.Score()
	require.NoError(t, err)
	again, err := a.deal.Score()
	require.NoError(t, err)
	require.Equal(t, first, again)
	require.Equal(t, a.answer, first)
}

func TestPlainViewHasNoAnsiColor(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	line := render.Plain{}.Cards(a.deal.Hand)
	require.False(t, strings.Contains(line, "\x1b["))
}
