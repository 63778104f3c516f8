// Package tui is the interactive session driver. It deals rounds, reads
// guesses, and reports engine verdicts; all scoring truth comes from
// internal/score.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jask/cribtrain/internal/database"
	"github.com/jask/cribtrain/internal/database/repository"
	"github.com/jask/cribtrain/internal/render"
	"github.com/jask/cribtrain/internal/score"
	"github.com/jask/cribtrain/internal/session"
)

const helpText = `Deal a random cribbage hand for you to score. Type the total
score of the shown hand plus starter and press enter. The starter is the card
left of the bar.

Commands: ? or help for this text, stats for session statistics, quit to exit.
Ctrl+C quits at any time; the open round is not recorded.`

// App ties together views.
type App struct {
	ctx      context.Context
	dealer   *session.Dealer
	stats    *session.Stats
	results  *repository.ResultRepo // nil when history is disabled
	renderer render.Renderer
	plain    render.Plain

	state    appState
	deal     session.Deal
	answer   score.Breakdown
	input    textinput.Model
	feedback string
	status   string
	keys     keyMap
	dealErr  error
}

type appState string

const (
	viewPrompt appState = "prompt"
	viewHelp   appState = "help"
	viewStats  appState = "stats"
)

type keyMap struct {
	Submit key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Help, k.Quit}
}

// New builds the driver around its collaborators. The stats accumulator is
// owned by the caller and mutated across rounds; results may be nil.
func New(ctx context.Context, dealer *session.Dealer, stats *session.Stats, results *repository.ResultRepo, renderer render.Renderer) *App {
	input := textinput.New()
	input.Placeholder = "score"
	input.CharLimit = 12
	input.Width = 16
	input.Focus()

	a := &App{
		ctx:      ctx,
		dealer:   dealer,
		stats:    stats,
		results:  results,
		renderer: renderer,
		state:    viewPrompt,
		input:    input,
		keys:     newKeyMap(),
		status:   "Welcome to cribtrain! ('?' for help, Ctrl-C to quit)",
	}
	a.nextRound()
	return a
}

func (a *App) nextRound() {
	deal, err := a.dealer.Deal()
	if err != nil {
		a.dealErr = err
		return
	}
	answer, err := deal.Score()
	if err != nil {
		a.dealErr = err
		return
	}
	a.deal = deal
	a.answer = answer
	a.input.Reset()
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.state != viewPrompt {
			// any other key returns to the open round
			a.state = viewPrompt
			return a, nil
		}
		if m.Type == tea.KeyEnter {
			return a.submit()
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(m)
		return a, cmd
	case resultLoggedMsg:
		if m.err != nil {
			a.status = "history: " + m.err.Error()
		}
		return a, nil
	}
	return a, nil
}

func (a *App) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(a.input.Value())
	if text == "" {
		return a, nil
	}

	kind, guess, ok := parseEntry(text)
	switch kind {
	case entryHelp:
		a.state = viewHelp
		a.input.Reset()
		return a, nil
	case entryStats:
		a.state = viewStats
		a.input.Reset()
		return a, nil
	case entryQuit:
		return a, tea.Quit
	}
	if !ok {
		if hint := suggestCommand(text); hint != "" {
			a.status = fmt.Sprintf("Unknown command %q. Did you mean %q?", text, hint)
		} else {
			a.status = "Invalid input. Score this hand again."
		}
		a.input.Reset()
		return a, nil
	}

	answered := a.deal
	breakdown := a.answer
	correct := a.stats.Record(guess, breakdown)
	if correct {
		a.status = "Correct!"
		a.feedback = ""
	} else {
		a.status = ""
		a.feedback = renderBreakdown(breakdown)
	}
	a.nextRound()
	return a, a.logResultCmd(answered, breakdown, guess, correct)
}

func (a *App) logResultCmd(d session.Deal, b score.Breakdown, guess int, correct bool) tea.Cmd {
	if a.results == nil {
		return nil
	}
	return func() tea.Msg {
		err := a.results.Insert(a.ctx, repository.Result{
			ID:       uuid.NewString(),
			PlayedAt: database.Now(),
			Hand:     a.plain.Cards(d.Hand),
			Starter:  a.plain.Card(d.Starter),
			Guess:    guess,
			Total:    b.Total(),
			Pairs:    b.Pairs,
			Fifteens: b.Fifteens,
			Runs:     b.Runs,
			Flushes:  b.Flushes,
			Nobs:     b.Nobs,
			Correct:  correct,
		})
		return resultLoggedMsg{err: err}
	}
}

func (a *App) View() string {
	if a.dealErr != nil {
		return "deal error: " + a.dealErr.Error() + "\n"
	}
	switch a.state {
	case viewHelp:
		return titleStyle.Render("Help") + "\n" + helpText + "\n\n" + dimStyle.Render("press any key to continue")
	case viewStats:
		return a.renderStats()
	default:
		return a.renderPrompt()
	}
}

func (a *App) renderPrompt() string {
	var out strings.Builder
	if a.feedback != "" {
		out.WriteString(a.feedback)
		out.WriteString("\n")
	}
	out.WriteString(a.renderer.Card(a.deal.Starter))
	out.WriteString(" | ")
	out.WriteString(a.renderer.Cards(a.deal.Hand))
	out.WriteString(": ")
	out.WriteString(a.input.View())
	out.WriteString("\n\n")
	out.WriteString(renderHelp(a.keys.ShortHelp()))
	if a.status != "" {
		out.WriteString("\n" + statusStyle.Render(a.status))
	}
	return out.String()
}

func (a *App) renderStats() string {
	t := a.stats.Tallies
	body := fmt.Sprintf(
		"Rounds      : %d\nCorrect     : %d\nAccuracy    : %.0f%%\n\nPairs       : %d\nFifteens    : %d\nRuns        : %d\nFlushes     : %d\nNobs        : %d",
		a.stats.Rounds, a.stats.Correct, a.stats.Accuracy()*100,
		t.Pairs, t.Fifteens, t.Runs, t.Flushes, t.Nobs,
	)
	return titleStyle.Render("Session stats") + "\n" + body + "\n\n" + dimStyle.Render("press any key to continue")
}

func renderBreakdown(b score.Breakdown) string {
	return fmt.Sprintf(
		"\nActual score: %d\n\nPairs       : %d\nFifteens    : %d\nRuns        : %d\nFlushes     : %d\nNobs        : %d",
		b.Total(), b.Pairs, b.Fifteens, b.Runs, b.Flushes, b.Nobs,
	)
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

// messages
type resultLoggedMsg struct{ err error }

// styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	keyStyle    = lipgloss.NewStyle().Bold(true)
)
