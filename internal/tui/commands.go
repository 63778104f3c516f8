package tui

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

type entryKind int

const (
	entryGuess entryKind = iota
	entryHelp
	entryStats
	entryQuit
)

// parseEntry classifies a prompt entry: a command word or a numeric guess.
// ok is false when the entry is neither.
func parseEntry(text string) (kind entryKind, guess int, ok bool) {
	switch strings.ToLower(text) {
	case "?", "help":
		return entryHelp, 0, true
	case "stats":
		return entryStats, 0, true
	case "quit", "exit":
		return entryQuit, 0, true
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return entryGuess, 0, false
	}
	return entryGuess, n, true
}

var commandWords = []string{"help", "stats", "quit", "exit"}

// suggestCommand returns the closest command word when the entry looks like a
// mistyped command, or "" when nothing is close enough.
func suggestCommand(text string) string {
	lower := strings.ToLower(text)
	best, bestDist := "", 3
	for _, w := range commandWords {
		if d := levenshtein.ComputeDistance(lower, w); d < bestDist {
			best, bestDist = w, d
		}
	}
	return best
}
