package repository

import "time"

// Result represents one answered round.
type Result struct {
	ID       string
	PlayedAt time.Time
	Hand     string // plaintext cards, e.g. "5 hearts 7 spades 8 hearts 9 diamonds"
	Starter  string
	Guess    int
	Total    int
	Pairs    int
	Fifteens int
	Runs     int
	Flushes  int
	Nobs     int
	Correct  bool
}

// Summary aggregates all recorded history.
type Summary struct {
	Rounds  int
	Correct int
}
