package deck

import "fmt"

// Suit is one of the four French suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Rank runs Ace (low) through King. Aces are always low; runs never wrap.
type Rank uint8

const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Card is one of the 52 standard playing cards. Equality is structural.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard validates rank and suit before constructing a card.
func NewCard(r Rank, s Suit) (Card, error) {
	if r < Ace || r > King || s > Spades {
		return Card{}, fmt.Errorf("no such card: rank %d suit %d", r, s)
	}
	return Card{Rank: r, Suit: s}, nil
}

// PipValue is the rank's counting value for fifteens: ace 1, face cards 10.
func (r Rank) PipValue() int {
	if r > Ten {
		return 10
	}
	return int(r)
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", uint8(r))
	}
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	default:
		return "?"
	}
}

// Symbol returns the suit glyph used in the prompt.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Red reports whether the suit prints in red on a terminal.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}
