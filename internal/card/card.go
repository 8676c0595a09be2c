package card

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Suit is one of the four French suits
type Suit uint8

const (
	Spade Suit = iota
	Heart
	Diamond
	Club
)

// NumSuits is the number of suits in a standard deck
const NumSuits = 4

// Suits lists every suit in canonical order
var Suits = [NumSuits]Suit{Spade, Heart, Diamond, Club}

// Rank is a face value, ordered Ace=0 through King=12
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of ranks, and so the number of sets in a game
const NumRanks = 13

// RankUnknown is what an unrecognized rank token parses to. No card carries it.
const RankUnknown Rank = 15

// ErrInvalidToken is returned when a rank token is not one or two characters long
var ErrInvalidToken = errors.New("rank token must be one or two characters")

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// New returns the card of the given suit and rank
func New(s Suit, r Rank) Card {
	return Card{Suit: s, Rank: r}
}

// String renders the card as rank followed by suit symbol, e.g. "10♥"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Valid reports whether the card is one of the 52 real cards
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// Red reports whether the card is a heart or a diamond
func (c Card) Red() bool {
	return c.Suit == Heart || c.Suit == Diamond
}

func (s Suit) Valid() bool { return s < NumSuits }

// Symbol returns the unicode suit glyph
func (s Suit) Symbol() string {
	switch s {
	case Spade:
		return "♠"
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the single-letter suit code (S, H, D, C)
func (s Suit) Letter() string {
	switch s {
	case Spade:
		return "S"
	case Heart:
		return "H"
	case Diamond:
		return "D"
	case Club:
		return "C"
	default:
		return "?"
	}
}

func (s Suit) String() string {
	switch s {
	case Spade:
		return "Spades"
	case Heart:
		return "Hearts"
	case Diamond:
		return "Diamonds"
	case Club:
		return "Clubs"
	default:
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
}

func (r Rank) Valid() bool { return r < NumRanks }

// String returns the short face label: A, 2..10, J, Q, K
func (r Rank) String() string {
	switch {
	case r == Ace:
		return "A"
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r)+1)
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	default:
		return "?"
	}
}

// Name returns the long rank name, e.g. "Queen"
func (r Rank) Name() string {
	names := [NumRanks]string{
		"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
		"Eight", "Nine", "Ten", "Jack", "Queen", "King",
	}
	if !r.Valid() {
		return "Unknown"
	}
	return names[r]
}

// Plural returns the rank name for several cards, e.g. "Sixes"
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.Name() + "s"
}

// ParseRank converts a player's rank token into a Rank.
//
// The token is trimmed first. A single character selects Ace through Nine
// ("A" or "a", "2".."9"). Two characters select Ten and the court cards by
// their second character: "10", "11" (J), "12" (Q), "13" (K). Any other token
// of a valid length parses to RankUnknown with a nil error. Tokens of any
// other length return ErrInvalidToken.
func ParseRank(token string) (Rank, error) {
	token = strings.TrimSpace(token)
	switch utf8.RuneCountInString(token) {
	case 1:
		ch := []rune(strings.ToUpper(token))[0]
		switch {
		case ch == 'A':
			return Ace, nil
		case ch >= '2' && ch <= '9':
			return Rank(ch - '1'), nil
		}
		return RankUnknown, nil
	case 2:
		ch := []rune(token)[1]
		if ch >= '0' && ch <= '3' {
			return Ten + Rank(ch-'0'), nil
		}
		return RankUnknown, nil
	default:
		return RankUnknown, ErrInvalidToken
	}
}

// Canonical returns all 52 cards in suit-major, rank-minor order
func Canonical() []Card {
	cards := make([]Card, 0, NumSuits*NumRanks)
	for _, s := range Suits {
		for r := Ace; r <= King; r++ {
			cards = append(cards, New(s, r))
		}
	}
	return cards
}
