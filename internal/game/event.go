package game

import (
	"github.com/arcanaland/gofish/internal/card"
)

// Player identifies one side of the table
type Player int

const (
	Human Player = iota
	Computer
)

func (p Player) String() string {
	switch p {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "nobody"
	}
}

// Opponent returns the other side
func (p Player) Opponent() Player {
	if p == Human {
		return Computer
	}
	return Human
}

// EventKind tells a Presenter what happened
type EventKind int

const (
	// EventTurnStarted opens a turn. Cards holds the acting player's hand.
	EventTurnStarted EventKind = iota
	// EventInvalidInput means the human's token had the wrong length
	EventInvalidInput
	// EventAsked carries the rank the acting player asked for
	EventAsked
	// EventCaptured means Cards moved from the opponent to the acting player
	EventCaptured
	// EventGoFish means the opponent held no card of Rank
	EventGoFish
	// EventDrew carries the Card drawn from the deck
	EventDrew
	// EventDeckEmpty means a draw found no cards left
	EventDeckEmpty
	// EventSetCompleted means the acting player laid down four of Rank
	EventSetCompleted
	// EventRankSettled means Rank was awarded by majority when the round cap hit
	EventRankSettled
)

// Event is a single notification from the game to its presenter
type Event struct {
	Kind     EventKind
	Player   Player
	Rank     card.Rank
	Card     card.Card
	Cards    []card.Card
	DeckLeft int
	Score    Score
}

// Input supplies the human's rank tokens, one per turn
type Input interface {
	ReadToken() (string, error)
}

// Presenter renders game events
type Presenter interface {
	Notify(Event)
}
