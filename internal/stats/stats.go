package stats

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/arcanaland/gofish/internal/game"
)

// ErrNotFound is returned when a result id is unknown
var ErrNotFound = errors.New("result not found")

// Result records one finished game
type Result struct {
	ID            string
	PlayedAt      time.Time
	HumanScore    int
	ComputerScore int
	Winner        string
	Rounds        int
	Truncated     bool
	Shuffle       string
	// Sets maps rank label (A, 2..10, J, Q, K) to the side that claimed it
	Sets map[string]string
}

// Summary aggregates all recorded results
type Summary struct {
	Played       int
	HumanWins    int
	ComputerWins int
	Truncated    int
	BestScore    int
}

// Repository stores finished games
type Repository interface {
	Save(ctx context.Context, result *Result) error
	Get(ctx context.Context, id string) (*Result, error)
	// List returns the most recent results first, at most limit of them
	List(ctx context.Context, limit int) ([]*Result, error)
	Summary(ctx context.Context) (*Summary, error)
	Close() error
}

// NewResult builds a Result from a finished game
func NewResult(g *game.Game, res game.Result, shuffle string, playedAt time.Time) *Result {
	sets := make(map[string]string)
	for rank, owner := range g.Sets() {
		sets[rank.String()] = owner.String()
	}
	return &Result{
		ID:            uuid.NewString(),
		PlayedAt:      playedAt.UTC(),
		HumanScore:    res.Human,
		ComputerScore: res.Computer,
		Winner:        res.Winner.String(),
		Rounds:        res.Rounds,
		Truncated:     res.Truncated,
		Shuffle:       shuffle,
		Sets:          sets,
	}
}

// summarize folds results into a Summary
func summarize(results []*Result) *Summary {
	s := &Summary{}
	for _, r := range results {
		s.Played++
		switch r.Winner {
		case game.Human.String():
			s.HumanWins++
		case game.Computer.String():
			s.ComputerWins++
		}
		if r.Truncated {
			s.Truncated++
		}
		if r.HumanScore > s.BestScore {
			s.BestScore = r.HumanScore
		}
	}
	return s
}
