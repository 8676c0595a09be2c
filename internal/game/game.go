package game

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/arcanaland/gofish/internal/card"
	"github.com/arcanaland/gofish/internal/deck"
	"github.com/arcanaland/gofish/internal/hand"
)

// HandSize is the number of cards dealt to each player
const HandSize = 7

// DefaultMaxRounds bounds a game whose players stop making progress
const DefaultMaxRounds = 500

// ErrInputClosed is returned when the human's input reaches end of file
var ErrInputClosed = errors.New("input closed")

// Rand is the randomness source for shuffling and the computer's guesses
type Rand interface {
	Intn(n int) int
}

// Score holds each side's completed sets
type Score struct {
	Human    int
	Computer int
}

// Total returns the number of ranks claimed so far
func (s Score) Total() int {
	return s.Human + s.Computer
}

// Result is the outcome of Play
type Result struct {
	Score
	Winner    Player
	Rounds    int
	Truncated bool
}

// Options configures a new game
type Options struct {
	Rand      Rand
	Shuffle   deck.ShuffleMode
	MaxRounds int
	Logger    *slog.Logger
}

// Game owns the deck and both hands for its whole lifetime
type Game struct {
	deck     *deck.Deck
	human    *hand.Hand
	computer *hand.Hand

	in  Input
	out Presenter
	rng Rand
	log *slog.Logger

	score     Score
	owners    map[card.Rank]Player
	rounds    int
	maxRounds int
}

// New shuffles a deck and deals HandSize cards to each player, alternating
// human and computer
func New(in Input, out Presenter, opts Options) *Game {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.MaxRounds <= 0 {
		opts.MaxRounds = DefaultMaxRounds
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Shuffle == "" {
		opts.Shuffle = deck.ShuffleClassic
	}

	g := &Game{
		deck:      deck.New(opts.Rand, opts.Shuffle),
		human:     hand.New(),
		computer:  hand.New(),
		in:        in,
		out:       out,
		rng:       opts.Rand,
		log:       opts.Logger,
		owners:    make(map[card.Rank]Player),
		maxRounds: opts.MaxRounds,
	}
	g.deal()
	g.log.Debug("game dealt", "shuffle", string(opts.Shuffle), "deck_left", g.deck.Len())
	return g
}

func (g *Game) deal() {
	for i := 0; i < HandSize; i++ {
		if c, ok := g.deck.Draw(); ok {
			g.human.Add(c)
		}
		if c, ok := g.deck.Draw(); ok {
			g.computer.Add(c)
		}
	}
}

// Play alternates human and computer turns until all 13 ranks are claimed
// or the round cap is reached. When the cap is reached the remaining ranks
// are settled by majority and the result is marked Truncated.
func (g *Game) Play() (Result, error) {
	truncated := false
	for g.score.Total() < card.NumRanks {
		if g.rounds >= g.maxRounds {
			g.log.Info("round cap reached, settling remaining ranks", "rounds", g.rounds)
			g.settle()
			truncated = true
			break
		}
		g.rounds++

		if _, err := g.HumanTurn(); err != nil {
			return g.result(false), err
		}
		if g.score.Total() >= card.NumRanks {
			break
		}
		g.ComputerTurn()
	}
	return g.result(truncated), nil
}

func (g *Game) result(truncated bool) Result {
	return Result{
		Score:     g.score,
		Winner:    Winner(g.score),
		Rounds:    g.rounds,
		Truncated: truncated,
	}
}

// settle awards every unclaimed rank to the player holding strictly more of
// its cards. Ties leave the rank unclaimed.
func (g *Game) settle() {
	for r := card.Ace; r <= card.King; r++ {
		if _, claimed := g.owners[r]; claimed {
			continue
		}
		h, c := g.human.Count(r), g.computer.Count(r)
		var winner Player
		switch {
		case h > c:
			winner = Human
		case c > h:
			winner = Computer
		default:
			continue
		}
		g.hand(winner).Remove(r)
		g.claim(winner, r)
		g.out.Notify(Event{Kind: EventRankSettled, Player: winner, Rank: r, Score: g.score})
	}
}

func (g *Game) claim(p Player, r card.Rank) {
	g.owners[r] = p
	if p == Human {
		g.score.Human++
	} else {
		g.score.Computer++
	}
}

func (g *Game) hand(p Player) *hand.Hand {
	if p == Human {
		return g.human
	}
	return g.computer
}

// Score returns the running score
func (g *Game) Score() Score {
	return g.score
}

// Rounds returns the number of rounds started
func (g *Game) Rounds() int {
	return g.rounds
}

// Sets returns which player claimed each rank so far
func (g *Game) Sets() map[card.Rank]Player {
	out := make(map[card.Rank]Player, len(g.owners))
	for r, p := range g.owners {
		out[r] = p
	}
	return out
}

// HandOf returns a copy of the given player's cards
func (g *Game) HandOf(p Player) []card.Card {
	return g.hand(p).Sorted()
}

// DeckLeft returns the number of cards still in the deck
func (g *Game) DeckLeft() int {
	return g.deck.Len()
}

// Winner picks the human only on a strictly higher score. Ties go to the
// computer.
func Winner(s Score) Player {
	if s.Human > s.Computer {
		return Human
	}
	return Computer
}
