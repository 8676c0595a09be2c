package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/arcanaland/gofish/internal/card"
)

// HumanTurn reads one rank token and resolves it. It returns 1 when the
// turn completed a set and 0 otherwise. A token of the wrong length ends
// the turn without touching any cards.
func (g *Game) HumanTurn() (int, error) {
	g.out.Notify(Event{
		Kind:     EventTurnStarted,
		Player:   Human,
		Cards:    g.human.Sorted(),
		DeckLeft: g.deck.Len(),
		Score:    g.score,
	})

	token, err := g.in.ReadToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrInputClosed
		}
		return 0, fmt.Errorf("reading rank: %w", err)
	}

	rank, err := card.ParseRank(token)
	if err != nil {
		g.log.Debug("rejected rank token", "token", token, "error", err)
		g.out.Notify(Event{Kind: EventInvalidInput, Player: Human})
		return 0, nil
	}

	return g.resolve(Human, rank), nil
}

// ComputerTurn guesses a rank uniformly at random and resolves it
func (g *Game) ComputerTurn() int {
	g.out.Notify(Event{
		Kind:     EventTurnStarted,
		Player:   Computer,
		DeckLeft: g.deck.Len(),
		Score:    g.score,
	})

	rank := card.Rank(g.rng.Intn(card.NumRanks))
	return g.resolve(Computer, rank)
}

// resolve asks the opponent of p for rank: capture on a hit, draw otherwise,
// then look for a completed set
func (g *Game) resolve(p Player, rank card.Rank) int {
	asker, opponent := g.hand(p), g.hand(p.Opponent())
	g.out.Notify(Event{Kind: EventAsked, Player: p, Rank: rank})

	if opponent.HasRank(rank) {
		taken := opponent.Remove(rank)
		asker.Add(taken...)
		g.log.Debug("captured", "player", p.String(), "rank", rank.Name(), "count", len(taken))
		g.out.Notify(Event{Kind: EventCaptured, Player: p, Rank: rank, Cards: taken})
	} else {
		g.out.Notify(Event{Kind: EventGoFish, Player: p, Rank: rank})
		c, ok := g.deck.Draw()
		if !ok {
			g.log.Debug("deck empty", "player", p.String())
			g.out.Notify(Event{Kind: EventDeckEmpty, Player: p})
		} else {
			asker.Add(c)
			g.log.Debug("drew", "player", p.String(), "deck_left", g.deck.Len())
			g.out.Notify(Event{Kind: EventDrew, Player: p, Card: c, DeckLeft: g.deck.Len()})
		}
	}

	return g.checkSet(p)
}

func (g *Game) checkSet(p Player) int {
	rank, ok := g.hand(p).CheckSet()
	if !ok {
		return 0
	}
	g.claim(p, rank)
	g.log.Debug("set completed", "player", p.String(), "rank", rank.Name(), "score", g.score.Total())
	g.out.Notify(Event{Kind: EventSetCompleted, Player: p, Rank: rank, Score: g.score})
	return 1
}
