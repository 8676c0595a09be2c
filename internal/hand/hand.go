package hand

import (
	"sort"

	"github.com/arcanaland/gofish/internal/card"
)

// SetSize is the number of same-rank cards that make a set
const SetSize = card.NumSuits

// Hand holds the cards of one player. Order carries no meaning.
type Hand struct {
	cards []card.Card
}

// New returns an empty hand
func New() *Hand {
	return &Hand{}
}

// Add appends cards to the hand
func (h *Hand) Add(cards ...card.Card) {
	h.cards = append(h.cards, cards...)
}

// HasRank reports whether any held card has the given rank
func (h *Hand) HasRank(r card.Rank) bool {
	for _, c := range h.cards {
		if c.Rank == r {
			return true
		}
	}
	return false
}

// Count returns how many held cards have the given rank
func (h *Hand) Count(r card.Rank) int {
	n := 0
	for _, c := range h.cards {
		if c.Rank == r {
			n++
		}
	}
	return n
}

// Remove takes every card of rank r out of the hand and returns them in
// the order they were held. The result is empty when nothing matches.
func (h *Hand) Remove(r card.Rank) []card.Card {
	removed := []card.Card{}
	kept := h.cards[:0]
	for _, c := range h.cards {
		if c.Rank == r {
			removed = append(removed, c)
		} else {
			kept = append(kept, c)
		}
	}
	h.cards = kept
	return removed
}

// CheckSet looks for the lowest rank held SetSize or more times. If one is
// found its cards are removed and the rank is returned with true. At most
// one set is taken per call.
func (h *Hand) CheckSet() (card.Rank, bool) {
	var counts [card.NumRanks]int
	for _, c := range h.cards {
		if c.Rank.Valid() {
			counts[c.Rank]++
		}
	}
	for r := card.Ace; r <= card.King; r++ {
		if counts[r] >= SetSize {
			h.Remove(r)
			return r, true
		}
	}
	return card.RankUnknown, false
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the held cards
func (h *Hand) Cards() []card.Card {
	out := make([]card.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Sorted returns a copy of the held cards ordered by rank, then suit
func (h *Hand) Sorted() []card.Card {
	out := h.Cards()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].Suit < out[j].Suit
	})
	return out
}

// Ranks returns the distinct ranks held, ascending
func (h *Hand) Ranks() []card.Rank {
	var seen [card.NumRanks]bool
	for _, c := range h.cards {
		if c.Rank.Valid() {
			seen[c.Rank] = true
		}
	}
	var ranks []card.Rank
	for r := card.Ace; r <= card.King; r++ {
		if seen[r] {
			ranks = append(ranks, r)
		}
	}
	return ranks
}
