package deck

import (
	"github.com/arcanaland/gofish/internal/card"
)

// Size is the number of cards in a full deck
const Size = card.NumSuits * card.NumRanks

// Deck represents the draw pile. The top of the pile is the end of the slice.
type Deck struct {
	cards []card.Card
	mode  ShuffleMode
}

// New builds all 52 cards in canonical order and shuffles them with rng
func New(rng Rand, mode ShuffleMode) *Deck {
	return &Deck{
		cards: Shuffle(card.Canonical(), rng, mode),
		mode:  mode,
	}
}

// FromCards builds a deck holding exactly the given cards, top card last.
// It is used to stage specific game situations.
func FromCards(cards ...card.Card) *Deck {
	c := make([]card.Card, len(cards))
	copy(c, cards)
	return &Deck{cards: c}
}

// Draw removes and returns the top card. The second result is false when
// the deck is empty.
func (d *Deck) Draw() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// Empty reports whether no cards remain
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Mode returns the shuffle the deck was built with
func (d *Deck) Mode() ShuffleMode {
	return d.mode
}

// Cards returns a copy of the remaining cards, bottom first
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}
