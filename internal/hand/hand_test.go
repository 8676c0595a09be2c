package hand

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcanaland/gofish/internal/card"
)

type HandTestSuite struct {
	suite.Suite
	hand *Hand
}

func TestHandSuite(t *testing.T) {
	suite.Run(t, new(HandTestSuite))
}

func (s *HandTestSuite) SetupTest() {
	s.hand = New()
}

func fourOf(r card.Rank) []card.Card {
	out := make([]card.Card, 0, card.NumSuits)
	for _, suit := range card.Suits {
		out = append(out, card.New(suit, r))
	}
	return out
}

func (s *HandTestSuite) TestNewHand() {
	s.Zero(s.hand.Len(), "New hand should be empty")
	s.Empty(s.hand.Cards())
	s.False(s.hand.HasRank(card.Ace))
}

func (s *HandTestSuite) TestAddAndRemoveRoundTrip() {
	// Setup
	cards := []card.Card{
		card.New(card.Heart, card.Seven),
		card.New(card.Spade, card.Two),
		card.New(card.Club, card.Seven),
		card.New(card.Diamond, card.King),
	}
	s.hand.Add(cards...)
	s.Equal(4, s.hand.Len())

	// Execute
	removed := s.hand.Remove(card.Seven)

	// Assert
	s.ElementsMatch([]card.Card{card.New(card.Heart, card.Seven), card.New(card.Club, card.Seven)}, removed)
	s.Equal(2, s.hand.Len(), "Hand size should drop by the count removed")
	s.False(s.hand.HasRank(card.Seven))
	s.True(s.hand.HasRank(card.Two))
	s.True(s.hand.HasRank(card.King))
}

func (s *HandTestSuite) TestRemoveKeepsEncounterOrder() {
	s.hand.Add(
		card.New(card.Club, card.Five),
		card.New(card.Heart, card.Six),
		card.New(card.Spade, card.Five),
		card.New(card.Heart, card.Five),
	)

	removed := s.hand.Remove(card.Five)

	s.Equal([]card.Card{
		card.New(card.Club, card.Five),
		card.New(card.Spade, card.Five),
		card.New(card.Heart, card.Five),
	}, removed)
	s.Equal([]card.Card{card.New(card.Heart, card.Six)}, s.hand.Cards())
}

func (s *HandTestSuite) TestRemoveNoMatch() {
	s.hand.Add(card.New(card.Heart, card.Six))

	removed := s.hand.Remove(card.Queen)

	s.NotNil(removed)
	s.Empty(removed)
	s.Equal(1, s.hand.Len(), "Hand should be unchanged")
}

func (s *HandTestSuite) TestHasRankAgreesWithRemove() {
	s.hand.Add(card.New(card.Heart, card.Six), card.New(card.Club, card.Jack), card.New(card.Spade, card.Jack))

	for r := card.Ace; r <= card.King; r++ {
		probe := New()
		probe.Add(s.hand.Cards()...)
		s.Equal(len(probe.Remove(r)) > 0, s.hand.HasRank(r), "rank %s", r.Name())
	}
	s.False(s.hand.HasRank(card.RankUnknown))
}

func (s *HandTestSuite) TestCheckSetBoundary() {
	// Setup
	s.hand.Add(fourOf(card.Nine)...)
	s.hand.Add(card.New(card.Heart, card.Two), card.New(card.Club, card.Two))

	// Execute
	rank, ok := s.hand.CheckSet()

	// Assert
	s.True(ok)
	s.Equal(card.Nine, rank)
	s.Equal(2, s.hand.Len(), "Exactly the four nines should be removed")
	s.False(s.hand.HasRank(card.Nine))

	_, ok = s.hand.CheckSet()
	s.False(ok, "Second call should find nothing")
	s.Equal(2, s.hand.Len())
}

func (s *HandTestSuite) TestCheckSetOnePerCall() {
	s.hand.Add(fourOf(card.King)...)
	s.hand.Add(fourOf(card.Three)...)

	rank, ok := s.hand.CheckSet()
	s.True(ok)
	s.Equal(card.Three, rank, "Lowest rank should be taken first")
	s.Equal(4, s.hand.Len())

	rank, ok = s.hand.CheckSet()
	s.True(ok)
	s.Equal(card.King, rank)
	s.Zero(s.hand.Len())
}

func (s *HandTestSuite) TestCheckSetNoSet() {
	s.hand.Add(card.New(card.Heart, card.Ace), card.New(card.Club, card.Ace), card.New(card.Spade, card.Ace))

	rank, ok := s.hand.CheckSet()

	s.False(ok)
	s.Equal(card.RankUnknown, rank)
	s.Equal(3, s.hand.Len())
}

func (s *HandTestSuite) TestSortedAndRanks() {
	s.hand.Add(
		card.New(card.Club, card.King),
		card.New(card.Heart, card.Ace),
		card.New(card.Spade, card.King),
	)

	s.Equal([]card.Card{
		card.New(card.Heart, card.Ace),
		card.New(card.Spade, card.King),
		card.New(card.Club, card.King),
	}, s.hand.Sorted())
	s.Equal([]card.Rank{card.Ace, card.King}, s.hand.Ranks())
	s.Equal(2, s.hand.Count(card.King))
}

func (s *HandTestSuite) TestCardsReturnsCopy() {
	s.hand.Add(card.New(card.Club, card.King))

	cards := s.hand.Cards()
	cards[0] = card.New(card.Heart, card.Two)

	s.Equal(card.New(card.Club, card.King), s.hand.Cards()[0])
}
