package stats

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arcanaland/gofish/internal/game"
)

type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() Repository
	repo    Repository
	ctx     context.Context
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{newRepo: func() Repository { return NewMemoryRepository() }})
}

func TestSQLiteRepository(t *testing.T) {
	dir := t.TempDir()
	suite.Run(t, &RepositoryTestSuite{newRepo: func() Repository {
		repo, err := NewSQLiteRepository(filepath.Join(dir, "db", uuid.NewString()+".db"))
		require.NoError(t, err)
		return repo
	}})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.NoError(s.repo.Close())
}

func result(human, computer int, at time.Time) *Result {
	winner := game.Winner(game.Score{Human: human, Computer: computer})
	return &Result{
		ID:            uuid.NewString(),
		PlayedAt:      at.UTC(),
		HumanScore:    human,
		ComputerScore: computer,
		Winner:        winner.String(),
		Rounds:        40,
		Shuffle:       "classic",
		Sets:          map[string]string{"A": "human", "K": "computer"},
	}
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	r := result(8, 5, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	s.Require().NoError(s.repo.Save(s.ctx, r))
	got, err := s.repo.Get(s.ctx, r.ID)

	s.Require().NoError(err)
	s.Equal(r.ID, got.ID)
	s.True(r.PlayedAt.Equal(got.PlayedAt))
	s.Equal(8, got.HumanScore)
	s.Equal(5, got.ComputerScore)
	s.Equal("human", got.Winner)
	s.Equal(r.Sets, got.Sets)
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, "nope")
	s.ErrorIs(err, ErrNotFound)
}

func (s *RepositoryTestSuite) TestListNewestFirst() {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	old := result(3, 10, base)
	mid := result(6, 6, base.Add(time.Hour))
	recent := result(7, 6, base.Add(2*time.Hour))
	for _, r := range []*Result{mid, old, recent} {
		s.Require().NoError(s.repo.Save(s.ctx, r))
	}

	all, err := s.repo.List(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal([]string{recent.ID, mid.ID, old.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	two, err := s.repo.List(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(two, 2)
}

func (s *RepositoryTestSuite) TestSummary() {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	truncated := result(4, 2, base.Add(3*time.Hour))
	truncated.Truncated = true
	for _, r := range []*Result{
		result(3, 10, base),
		result(6, 6, base.Add(time.Hour)),
		result(9, 4, base.Add(2*time.Hour)),
		truncated,
	} {
		s.Require().NoError(s.repo.Save(s.ctx, r))
	}

	sum, err := s.repo.Summary(s.ctx)

	s.Require().NoError(err)
	s.Equal(&Summary{Played: 4, HumanWins: 2, ComputerWins: 2, Truncated: 1, BestScore: 9}, sum)
}

func (s *RepositoryTestSuite) TestSummaryEmpty() {
	sum, err := s.repo.Summary(s.ctx)
	s.Require().NoError(err)
	s.Equal(&Summary{}, sum)
}

type noInput struct{}

func (noInput) ReadToken() (string, error) { return "", nil }

type noPresenter struct{}

func (noPresenter) Notify(game.Event) {}

func TestNewResult(t *testing.T) {
	g := game.New(noInput{}, noPresenter{}, game.Options{Rand: rand.New(rand.NewSource(1))})
	at := time.Date(2026, 5, 2, 9, 30, 0, 0, time.FixedZone("X", 3600))

	r := NewResult(g, game.Result{Score: game.Score{Human: 6, Computer: 6}, Winner: game.Computer, Rounds: 12}, "uniform", at)

	_, err := uuid.Parse(r.ID)
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, r.PlayedAt.Location())
	assert.True(t, at.Equal(r.PlayedAt))
	assert.Equal(t, "computer", r.Winner)
	assert.Equal(t, 12, r.Rounds)
	assert.Equal(t, "uniform", r.Shuffle)
	assert.Empty(t, r.Sets)
}
