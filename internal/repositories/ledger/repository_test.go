package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/dragontiger/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	useRedis bool
	mr       *miniredis.Miniredis
	client   *redis.Client
	repo     Repository
	testNow  time.Time
}

func (s *RepositoryTestSuite) SetupTest() {
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	if !s.useRedis {
		s.repo = NewMemory()
		return
	}

	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.useRedis {
		s.client.Close()
		s.mr.Close()
	}
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{})
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{useRedis: true})
}

func (s *RepositoryTestSuite) entry(id, sessionID string, seq int) *models.LedgerEntry {
	return &models.LedgerEntry{
		ID:            id,
		SessionID:     sessionID,
		Sequence:      seq,
		DragonCard:    models.NewCard(models.RankKing, models.SuitSpades),
		TigerCard:     models.NewCard(3, models.SuitHearts),
		Result:        models.RoundResultDragon,
		BetSide:       models.BetSideDragon,
		BetAmount:     10,
		BankrollDelta: 10,
		BankrollAfter: 110,
		CreatedAt:     s.testNow.Add(time.Duration(seq) * time.Minute),
	}
}

func (s *RepositoryTestSuite) TestAppendAndListPreservesOrder() {
	ctx := context.Background()
	for i, id := range []string{"c", "a", "b"} {
		err := s.repo.AppendEntry(ctx, &AppendEntryInput{Entry: s.entry(id, "session-1", i+1)})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListEntries(ctx, &ListEntriesInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 3)

	s.Equal("c", output.Entries[0].ID)
	s.Equal("a", output.Entries[1].ID)
	s.Equal("b", output.Entries[2].ID)

	got := output.Entries[0]
	s.Equal(models.NewCard(models.RankKing, models.SuitSpades), got.DragonCard)
	s.Equal(models.NewCard(3, models.SuitHearts), got.TigerCard)
	s.Equal(models.RoundResultDragon, got.Result)
	s.Equal(models.BetSideDragon, got.BetSide)
	s.Equal(110.0, got.BankrollAfter)
	s.Equal(s.testNow.Add(time.Minute).Unix(), got.CreatedAt.Unix())
}

func (s *RepositoryTestSuite) TestSessionsAreIsolated() {
	ctx := context.Background()
	s.Require().NoError(s.repo.AppendEntry(ctx, &AppendEntryInput{Entry: s.entry("one", "session-1", 1)}))
	s.Require().NoError(s.repo.AppendEntry(ctx, &AppendEntryInput{Entry: s.entry("two", "session-2", 1)}))

	output, err := s.repo.ListEntries(ctx, &ListEntriesInput{SessionID: "session-2"})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 1)
	s.Equal("two", output.Entries[0].ID)
}

func (s *RepositoryTestSuite) TestClearEntries() {
	ctx := context.Background()
	s.Require().NoError(s.repo.AppendEntry(ctx, &AppendEntryInput{Entry: s.entry("one", "session-1", 1)}))
	s.Require().NoError(s.repo.AppendEntry(ctx, &AppendEntryInput{Entry: s.entry("keep", "session-2", 1)}))

	s.Require().NoError(s.repo.ClearEntries(ctx, &ClearEntriesInput{SessionID: "session-1"}))

	output, err := s.repo.ListEntries(ctx, &ListEntriesInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Empty(output.Entries)

	output, err = s.repo.ListEntries(ctx, &ListEntriesInput{SessionID: "session-2"})
	s.Require().NoError(err)
	s.Len(output.Entries, 1)
}

func (s *RepositoryTestSuite) TestListedEntriesAreCopies() {
	ctx := context.Background()
	s.Require().NoError(s.repo.AppendEntry(ctx, &AppendEntryInput{Entry: s.entry("one", "session-1", 1)}))

	first, err := s.repo.ListEntries(ctx, &ListEntriesInput{SessionID: "session-1"})
	s.Require().NoError(err)
	first.Entries[0].BankrollAfter = -1

	second, err := s.repo.ListEntries(ctx, &ListEntriesInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal(110.0, second.Entries[0].BankrollAfter)
}

func (s *RepositoryTestSuite) TestGetEmptyResults() {
	output, err := s.repo.ListEntries(context.Background(), &ListEntriesInput{SessionID: "non-existent"})
	s.Require().NoError(err)
	s.Empty(output.Entries)
}

func (s *RepositoryTestSuite) TestInvalidInput() {
	ctx := context.Background()

	s.ErrorIs(s.repo.AppendEntry(ctx, nil), ErrNilEntry)
	s.ErrorIs(s.repo.AppendEntry(ctx, &AppendEntryInput{}), ErrNilEntry)
	s.ErrorIs(s.repo.AppendEntry(ctx, &AppendEntryInput{Entry: s.entry("", "session-1", 1)}), ErrMissingEntryID)
	s.ErrorIs(s.repo.AppendEntry(ctx, &AppendEntryInput{Entry: s.entry("id", "", 1)}), ErrMissingSessionID)

	_, err := s.repo.ListEntries(ctx, &ListEntriesInput{})
	s.ErrorIs(err, ErrMissingSessionID)

	s.ErrorIs(s.repo.ClearEntries(ctx, nil), ErrMissingSessionID)
}

func TestNewRedisValidatesConfig(t *testing.T) {
	_, err := NewRedis(nil)
	if err == nil {
		t.Fatal("expected error for nil config")
	}

	_, err = NewRedis(&Config{})
	if err == nil {
		t.Fatal("expected error for nil client")
	}
}
