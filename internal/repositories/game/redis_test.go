package game

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/kmalyshev/votebattle/internal/models"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type seqUUID struct {
	n int
}

func (u *seqUUID) NewUUID() string {
	u.n++
	return fmt.Sprintf("game-%d", u.n)
}

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	clock   *fixedClock
	testNow time.Time
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.clock = &fixedClock{now: s.testNow}

	repo, err := NewRedis(&Config{
		RedisClient:   s.client,
		Clock:         s.clock,
		UUIDGenerator: &seqUUID{},
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestCreateGame() {
	game, err := s.repo.CreateGame(s.ctx, &CreateGameInput{ChatID: 42})
	s.Require().NoError(err)
	s.Equal("game-1", game.ID)
	s.Equal(int64(42), game.ChatID)
	s.Equal(1, game.CurrentRound)
	s.Equal(models.GameStatusInProgress, game.Status)
	s.Equal(s.testNow, game.CreatedAt)
	s.Nil(game.FinishedAt)
}

func (s *RedisRepositoryTestSuite) TestCreateGameOnePerChat() {
	_, err := s.repo.CreateGame(s.ctx, &CreateGameInput{ChatID: 42})
	s.Require().NoError(err)

	_, err = s.repo.CreateGame(s.ctx, &CreateGameInput{ChatID: 42})
	s.Require().ErrorIs(err, ErrGameAlreadyExists)

	// Other chats are unaffected
	_, err = s.repo.CreateGame(s.ctx, &CreateGameInput{ChatID: 43})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestGetGame() {
	created, err := s.repo.CreateGame(s.ctx, &CreateGameInput{ChatID: 42})
	s.Require().NoError(err)

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: created.ID})
	s.Require().NoError(err)
	s.Equal(created, game)
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "missing"})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetGameByStatusInProgress() {
	created, err := s.repo.CreateGame(s.ctx, &CreateGameInput{ChatID: 42})
	s.Require().NoError(err)

	game, err := s.repo.GetGameByStatus(s.ctx, &GetGameByStatusInput{
		ChatID: 42,
		Status: models.GameStatusInProgress,
	})
	s.Require().NoError(err)
	s.Equal(created.ID, game.ID)

	_, err = s.repo.GetGameByStatus(s.ctx, &GetGameByStatusInput{
		ChatID: 43,
		Status: models.GameStatusInProgress,
	})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameStatusFinished() {
	created, err := s.repo.CreateGame(s.ctx, &CreateGameInput{ChatID: 42})
	s.Require().NoError(err)

	finished, err := s.repo.UpdateGameStatus(s.ctx, &UpdateGameStatusInput{
		GameID: created.ID,
		Status: models.GameStatusFinished,
	})
	s.Require().NoError(err)
	s.Equal(models.GameStatusFinished, finished.Status)
	s.Require().NotNil(finished.FinishedAt)
	s.Equal(s.testNow, *finished.FinishedAt)

	// Finishing releases the in-progress slot
	_, err = s.repo.GetGameByStatus(s.ctx, &GetGameByStatusInput{
		ChatID: 42,
		Status: models.GameStatusInProgress,
	})
	s.Require().ErrorIs(err, ErrGameNotFound)

	_, err = s.repo.CreateGame(s.ctx, &CreateGameInput{ChatID: 42})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestIncrementRound() {
	created, err := s.repo.CreateGame(s.ctx, &CreateGameInput{ChatID: 42})
	s.Require().NoError(err)

	game, err := s.repo.IncrementRound(s.ctx, &IncrementRoundInput{GameID: created.ID})
	s.Require().NoError(err)
	s.Equal(2, game.CurrentRound)

	game, err = s.repo.IncrementRound(s.ctx, &IncrementRoundInput{GameID: created.ID})
	s.Require().NoError(err)
	s.Equal(3, game.CurrentRound)

	game, err = s.repo.GetGame(s.ctx, &GetGameInput{GameID: created.ID})
	s.Require().NoError(err)
	s.Equal(3, game.CurrentRound)
}

func (s *RedisRepositoryTestSuite) TestCancelInProgressGame() {
	created, err := s.repo.CreateGame(s.ctx, &CreateGameInput{ChatID: 42})
	s.Require().NoError(err)

	err = s.repo.CancelInProgressGame(s.ctx, &CancelInProgressGameInput{ChatID: 42})
	s.Require().NoError(err)

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: created.ID})
	s.Require().NoError(err)
	s.Equal(models.GameStatusCanceled, game.Status)
	s.Nil(game.FinishedAt)

	// Canceled games never show up as the last finished game
	_, err = s.repo.GetLastFinishedGame(s.ctx, &GetLastFinishedGameInput{ChatID: 42})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestCancelInProgressGameNoGame() {
	err := s.repo.CancelInProgressGame(s.ctx, &CancelInProgressGameInput{ChatID: 42})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestGetLastFinishedGame() {
	first, err := s.repo.CreateGame(s.ctx, &CreateGameInput{ChatID: 42})
	s.Require().NoError(err)
	_, err = s.repo.UpdateGameStatus(s.ctx, &UpdateGameStatusInput{
		GameID: first.ID,
		Status: models.GameStatusFinished,
	})
	s.Require().NoError(err)

	s.clock.now = s.testNow.Add(time.Hour)

	second, err := s.repo.CreateGame(s.ctx, &CreateGameInput{ChatID: 42})
	s.Require().NoError(err)
	_, err = s.repo.UpdateGameStatus(s.ctx, &UpdateGameStatusInput{
		GameID: second.ID,
		Status: models.GameStatusFinished,
	})
	s.Require().NoError(err)

	last, err := s.repo.GetLastFinishedGame(s.ctx, &GetLastFinishedGameInput{ChatID: 42})
	s.Require().NoError(err)
	s.Equal(second.ID, last.ID)
}
