package chat

import (
	"context"
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

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
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

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		Clock:       &fixedClock{now: s.testNow},
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

func (s *RedisRepositoryTestSuite) TestGetOrCreateChat() {
	chat, err := s.repo.GetOrCreateChat(s.ctx, &GetOrCreateChatInput{ChatID: 42})
	s.Require().NoError(err)
	s.Equal(int64(42), chat.ChatID)
	s.Equal(models.ChatStateInit, chat.BotState)
	s.Equal(s.testNow, chat.CreatedAt)
}

func (s *RedisRepositoryTestSuite) TestGetOrCreateChatIsIdempotent() {
	first, err := s.repo.GetOrCreateChat(s.ctx, &GetOrCreateChatInput{ChatID: 42})
	s.Require().NoError(err)

	_, err = s.repo.UpdateBotState(s.ctx, &UpdateBotStateInput{
		ChatID:   42,
		NewState: models.ChatStateIdle,
	})
	s.Require().NoError(err)

	second, err := s.repo.GetOrCreateChat(s.ctx, &GetOrCreateChatInput{ChatID: 42})
	s.Require().NoError(err)
	s.Equal(first.ChatID, second.ChatID)
	s.Equal(models.ChatStateIdle, second.BotState, "existing row must not be reset")
}

func (s *RedisRepositoryTestSuite) TestUpdateBotState() {
	_, err := s.repo.GetOrCreateChat(s.ctx, &GetOrCreateChatInput{ChatID: 42})
	s.Require().NoError(err)

	updated, err := s.repo.UpdateBotState(s.ctx, &UpdateBotStateInput{
		ChatID:   42,
		NewState: models.ChatStateIdle,
	})
	s.Require().NoError(err)
	s.Equal(models.ChatStateIdle, updated.BotState)

	chat, err := s.repo.GetChat(s.ctx, &GetChatInput{ChatID: 42})
	s.Require().NoError(err)
	s.Equal(models.ChatStateIdle, chat.BotState)
}

func (s *RedisRepositoryTestSuite) TestUpdateBotStateConditional() {
	_, err := s.repo.GetOrCreateChat(s.ctx, &GetOrCreateChatInput{ChatID: 42})
	s.Require().NoError(err)

	updated, err := s.repo.UpdateBotState(s.ctx, &UpdateBotStateInput{
		ChatID:    42,
		NewState:  models.ChatStateIdle,
		FromState: models.ChatStateInit,
	})
	s.Require().NoError(err)
	s.Equal(models.ChatStateIdle, updated.BotState)
}

func (s *RedisRepositoryTestSuite) TestUpdateBotStateConflict() {
	_, err := s.repo.GetOrCreateChat(s.ctx, &GetOrCreateChatInput{ChatID: 42})
	s.Require().NoError(err)

	_, err = s.repo.UpdateBotState(s.ctx, &UpdateBotStateInput{
		ChatID:    42,
		NewState:  models.ChatStateRoundProcessing,
		FromState: models.ChatStateGameProcessing,
	})
	s.Require().ErrorIs(err, ErrStateConflict)

	chat, err := s.repo.GetChat(s.ctx, &GetChatInput{ChatID: 42})
	s.Require().NoError(err)
	s.Equal(models.ChatStateInit, chat.BotState, "failed update must not change state")
}

func (s *RedisRepositoryTestSuite) TestUpdateBotStateMissingChat() {
	_, err := s.repo.UpdateBotState(s.ctx, &UpdateBotStateInput{
		ChatID:   99,
		NewState: models.ChatStateIdle,
	})
	s.Require().ErrorIs(err, ErrChatNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetChatNotFound() {
	_, err := s.repo.GetChat(s.ctx, &GetChatInput{ChatID: 99})
	s.Require().ErrorIs(err, ErrChatNotFound)
}

func (s *RedisRepositoryTestSuite) TestListChats() {
	for _, id := range []int64{1, 2, 3} {
		_, err := s.repo.GetOrCreateChat(s.ctx, &GetOrCreateChatInput{ChatID: id})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListChats(s.ctx, &ListChatsInput{})
	s.Require().NoError(err)
	s.Len(out.Chats, 3)
}
