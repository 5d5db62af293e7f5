package player

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

const testGameID = "game-1"

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
	return fmt.Sprintf("player-%d", u.n)
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
		RedisClient:   s.client,
		Clock:         &fixedClock{now: s.testNow},
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

// createRoster seeds four players: alice, bob, carol, dave
func (s *RedisRepositoryTestSuite) createRoster() []*models.Player {
	players, err := s.repo.BulkCreatePlayers(s.ctx, &BulkCreatePlayersInput{
		GameID: testGameID,
		Members: []*Member{
			{UserID: 1, Username: "alice", AvatarURL: "https://cdn.example/alice.jpg"},
			{UserID: 2, Username: "bob"},
			{UserID: 3, Username: "carol"},
			{UserID: 4, Username: "dave"},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(players, 4)
	return players
}

func (s *RedisRepositoryTestSuite) TestBulkCreatePlayers() {
	players := s.createRoster()

	alice := players[0]
	s.Equal("player-1", alice.ID)
	s.Equal(testGameID, alice.GameID)
	s.Equal(int64(1), alice.UserID)
	s.Equal("alice", alice.Username)
	s.Equal("https://cdn.example/alice.jpg", alice.AvatarURL)
	s.Equal(1, alice.Round)
	s.Equal(0, alice.Votes)
	s.False(alice.IsVoted)
	s.Equal(models.PlayerStatusVoting, alice.Status)
	s.Equal(s.testNow, alice.CreatedAt)
}

func (s *RedisRepositoryTestSuite) TestGetPlayersOrdering() {
	s.createRoster()

	players, err := s.repo.GetPlayers(s.ctx, &GetPlayersInput{GameID: testGameID})
	s.Require().NoError(err)
	s.Require().Len(players, 4)

	// Creation order is preserved so nomination picks are stable
	s.Equal("alice", players[0].Username)
	s.Equal("bob", players[1].Username)
	s.Equal("carol", players[2].Username)
	s.Equal("dave", players[3].Username)
}

func (s *RedisRepositoryTestSuite) TestGetPlayersByStatus() {
	players := s.createRoster()

	_, err := s.repo.UpdatePlayerStatus(s.ctx, &UpdatePlayerStatusInput{
		GameID:   testGameID,
		PlayerID: players[0].ID,
		Status:   models.PlayerStatusLoser,
	})
	s.Require().NoError(err)

	voting, err := s.repo.GetPlayersByStatus(s.ctx, &GetPlayersByStatusInput{
		GameID: testGameID,
		Status: models.PlayerStatusVoting,
	})
	s.Require().NoError(err)
	s.Len(voting, 3)

	losers, err := s.repo.GetPlayersByStatus(s.ctx, &GetPlayersByStatusInput{
		GameID: testGameID,
		Status: models.PlayerStatusLoser,
	})
	s.Require().NoError(err)
	s.Require().Len(losers, 1)
	s.Equal("alice", losers[0].Username)
}

func (s *RedisRepositoryTestSuite) TestGetPlayerByUserID() {
	s.createRoster()

	p, err := s.repo.GetPlayerByUserID(s.ctx, &GetPlayerByUserIDInput{
		GameID: testGameID,
		UserID: 2,
	})
	s.Require().NoError(err)
	s.Equal("bob", p.Username)

	_, err = s.repo.GetPlayerByUserID(s.ctx, &GetPlayerByUserIDInput{
		GameID: testGameID,
		UserID: 99,
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetPlayerByStatus() {
	players := s.createRoster()

	_, err := s.repo.UpdatePlayerStatus(s.ctx, &UpdatePlayerStatusInput{
		GameID:   testGameID,
		PlayerID: players[3].ID,
		Status:   models.PlayerStatusWinner,
	})
	s.Require().NoError(err)

	winner, err := s.repo.GetPlayerByStatus(s.ctx, &GetPlayerByStatusInput{
		GameID: testGameID,
		Status: models.PlayerStatusWinner,
	})
	s.Require().NoError(err)
	s.Equal("dave", winner.Username)

	_, err = s.repo.GetPlayerByStatus(s.ctx, &GetPlayerByStatusInput{
		GameID: testGameID,
		Status: models.PlayerStatusInGame,
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdatePlayersStatusByUserIDs() {
	s.createRoster()

	updated, err := s.repo.UpdatePlayersStatusByUserIDs(s.ctx, &UpdatePlayersStatusByUserIDsInput{
		GameID:  testGameID,
		UserIDs: []int64{1, 2},
		Status:  models.PlayerStatusInGame,
	})
	s.Require().NoError(err)
	s.Require().Len(updated, 2)
	s.Equal(models.PlayerStatusInGame, updated[0].Status)
	s.Equal(models.PlayerStatusInGame, updated[1].Status)

	nominees, err := s.repo.GetPlayersByStatus(s.ctx, &GetPlayersByStatusInput{
		GameID: testGameID,
		Status: models.PlayerStatusInGame,
	})
	s.Require().NoError(err)
	s.Len(nominees, 2)
}

func (s *RedisRepositoryTestSuite) TestIncrementVotesByUsername() {
	s.createRoster()

	p, err := s.repo.IncrementVotesByUsername(s.ctx, &IncrementVotesByUsernameInput{
		GameID:   testGameID,
		Username: "alice",
	})
	s.Require().NoError(err)
	s.Equal(1, p.Votes)

	p, err = s.repo.IncrementVotesByUsername(s.ctx, &IncrementVotesByUsernameInput{
		GameID:   testGameID,
		Username: "alice",
	})
	s.Require().NoError(err)
	s.Equal(2, p.Votes)

	_, err = s.repo.IncrementVotesByUsername(s.ctx, &IncrementVotesByUsernameInput{
		GameID:   testGameID,
		Username: "mallory",
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateVoted() {
	players := s.createRoster()

	p, err := s.repo.UpdateVoted(s.ctx, &UpdateVotedInput{
		GameID:   testGameID,
		PlayerID: players[0].ID,
		Voted:    true,
	})
	s.Require().NoError(err)
	s.True(p.IsVoted)
}

func (s *RedisRepositoryTestSuite) TestResetVotes() {
	players := s.createRoster()

	for _, name := range []string{"alice", "alice", "bob"} {
		_, err := s.repo.IncrementVotesByUsername(s.ctx, &IncrementVotesByUsernameInput{
			GameID:   testGameID,
			Username: name,
		})
		s.Require().NoError(err)
	}
	_, err := s.repo.UpdateVoted(s.ctx, &UpdateVotedInput{
		GameID:   testGameID,
		PlayerID: players[2].ID,
		Voted:    true,
	})
	s.Require().NoError(err)

	err = s.repo.ResetVotes(s.ctx, &ResetVotesInput{GameID: testGameID})
	s.Require().NoError(err)

	all, err := s.repo.GetPlayers(s.ctx, &GetPlayersInput{GameID: testGameID})
	s.Require().NoError(err)
	for _, p := range all {
		s.Equal(0, p.Votes)
		s.False(p.IsVoted)
	}
}

func (s *RedisRepositoryTestSuite) TestAllEligibleVoted() {
	players := s.createRoster()

	// Nominate alice and bob; carol and dave are the eligible voters
	_, err := s.repo.UpdatePlayersStatusByUserIDs(s.ctx, &UpdatePlayersStatusByUserIDsInput{
		GameID:  testGameID,
		UserIDs: []int64{1, 2},
		Status:  models.PlayerStatusInGame,
	})
	s.Require().NoError(err)

	done, err := s.repo.AllEligibleVoted(s.ctx, &AllEligibleVotedInput{GameID: testGameID})
	s.Require().NoError(err)
	s.False(done)

	_, err = s.repo.UpdateVoted(s.ctx, &UpdateVotedInput{
		GameID:   testGameID,
		PlayerID: players[2].ID,
		Voted:    true,
	})
	s.Require().NoError(err)

	done, err = s.repo.AllEligibleVoted(s.ctx, &AllEligibleVotedInput{GameID: testGameID})
	s.Require().NoError(err)
	s.False(done)

	_, err = s.repo.UpdateVoted(s.ctx, &UpdateVotedInput{
		GameID:   testGameID,
		PlayerID: players[3].ID,
		Voted:    true,
	})
	s.Require().NoError(err)

	done, err = s.repo.AllEligibleVoted(s.ctx, &AllEligibleVotedInput{GameID: testGameID})
	s.Require().NoError(err)
	s.True(done, "nominees do not vote, so carol and dave were the whole electorate")
}

func (s *RedisRepositoryTestSuite) TestAllEligibleVotedCountsLosers() {
	players := s.createRoster()

	_, err := s.repo.UpdatePlayersStatusByUserIDs(s.ctx, &UpdatePlayersStatusByUserIDsInput{
		GameID:  testGameID,
		UserIDs: []int64{1, 2},
		Status:  models.PlayerStatusInGame,
	})
	s.Require().NoError(err)
	_, err = s.repo.UpdatePlayerStatus(s.ctx, &UpdatePlayerStatusInput{
		GameID:   testGameID,
		PlayerID: players[2].ID,
		Status:   models.PlayerStatusLoser,
	})
	s.Require().NoError(err)

	_, err = s.repo.UpdateVoted(s.ctx, &UpdateVotedInput{
		GameID:   testGameID,
		PlayerID: players[3].ID,
		Voted:    true,
	})
	s.Require().NoError(err)

	// Eliminated carol still has a vote to cast
	done, err := s.repo.AllEligibleVoted(s.ctx, &AllEligibleVotedInput{GameID: testGameID})
	s.Require().NoError(err)
	s.False(done)

	_, err = s.repo.UpdateVoted(s.ctx, &UpdateVotedInput{
		GameID:   testGameID,
		PlayerID: players[2].ID,
		Voted:    true,
	})
	s.Require().NoError(err)

	done, err = s.repo.AllEligibleVoted(s.ctx, &AllEligibleVotedInput{GameID: testGameID})
	s.Require().NoError(err)
	s.True(done)
}

func (s *RedisRepositoryTestSuite) TestAllEligibleVotedNoElectorate() {
	done, err := s.repo.AllEligibleVoted(s.ctx, &AllEligibleVotedInput{GameID: testGameID})
	s.Require().NoError(err)
	s.False(done)
}

func (s *RedisRepositoryTestSuite) TestMaxAndMinVotes() {
	s.createRoster()

	_, err := s.repo.UpdatePlayersStatusByUserIDs(s.ctx, &UpdatePlayersStatusByUserIDsInput{
		GameID:  testGameID,
		UserIDs: []int64{1, 2},
		Status:  models.PlayerStatusInGame,
	})
	s.Require().NoError(err)

	for _, name := range []string{"alice", "alice", "bob"} {
		_, err := s.repo.IncrementVotesByUsername(s.ctx, &IncrementVotesByUsernameInput{
			GameID:   testGameID,
			Username: name,
		})
		s.Require().NoError(err)
	}

	top, err := s.repo.GetPlayerWithMaxVotes(s.ctx, &GetPlayerWithMaxVotesInput{GameID: testGameID})
	s.Require().NoError(err)
	s.Equal("alice", top.Username)
	s.Equal(2, top.Votes)

	low, err := s.repo.GetPlayerWithMinVotes(s.ctx, &GetPlayerWithMinVotesInput{GameID: testGameID})
	s.Require().NoError(err)
	s.Equal("bob", low.Username)
	s.Equal(1, low.Votes)
}

func (s *RedisRepositoryTestSuite) TestMaxVotesNoNominees() {
	s.createRoster()

	_, err := s.repo.GetPlayerWithMaxVotes(s.ctx, &GetPlayerWithMaxVotesInput{GameID: testGameID})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}
