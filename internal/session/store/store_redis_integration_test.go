//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"todolists/internal/session/models"
	"todolists/internal/session/store"
	"todolists/pkg/platform/sentinel"
	"todolists/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *store.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.store = store.NewRedis(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestSaveAndLoad() {
	ctx := context.Background()
	id := uuid.NewString()
	state := models.NewState()
	list, err := state.Lists.Create("Groceries")
	s.Require().NoError(err)
	_, err = list.AddTodo("Milk")
	s.Require().NoError(err)
	state.Flash.Success = "The list has been created."

	s.Require().NoError(s.store.Save(ctx, id, state, time.Hour))

	loaded, err := s.store.Load(ctx, id)
	s.Require().NoError(err)
	s.Equal(state, loaded)
}

func (s *RedisStoreSuite) TestTTLIsApplied() {
	ctx := context.Background()
	id := uuid.NewString()
	s.Require().NoError(s.store.Save(ctx, id, models.NewState(), time.Minute))

	ttl, err := s.redis.Client.TTL(ctx, "todolists:session:"+id).Result()
	s.Require().NoError(err)
	s.Greater(ttl, 50*time.Second)
	s.LessOrEqual(ttl, time.Minute)
}

func (s *RedisStoreSuite) TestMissingAndDeleted() {
	ctx := context.Background()
	id := uuid.NewString()

	_, err := s.store.Load(ctx, id)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.Save(ctx, id, models.NewState(), time.Hour))
	s.Require().NoError(s.store.Delete(ctx, id))
	_, err = s.store.Load(ctx, id)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisStoreSuite) TestHealth() {
	s.Require().NoError(s.store.Health(context.Background()))
}
