//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"summit-connect/internal/attendee/models"
	"summit-connect/internal/attendee/store"
	"summit-connect/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *store.Redis
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = store.NewRedis(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func newRedisTestAttendee(name string) models.Attendee {
	return models.Attendee{
		ID:                 uuid.NewString(),
		FullName:           name,
		Phone:              "5551234567",
		Profession:         "Engineer",
		BusinessChallenges: "finding reliable wholesale suppliers",
		Address: models.Address{
			Street: "1 Main St",
			City:   "Springfield",
			State:  "IL",
			Zip:    "62704",
		},
	}
}

func (s *RedisStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	a := newRedisTestAttendee("Jane Doe")
	s.Require().NoError(s.store.Put(ctx, a))

	got, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(a, got[0])
}

func (s *RedisStoreSuite) TestListEmpty() {
	got, err := s.store.List(context.Background())
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *RedisStoreSuite) TestUpsertLastWriteWins() {
	ctx := context.Background()
	a := newRedisTestAttendee("First Writer")
	s.Require().NoError(s.store.Put(ctx, a))

	b := a
	b.FullName = "Second Writer"
	s.Require().NoError(s.store.Put(ctx, b))

	got, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("Second Writer", got[0].FullName)
}

func (s *RedisStoreSuite) TestDeleteIsIdempotent() {
	ctx := context.Background()
	a := newRedisTestAttendee("Jane Doe")
	s.Require().NoError(s.store.Put(ctx, a))

	s.Require().NoError(s.store.Delete(ctx, a.ID))
	s.Require().NoError(s.store.Delete(ctx, a.ID))

	got, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Empty(got)
}

// TestListSkipsForeignValues seeds a non-JSON value under the attendee prefix;
// List must skip it rather than fail the whole read.
func (s *RedisStoreSuite) TestListSkipsForeignValues() {
	ctx := context.Background()
	s.Require().NoError(s.redis.Client.Set(ctx, store.KeyPrefix+"junk", "not json", 0).Err())

	a := newRedisTestAttendee("Jane Doe")
	s.Require().NoError(s.store.Put(ctx, a))

	got, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(a.ID, got[0].ID)
}
