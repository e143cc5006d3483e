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

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgres(s.postgres.Pool)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "attendees"))
}

func newPGTestAttendee(name string) models.Attendee {
	return models.Attendee{
		ID:                 uuid.NewString(),
		FullName:           name,
		Email:              "jane@example.com",
		Phone:              "5551234567",
		Profession:         "Engineer",
		BusinessChallenges: "hiring a first sales team",
		Address: models.Address{
			Street: "1 Main St",
			City:   "Springfield",
			State:  "IL",
			Zip:    "62704",
		},
	}
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	a := newPGTestAttendee("Jane Doe")
	s.Require().NoError(s.store.Put(ctx, a))

	got, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(a, got[0])
}

func (s *PostgresStoreSuite) TestUpsertLastWriteWins() {
	ctx := context.Background()
	a := newPGTestAttendee("First Writer")
	s.Require().NoError(s.store.Put(ctx, a))

	b := a
	b.FullName = "Second Writer"
	b.Email = ""
	s.Require().NoError(s.store.Put(ctx, b))

	got, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("Second Writer", got[0].FullName)
	s.Equal("", got[0].Email)
}

func (s *PostgresStoreSuite) TestDeleteIsIdempotent() {
	ctx := context.Background()
	a := newPGTestAttendee("Jane Doe")
	s.Require().NoError(s.store.Put(ctx, a))

	s.Require().NoError(s.store.Delete(ctx, a.ID))
	s.Require().NoError(s.store.Delete(ctx, a.ID))

	got, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Empty(got)
}
