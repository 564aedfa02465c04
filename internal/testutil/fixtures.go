package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/izo-kin/gcc-fellowship-backend/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateLeader inserts a leader with the given fellowship name and a
// stub passcode hash, returning the record with its generated ID.
func (f *Fixtures) CreateLeader(ctx context.Context, fellowship string) models.Leader {
	f.t.Helper()

	l := models.Leader{
		ID:           primitive.NewObjectID(),
		Name:         "Test Leader",
		Phone:        "0700000000",
		Fellowship:   fellowship,
		FellowshipCI: text.Fold(fellowship),
		Lineage:      "test-lineage",
		PasscodeHash: "$2a$10$test.hash.placeholder.not.a.real.hash.value",
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := f.db.Collection("leaders").InsertOne(ctx, l); err != nil {
		f.t.Fatalf("failed to create test leader: %v", err)
	}
	return l
}

// CreateMember inserts a member on the given leader's roster.
func (f *Fixtures) CreateMember(ctx context.Context, leaderID primitive.ObjectID, name, phone string) models.Member {
	f.t.Helper()

	m := models.Member{
		ID:           primitive.NewObjectID(),
		LeaderID:     leaderID,
		Name:         name,
		Phone:        phone,
		ClassStopped: "S4",
		Residence:    "Test Town",
		AgeRange:     "18-25",
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := f.db.Collection("members").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test member: %v", err)
	}
	return m
}

// CreatePresenceFact inserts one present fact for a leader, member and day.
func (f *Fixtures) CreatePresenceFact(ctx context.Context, leaderID primitive.ObjectID, memberID, date string) models.AttendanceFact {
	f.t.Helper()

	fact := models.AttendanceFact{
		ID:       primitive.NewObjectID(),
		LeaderID: leaderID,
		Date:     date,
		MemberID: memberID,
		Present:  true,
	}

	if _, err := f.db.Collection("attendance").InsertOne(ctx, fact); err != nil {
		f.t.Fatalf("failed to create test attendance fact: %v", err)
	}
	return fact
}

// CreateDidNotMeetFact inserts one did-not-meet fact for a leader and day.
func (f *Fixtures) CreateDidNotMeetFact(ctx context.Context, leaderID primitive.ObjectID, date string) models.AttendanceFact {
	f.t.Helper()

	fact := models.AttendanceFact{
		ID:         primitive.NewObjectID(),
		LeaderID:   leaderID,
		Date:       date,
		DidNotMeet: true,
	}

	if _, err := f.db.Collection("attendance").InsertOne(ctx, fact); err != nil {
		f.t.Fatalf("failed to create test attendance fact: %v", err)
	}
	return fact
}
