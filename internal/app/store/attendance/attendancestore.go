// internal/app/store/attendance/attendancestore.go
package attendancestore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/izo-kin/gcc-fellowship-backend/internal/domain/models"
)

// Store appends and reads attendance facts. Facts are append-only:
// nothing here updates or deletes, which is what makes concurrent
// recording safe without locks.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("attendance")}
}

// RecordDidNotMeet appends one did-not-meet fact for the day. There is
// no idempotence guarantee: recording twice produces two facts.
func (s *Store) RecordDidNotMeet(ctx context.Context, leaderID primitive.ObjectID, date string) error {
	fact := models.AttendanceFact{
		ID:         primitive.NewObjectID(),
		LeaderID:   leaderID,
		Date:       date,
		DidNotMeet: true,
	}
	_, err := s.c.InsertOne(ctx, fact)
	return err
}

// RecordPresence appends one present fact per member id, sequentially
// and in the given order. The writes are not atomic: the first failure
// aborts the loop and earlier facts stay committed, with no rollback.
func (s *Store) RecordPresence(ctx context.Context, leaderID primitive.ObjectID, date string, memberIDs []string) error {
	for _, memberID := range memberIDs {
		fact := models.AttendanceFact{
			ID:       primitive.NewObjectID(),
			LeaderID: leaderID,
			Date:     date,
			MemberID: memberID,
			Present:  true,
		}
		if _, err := s.c.InsertOne(ctx, fact); err != nil {
			return err
		}
	}
	return nil
}

// ListByDate returns all facts for one exact day.
func (s *Store) ListByDate(ctx context.Context, date string) ([]models.AttendanceFact, error) {
	cur, err := s.c.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, err
	}

	var out []models.AttendanceFact
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByLeaderAndDate returns one leader's facts for one day, the input
// to the tri-state status derivation.
func (s *Store) ListByLeaderAndDate(ctx context.Context, leaderID primitive.ObjectID, date string) ([]models.AttendanceFact, error) {
	cur, err := s.c.Find(ctx, bson.M{"leader_id": leaderID, "date": date})
	if err != nil {
		return nil, err
	}

	var out []models.AttendanceFact
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReportedSince returns the set of leader ids with at least one fact on
// or after fromDate (day strings compare lexicographically). A
// did-not-meet fact counts the same as a present fact: both mean the
// leader reported.
func (s *Store) ReportedSince(ctx context.Context, fromDate string) (map[primitive.ObjectID]struct{}, error) {
	cur, err := s.c.Find(ctx, bson.M{"date": bson.M{"$gte": fromDate}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reported := make(map[primitive.ObjectID]struct{})
	for cur.Next(ctx) {
		var f struct {
			LeaderID primitive.ObjectID `bson:"leader_id"`
		}
		if err := cur.Decode(&f); err != nil {
			continue
		}
		reported[f.LeaderID] = struct{}{}
	}
	return reported, cur.Err()
}
