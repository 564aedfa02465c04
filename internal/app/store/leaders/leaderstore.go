// internal/app/store/leaders/leaderstore.go
package leaderstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/izo-kin/gcc-fellowship-backend/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateFellowship = errors.New("fellowship name already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("leaders")}
}

// Create registers a leader. The fellowship-name uniqueness check is
// read-then-insert with no transaction; two concurrent registrations
// under the same name can both pass the check. That race window is a
// documented property of the system, not something to close here.
func (s *Store) Create(ctx context.Context, l models.Leader) (models.Leader, error) {
	l.FellowshipCI = text.Fold(l.Fellowship)

	n, err := s.c.CountDocuments(ctx, bson.M{"fellowship_ci": l.FellowshipCI})
	if err != nil {
		return models.Leader{}, err
	}
	if n > 0 {
		return models.Leader{}, ErrDuplicateFellowship
	}

	l.ID = primitive.NewObjectID()
	l.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, l); err != nil {
		return models.Leader{}, err
	}
	return l, nil
}

// GetByID returns one leader, or mongo.ErrNoDocuments.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Leader, error) {
	var l models.Leader
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		return models.Leader{}, err
	}
	return l, nil
}

// GetByFellowship looks a leader up by fellowship name, folded the same
// way Create folds it.
func (s *Store) GetByFellowship(ctx context.Context, fellowship string) (models.Leader, error) {
	var l models.Leader
	err := s.c.FindOne(ctx, bson.M{"fellowship_ci": text.Fold(fellowship)}).Decode(&l)
	if err != nil {
		return models.Leader{}, err
	}
	return l, nil
}

// All returns the full leader directory in enumeration order. The order
// is whatever the store yields; callers must not rely on it being
// sorted.
func (s *Store) All(ctx context.Context) ([]models.Leader, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var out []models.Leader
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
