// internal/app/store/members/memberstore.go
package memberstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/izo-kin/gcc-fellowship-backend/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateMember = errors.New("member already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("members")}
}

// Create adds a member to a leader's roster. The (leader_id, phone)
// uniqueness check is read-then-insert, same race caveat as leader
// registration.
func (s *Store) Create(ctx context.Context, m models.Member) (models.Member, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{
		"leader_id": m.LeaderID,
		"phone":     m.Phone,
	})
	if err != nil {
		return models.Member{}, err
	}
	if n > 0 {
		return models.Member{}, ErrDuplicateMember
	}

	m.ID = primitive.NewObjectID()
	m.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// ListByLeader returns a leader's roster in encounter order.
func (s *Store) ListByLeader(ctx context.Context, leaderID primitive.ObjectID) ([]models.Member, error) {
	cur, err := s.c.Find(ctx, bson.M{"leader_id": leaderID})
	if err != nil {
		return nil, err
	}

	var out []models.Member
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
