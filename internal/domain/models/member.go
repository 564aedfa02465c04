// internal/domain/models/member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a person on exactly one leader's roster.
//
// LeaderID is a reference, not ownership: a member record outlives any
// changes to the leader once created. (leader_id, phone) is unique at
// creation time, checked read-then-insert.
type Member struct {
	ID           primitive.ObjectID `bson:"_id" json:"memberId"`
	LeaderID     primitive.ObjectID `bson:"leader_id" json:"leaderId"`
	Name         string             `bson:"name" json:"name"`
	Phone        string             `bson:"phone" json:"phone"`
	ClassStopped string             `bson:"class_stopped" json:"classStopped"`
	Residence    string             `bson:"residence" json:"residence"`
	AgeRange     string             `bson:"age_range" json:"ageRange"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
