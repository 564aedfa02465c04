// internal/domain/models/leader.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Leader is the person responsible for one fellowship.
//
// NOTE:
//   - Fellowship is the group's unique identifier across all leaders;
//     uniqueness is checked at creation time against fellowship_ci
//     (case/diacritics folded), not enforced by a unique index.
//   - PasscodeHash holds a bcrypt hash; the plaintext passcode is shown
//     exactly once, in the registration response.
type Leader struct {
	ID           primitive.ObjectID `bson:"_id" json:"leaderId"`
	Name         string             `bson:"name" json:"name"`
	Phone        string             `bson:"phone" json:"phone"`
	Fellowship   string             `bson:"fellowship" json:"fellowship"`
	FellowshipCI string             `bson:"fellowship_ci" json:"-"`
	Lineage      string             `bson:"lineage" json:"lineage"`
	PasscodeHash string             `bson:"passcode_hash" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
