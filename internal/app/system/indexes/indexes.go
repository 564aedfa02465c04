// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Errors are aggregated so every problem is visible and startup can fail
fast.

All indexes here are query indexes only. Fellowship-name and member-phone
uniqueness is a read-then-insert check in the stores; the race window
that leaves open is a documented property of the system, so no unique
index papers over it.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureLeaders(ctx, db); err != nil {
		problems = append(problems, "leaders: "+err.Error())
	}
	if err := ensureMembers(ctx, db); err != nil {
		problems = append(problems, "members: "+err.Error())
	}
	if err := ensureAttendance(ctx, db); err != nil {
		problems = append(problems, "attendance: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string
	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}
		created, err := coll.Indexes().CreateOne(ctx, m)
		if err != nil {
			// Same keys under a different name from an earlier deploy:
			// keep the existing index rather than failing startup.
			if strings.Contains(err.Error(), "IndexOptionsConflict") {
				zap.L().Warn("reusing conflicting index",
					zap.String("collection", coll.Name()),
					zap.String("name", name),
					zap.Error(err))
				continue
			}
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", created))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func ensureLeaders(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("leaders")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Duplicate check at registration and login lookup both hit fellowship_ci.
		{
			Keys:    bson.D{{Key: "fellowship_ci", Value: 1}},
			Options: options.Index().SetName("idx_leaders_fellowshipci"),
		},
	})
}

func ensureMembers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("members")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Roster listing and the (leader, phone) duplicate check.
		{
			Keys:    bson.D{{Key: "leader_id", Value: 1}, {Key: "phone", Value: 1}},
			Options: options.Index().SetName("idx_members_leader_phone"),
		},
	})
}

func ensureAttendance(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("attendance")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Weekly window scan: date >= Monday.
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName("idx_attendance_date"),
		},
		// Per-leader day lookups.
		{
			Keys:    bson.D{{Key: "leader_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("idx_attendance_leader_date"),
		},
	})
}
