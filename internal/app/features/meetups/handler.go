// internal/app/features/meetups/handler.go
package meetups

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	attendancestore "github.com/izo-kin/gcc-fellowship-backend/internal/app/store/attendance"
	leaderstore "github.com/izo-kin/gcc-fellowship-backend/internal/app/store/leaders"
)

// Handler serves the admin view over attendance facts: per-day meetup
// listings and the weekly missed-meetup report.
type Handler struct {
	Leaders    *leaderstore.Store
	Attendance *attendancestore.Store
	Now        func() time.Time
	Log        *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Leaders:    leaderstore.New(db),
		Attendance: attendancestore.New(db),
		Now:        time.Now,
		Log:        logger,
	}
}
