// internal/app/features/exports/handler.go
package exports

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	memberstore "github.com/izo-kin/gcc-fellowship-backend/internal/app/store/members"
)

// Handler renders collection snapshots as downloadable CSV and member
// rosters as PDF. Rendering happens here; the stores and database only
// supply the records.
type Handler struct {
	DB      *mongo.Database
	Members *memberstore.Store
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Members: memberstore.New(db),
		Log:     logger,
	}
}
