// internal/app/features/members/handler.go
package members

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	memberstore "github.com/izo-kin/gcc-fellowship-backend/internal/app/store/members"
)

type Handler struct {
	Store *memberstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: memberstore.New(db),
		Log:   logger,
	}
}
