// internal/app/features/leaders/handler.go
package leaders

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	leaderstore "github.com/izo-kin/gcc-fellowship-backend/internal/app/store/leaders"
)

type Handler struct {
	Store          *leaderstore.Store
	PasscodeLength int
	Log            *zap.Logger
}

func NewHandler(db *mongo.Database, passcodeLength int, logger *zap.Logger) *Handler {
	return &Handler{
		Store:          leaderstore.New(db),
		PasscodeLength: passcodeLength,
		Log:            logger,
	}
}
