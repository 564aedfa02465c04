// internal/app/features/attendance/handler.go
package attendance

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	attendancestore "github.com/izo-kin/gcc-fellowship-backend/internal/app/store/attendance"
)

type Handler struct {
	Store *attendancestore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: attendancestore.New(db),
		Log:   logger,
	}
}
