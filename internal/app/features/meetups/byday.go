// internal/app/features/meetups/byday.go
package meetups

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/httpjson"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/timeouts"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/week"
	"github.com/izo-kin/gcc-fellowship-backend/internal/domain/models"
)

// ServeByDate lists every attendance fact recorded for one exact day.
// GET /admin/meetups/{date}
func (h *Handler) ServeByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if !week.ValidDay(date) {
		httpjson.Error(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	facts, err := h.Attendance.ListByDate(ctx, date)
	if err != nil {
		h.Log.Error("meetups by date failed", zap.String("date", date), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if facts == nil {
		facts = []models.AttendanceFact{}
	}

	httpjson.OK(w, map[string]interface{}{
		"ok":      true,
		"meetups": facts,
	})
}
