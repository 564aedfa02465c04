// internal/app/features/meetups/missed.go
package meetups

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/httpjson"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/timeouts"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/week"
	"github.com/izo-kin/gcc-fellowship-backend/internal/domain/models"
)

// MissedFellowship is one directory entry with no attendance fact in the
// weekly window.
type MissedFellowship struct {
	LeaderID   string `json:"leaderId"`
	Fellowship string `json:"fellowship"`
}

// ServeMissed reports the fellowships with zero attendance facts since
// Monday of the current week. A did-not-meet fact counts as having
// reported, so this flags silence, not absence: it cannot tell "forgot
// to report" from "has not met yet this week".
// GET /admin/missed-meetups
func (h *Handler) ServeMissed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	leaders, err := h.Leaders.All(ctx)
	if err != nil {
		h.Log.Error("leader directory fetch failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	monday := week.DayString(week.MondayOf(h.Now()))
	reported, err := h.Attendance.ReportedSince(ctx, monday)
	if err != nil {
		h.Log.Error("attendance window scan failed",
			zap.String("from", monday),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	missed := missedFellowships(leaders, reported)

	h.Log.Info("missed-meetup report",
		zap.String("week_of", monday),
		zap.Int("leaders", len(leaders)),
		zap.Int("missed", len(missed)))

	httpjson.OK(w, map[string]interface{}{
		"ok":                true,
		"missedFellowships": missed,
	})
}

// missedFellowships is the set difference AllLeaders − ReportedLeaders,
// in directory enumeration order. The order is implementation-defined,
// not contractual.
func missedFellowships(leaders []models.Leader, reported map[primitive.ObjectID]struct{}) []MissedFellowship {
	missed := []MissedFellowship{}
	for _, l := range leaders {
		if _, ok := reported[l.ID]; ok {
			continue
		}
		missed = append(missed, MissedFellowship{
			LeaderID:   l.ID.Hex(),
			Fellowship: l.Fellowship,
		})
	}
	return missed
}
