// internal/app/features/attendance/record.go
package attendance

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/httpjson"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/timeouts"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/week"
)

type recordRequest struct {
	PresentMemberIDs []string `json:"presentMemberIds"`
	DidNotMeet       bool     `json:"didNotMeet"`
}

// HandleRecord records one meeting-day outcome for the leader: either a
// did-not-meet marker or one present fact per submitted member id.
//
// The date is always the server's own today, never taken from the
// client, so attendance cannot be backdated. Member ids are written as
// submitted without a directory lookup; see the trust-boundary note in
// DESIGN.md before adding validation here.
// POST /leader/{leaderID}/attendance
func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	leaderID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "leaderID"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid leader id")
		return
	}

	var req recordRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	today := week.DayString(time.Now())

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if req.DidNotMeet {
		if err := h.Store.RecordDidNotMeet(ctx, leaderID, today); err != nil {
			h.Log.Error("record did-not-meet failed",
				zap.String("leader_id", leaderID.Hex()),
				zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpjson.OK(w, map[string]interface{}{
			"ok":      true,
			"message": "Marked as did not meet",
		})
		return
	}

	if len(req.PresentMemberIDs) == 0 {
		httpjson.Error(w, http.StatusBadRequest, "presentMemberIds or didNotMeet is required")
		return
	}

	// Sequential, non-atomic: a failure partway leaves the earlier
	// facts committed and surfaces as a plain 500.
	if err := h.Store.RecordPresence(ctx, leaderID, today, req.PresentMemberIDs); err != nil {
		h.Log.Error("record presence failed",
			zap.String("leader_id", leaderID.Hex()),
			zap.Int("member_count", len(req.PresentMemberIDs)),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.OK(w, map[string]interface{}{
		"ok":      true,
		"message": "Attendance recorded",
	})
}
