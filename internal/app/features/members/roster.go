// internal/app/features/members/roster.go
package members

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	memberstore "github.com/izo-kin/gcc-fellowship-backend/internal/app/store/members"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/httpjson"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/timeouts"
	"github.com/izo-kin/gcc-fellowship-backend/internal/domain/models"
)

type addMemberRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	ClassStopped string `json:"classStopped"`
	Residence    string `json:"residence"`
	AgeRange     string `json:"ageRange"`
}

// HandleAddMember adds a member to the leader's roster. Duplicate
// (leader, phone) pairs are rejected.
// POST /leader/{leaderID}/add-member
func (h *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	leaderID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "leaderID"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid leader id")
		return
	}

	var req addMemberRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Phone == "" {
		httpjson.Error(w, http.StatusBadRequest, "name and phone are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	_, err = h.Store.Create(ctx, models.Member{
		LeaderID:     leaderID,
		Name:         req.Name,
		Phone:        req.Phone,
		ClassStopped: req.ClassStopped,
		Residence:    req.Residence,
		AgeRange:     req.AgeRange,
	})
	if err == memberstore.ErrDuplicateMember {
		httpjson.Error(w, http.StatusBadRequest, "Member already exists")
		return
	}
	if err != nil {
		h.Log.Error("member create failed",
			zap.String("leader_id", leaderID.Hex()),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.OK(w, map[string]interface{}{
		"ok":      true,
		"message": "Member added",
	})
}

// ServeMembers lists the leader's roster.
// GET /leader/{leaderID}/members
func (h *Handler) ServeMembers(w http.ResponseWriter, r *http.Request) {
	leaderID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "leaderID"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid leader id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	members, err := h.Store.ListByLeader(ctx, leaderID)
	if err != nil {
		h.Log.Error("member list failed",
			zap.String("leader_id", leaderID.Hex()),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if members == nil {
		members = []models.Member{}
	}

	httpjson.OK(w, map[string]interface{}{
		"ok":      true,
		"members": members,
	})
}
