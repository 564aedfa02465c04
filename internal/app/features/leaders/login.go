// internal/app/features/leaders/login.go
package leaders

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/httpjson"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/passcode"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/timeouts"
)

type loginRequest struct {
	Fellowship string `json:"fellowship"`
	Passcode   string `json:"passcode"`
}

// HandleLogin checks a fellowship/passcode pair and returns the leader
// record on success. A wrong fellowship and a wrong passcode produce the
// same 401 so the response does not reveal which part failed.
// POST /leader-login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Fellowship = strings.TrimSpace(req.Fellowship)
	if req.Fellowship == "" || req.Passcode == "" {
		httpjson.Error(w, http.StatusBadRequest, "fellowship and passcode are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	leader, err := h.Store.GetByFellowship(ctx, req.Fellowship)
	if err == mongo.ErrNoDocuments {
		httpjson.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		h.Log.Error("leader lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !passcode.Verify(leader.PasscodeHash, req.Passcode) {
		httpjson.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	httpjson.OK(w, map[string]interface{}{
		"ok":     true,
		"leader": leader,
	})
}
