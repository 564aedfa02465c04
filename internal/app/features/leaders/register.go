// internal/app/features/leaders/register.go
package leaders

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	leaderstore "github.com/izo-kin/gcc-fellowship-backend/internal/app/store/leaders"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/httpjson"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/passcode"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/timeouts"
	"github.com/izo-kin/gcc-fellowship-backend/internal/domain/models"
)

type registerRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Fellowship string `json:"fellowship"`
	Lineage    string `json:"lineage"`
}

// ServeStatus answers the root path with a short liveness banner.
// GET /
func (h *Handler) ServeStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("GCC Fellowship Backend is running"))
}

// HandleRegister registers a new fellowship leader and returns the
// generated passcode. The passcode appears in this response and nowhere
// else; only its bcrypt hash is stored.
// POST /register-leader
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Fellowship = strings.TrimSpace(req.Fellowship)
	req.Lineage = strings.TrimSpace(req.Lineage)
	if req.Name == "" || req.Phone == "" || req.Fellowship == "" {
		httpjson.Error(w, http.StatusBadRequest, "name, phone and fellowship are required")
		return
	}

	plain, err := passcode.Generate(h.PasscodeLength)
	if err != nil {
		h.Log.Error("passcode generation failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	hash, err := passcode.Hash(plain)
	if err != nil {
		h.Log.Error("passcode hash failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, models.Leader{
		Name:         req.Name,
		Phone:        req.Phone,
		Fellowship:   req.Fellowship,
		Lineage:      req.Lineage,
		PasscodeHash: hash,
	})
	if err == leaderstore.ErrDuplicateFellowship {
		httpjson.Error(w, http.StatusBadRequest, "Fellowship name already exists")
		return
	}
	if err != nil {
		h.Log.Error("leader create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Log.Info("leader registered",
		zap.String("leader_id", created.ID.Hex()),
		zap.String("fellowship", created.Fellowship))

	httpjson.OK(w, map[string]interface{}{
		"ok":       true,
		"message":  "Leader registered",
		"leaderId": created.ID.Hex(),
		"passcode": plain,
	})
}
