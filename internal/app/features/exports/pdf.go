// internal/app/features/exports/pdf.go
package exports

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/httpjson"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/timeouts"
	"github.com/izo-kin/gcc-fellowship-backend/internal/domain/models"
)

// ServeMembersPDF renders one leader's roster as a PDF download: a
// centered title, then one numbered line per member in encounter order.
// Page breaks are the rendering library's concern.
// GET /export/pdf/members/{leaderID}
func (h *Handler) ServeMembersPDF(w http.ResponseWriter, r *http.Request) {
	leaderID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "leaderID"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid leader id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	members, err := h.Members.ListByLeader(ctx, leaderID)
	if err != nil {
		h.Log.Error("pdf export member fetch failed",
			zap.String("leader_id", leaderID.Hex()),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="members_%s.pdf"`, leaderID.Hex()))

	if err := renderMemberRoster(w, leaderID.Hex(), members); err != nil {
		// Headers are already gone; all we can do is log.
		h.Log.Error("pdf render failed",
			zap.String("leader_id", leaderID.Hex()),
			zap.Error(err))
		return
	}

	h.Log.Info("member roster PDF exported",
		zap.String("leader_id", leaderID.Hex()),
		zap.Int("members", len(members)))
}

// renderMemberRoster writes the roster PDF to w.
func renderMemberRoster(w io.Writer, leaderID string, members []models.Member) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Members for Leader: %s", leaderID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	for i, m := range members {
		line := fmt.Sprintf("%d. %s | Phone: %s | Class: %s | Residence: %s | Age: %s",
			i+1, m.Name, m.Phone, m.ClassStopped, m.Residence, m.AgeRange)
		pdf.MultiCell(0, 7, line, "", "L", false)
	}

	return pdf.Output(w)
}
