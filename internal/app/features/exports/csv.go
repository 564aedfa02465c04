// internal/app/features/exports/csv.go
package exports

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/csvutil"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/httpjson"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/timeouts"
)

// ServeCSV exports a whole collection snapshot as a CSV download. The
// header row is the union of keys across the collection in first-seen
// order; an empty collection is a 400, not an empty file.
//
// The collection name is taken from the URL without an allow-list, so
// any collection in the database is exportable. That is the inherited
// behavior; widening the database's contents widens this surface (see
// the open question in DESIGN.md).
// GET /export/csv/{collection}
func (h *Handler) ServeCSV(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	if collection == "" {
		httpjson.Error(w, http.StatusBadRequest, "collection is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	cur, err := h.DB.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		h.Log.Error("csv export find failed",
			zap.String("collection", collection),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	// bson.D keeps document field order, which fixes the header order.
	var docs []bson.D
	if err := cur.All(ctx, &docs); err != nil {
		h.Log.Error("csv export decode failed",
			zap.String("collection", collection),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	header, rows, err := csvutil.Flatten(docs)
	if err == csvutil.ErrNoRecords {
		httpjson.Error(w, http.StatusBadRequest, "no records to export")
		return
	}
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := collection + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))

	// UTF-8 BOM for Excel
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		h.Log.Error("CSV write failed (BOM)", zap.Error(err))
		return
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		h.Log.Error("CSV write failed (header)", zap.Error(err))
		return
	}
	for _, row := range rows {
		for i, cell := range row {
			row[i] = csvutil.Sanitize(cell)
		}
		if err := cw.Write(row); err != nil {
			h.Log.Error("CSV write failed (row)", zap.Error(err))
			return
		}
	}

	h.Log.Info("collection CSV exported",
		zap.String("collection", collection),
		zap.Int("rows", len(rows)))
}
