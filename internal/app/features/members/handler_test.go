package members_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/izo-kin/gcc-fellowship-backend/internal/app/features/members"
	"github.com/izo-kin/gcc-fellowship-backend/internal/testutil"
)

func addMember(t *testing.T, h *members.Handler, leaderID string, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/leader/"+leaderID+"/add-member", bytes.NewReader(buf))
	req = testutil.WithChiURLParam(req, "leaderID", leaderID)
	rec := httptest.NewRecorder()
	h.HandleAddMember(rec, req)
	return rec
}

func TestHandleAddMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := members.NewHandler(db, zap.NewNop())
	leader := fixtures.CreateLeader(ctx, "Roster Fellowship")

	rec := addMember(t, h, leader.ID.Hex(), map[string]string{
		"name":         "John Okello",
		"phone":        "0704444444",
		"classStopped": "S6",
		"residence":    "Ntinda",
		"ageRange":     "18-25",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	roster, err := h.Store.ListByLeader(ctx, leader.ID)
	if err != nil {
		t.Fatalf("roster lookup failed: %v", err)
	}
	if len(roster) != 1 {
		t.Fatalf("roster has %d members, want 1", len(roster))
	}
	if roster[0].Name != "John Okello" || roster[0].Residence != "Ntinda" {
		t.Errorf("stored member = %+v", roster[0])
	}
}

func TestHandleAddMember_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := members.NewHandler(db, zap.NewNop())
	leader := fixtures.CreateLeader(ctx, "Dup Fellowship")

	body := map[string]string{"name": "John Okello", "phone": "0705555555"}
	if rec := addMember(t, h, leader.ID.Hex(), body); rec.Code != http.StatusOK {
		t.Fatalf("first add failed: %d %s", rec.Code, rec.Body.String())
	}

	rec := addMember(t, h, leader.ID.Hex(), body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Member already exists") {
		t.Errorf("body = %s, want duplicate message", rec.Body.String())
	}
}

func TestHandleAddMember_InvalidLeaderID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := members.NewHandler(db, zap.NewNop())

	rec := addMember(t, h, "not-a-hex-id", map[string]string{
		"name":  "John Okello",
		"phone": "0706666666",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for malformed leader id", rec.Code)
	}
}

func TestServeMembers_EmptyRoster(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := members.NewHandler(db, zap.NewNop())
	leader := fixtures.CreateLeader(ctx, "Empty Fellowship")

	req := httptest.NewRequest(http.MethodGet, "/leader/"+leader.ID.Hex()+"/members", nil)
	req = testutil.WithChiURLParam(req, "leaderID", leader.ID.Hex())
	rec := httptest.NewRecorder()
	h.ServeMembers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Members []json.RawMessage `json:"members"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Members == nil {
		t.Error("members is null, want []")
	}
}

func TestServeMembers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := members.NewHandler(db, zap.NewNop())
	leader := fixtures.CreateLeader(ctx, "Listed Fellowship")
	other := fixtures.CreateLeader(ctx, "Other Fellowship")

	fixtures.CreateMember(ctx, leader.ID, "A Member", "0707777777")
	fixtures.CreateMember(ctx, other.ID, "B Member", "0708888888")

	req := httptest.NewRequest(http.MethodGet, "/leader/"+leader.ID.Hex()+"/members", nil)
	req = testutil.WithChiURLParam(req, "leaderID", leader.ID.Hex())
	rec := httptest.NewRecorder()
	h.ServeMembers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Members []struct {
			Name string `json:"name"`
		} `json:"members"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Members) != 1 {
		t.Fatalf("got %d members, want roster scoped to one leader", len(resp.Members))
	}
	if resp.Members[0].Name != "A Member" {
		t.Errorf("member = %+v", resp.Members[0])
	}
}
