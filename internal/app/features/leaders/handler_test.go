package leaders_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/izo-kin/gcc-fellowship-backend/internal/app/features/leaders"
	"github.com/izo-kin/gcc-fellowship-backend/internal/app/system/passcode"
	"github.com/izo-kin/gcc-fellowship-backend/internal/testutil"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleRegister(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := leaders.NewHandler(db, passcode.DefaultLength, zap.NewNop())

	rec := postJSON(t, h.HandleRegister, "/register-leader", map[string]string{
		"name":       "Grace Akello",
		"phone":      "0701234567",
		"fellowship": "Kampala Central",
		"lineage":    "north",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		OK       bool   `json:"ok"`
		LeaderID string `json:"leaderId"`
		Passcode string `json:"passcode"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.OK {
		t.Error("response ok = false")
	}
	if resp.LeaderID == "" {
		t.Error("response has no leaderId")
	}
	if len(resp.Passcode) != passcode.DefaultLength {
		t.Errorf("passcode length = %d, want %d", len(resp.Passcode), passcode.DefaultLength)
	}

	// The stored record carries only the hash, never the plaintext.
	ctx, cancel := testutil.TestContext()
	defer cancel()
	stored, err := h.Store.GetByFellowship(ctx, "Kampala Central")
	if err != nil {
		t.Fatalf("stored leader lookup failed: %v", err)
	}
	if stored.PasscodeHash == resp.Passcode {
		t.Error("passcode stored in plaintext")
	}
	if !passcode.Verify(stored.PasscodeHash, resp.Passcode) {
		t.Error("stored hash does not verify against the returned passcode")
	}
}

func TestHandleRegister_DuplicateFellowship(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := leaders.NewHandler(db, passcode.DefaultLength, zap.NewNop())

	body := map[string]string{
		"name":       "Grace Akello",
		"phone":      "0701234567",
		"fellowship": "Mbarara West",
	}
	if rec := postJSON(t, h.HandleRegister, "/register-leader", body); rec.Code != http.StatusOK {
		t.Fatalf("first registration failed: %d %s", rec.Code, rec.Body.String())
	}

	// Same fellowship with different casing is still a duplicate.
	body["fellowship"] = "MBARARA WEST"
	rec := postJSON(t, h.HandleRegister, "/register-leader", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Fellowship name already exists") {
		t.Errorf("body = %s, want duplicate message", rec.Body.String())
	}
}

func TestHandleRegister_MissingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := leaders.NewHandler(db, passcode.DefaultLength, zap.NewNop())

	rec := postJSON(t, h.HandleRegister, "/register-leader", map[string]string{
		"name":  "No Fellowship",
		"phone": "0700000001",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when fellowship is missing", rec.Code)
	}
}

func TestHandleLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := leaders.NewHandler(db, passcode.DefaultLength, zap.NewNop())

	rec := postJSON(t, h.HandleRegister, "/register-leader", map[string]string{
		"name":       "Login Leader",
		"phone":      "0702222222",
		"fellowship": "Login Fellowship",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("registration failed: %d %s", rec.Code, rec.Body.String())
	}
	var reg struct {
		Passcode string `json:"passcode"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &reg); err != nil {
		t.Fatalf("failed to decode registration response: %v", err)
	}

	rec = postJSON(t, h.HandleLogin, "/leader-login", map[string]string{
		"fellowship": "login fellowship",
		"passcode":   reg.Passcode,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		OK     bool `json:"ok"`
		Leader struct {
			Fellowship   string `json:"fellowship"`
			PasscodeHash string `json:"passcodeHash"`
		} `json:"leader"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if resp.Leader.Fellowship != "Login Fellowship" {
		t.Errorf("leader fellowship = %q, want original casing", resp.Leader.Fellowship)
	}
	if resp.Leader.PasscodeHash != "" {
		t.Error("login response leaks the passcode hash")
	}
}

func TestHandleLogin_WrongPasscode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := leaders.NewHandler(db, passcode.DefaultLength, zap.NewNop())

	if rec := postJSON(t, h.HandleRegister, "/register-leader", map[string]string{
		"name":       "Login Leader",
		"phone":      "0703333333",
		"fellowship": "Wrong Code Fellowship",
	}); rec.Code != http.StatusOK {
		t.Fatalf("registration failed: %d %s", rec.Code, rec.Body.String())
	}

	rec := postJSON(t, h.HandleLogin, "/leader-login", map[string]string{
		"fellowship": "Wrong Code Fellowship",
		"passcode":   "not-the-passcode",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for wrong passcode", rec.Code)
	}
}

func TestHandleLogin_UnknownFellowship(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := leaders.NewHandler(db, passcode.DefaultLength, zap.NewNop())

	rec := postJSON(t, h.HandleLogin, "/leader-login", map[string]string{
		"fellowship": "No Such Fellowship",
		"passcode":   "whatever",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for unknown fellowship", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid credentials") {
		t.Errorf("body = %s, want the same message as a wrong passcode", rec.Body.String())
	}
}

func TestServeStatus(t *testing.T) {
	h := &leaders.Handler{Log: zap.NewNop()}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "running") {
		t.Errorf("banner = %q, want liveness text", rec.Body.String())
	}
}
