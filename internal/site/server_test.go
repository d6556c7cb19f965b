package site

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aimaverick/clarity/internal/delivery"
	"github.com/aimaverick/clarity/internal/report"
	"github.com/aimaverick/clarity/internal/store"
)

type fakeMailer struct {
	err  error
	sent []delivery.Email
}

func (f *fakeMailer) Send(_ context.Context, msg delivery.Email) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type failingProvider struct{}

func (failingProvider) Complete(context.Context, string) (string, error) {
	return "", errors.New("provider down")
}

type fakePDF struct{ blob []byte }

func (f fakePDF) Render(context.Context, string) ([]byte, error) { return f.blob, nil }

type harness struct {
	handler http.Handler
	mailer  *fakeMailer
	store   *store.MemoryStore
}

func newHarness(t *testing.T, mailer *fakeMailer) *harness {
	t.Helper()
	st := store.NewMemoryStore()
	composer := report.NewComposer(failingProvider{}, report.Config{})
	svc := delivery.NewService(composer, mailer, st)
	return &harness{
		handler: NewServer(svc, composer, st, fakePDF{blob: []byte("%PDF-1.4 stub")}, t.TempDir()),
		mailer:  mailer,
		store:   st,
	}
}

func (h *harness) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.handler.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding response %q: %v", rr.Body.String(), err)
	}
	return payload
}

func TestLeadSubmissionSuccessWithFailingProvider(t *testing.T) {
	h := newHarness(t, &fakeMailer{})

	rr := h.do(t, http.MethodPost, "/api/lead-submission",
		`{"fullName":"Jane Doe","email":"jane@example.com","country":"Nigeria","businessStage":"Exploring"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	payload := decode(t, rr)
	if payload["success"] != true {
		t.Fatalf("success = %v", payload["success"])
	}
	if payload["message"] != "Report generated and sent successfully" {
		t.Errorf("message = %v", payload["message"])
	}
	userID, _ := payload["userId"].(string)
	if userID == "" {
		t.Fatal("missing userId")
	}
	if _, ok := h.store.Get(userID); !ok {
		t.Fatal("submission not retrievable under userId")
	}

	if len(h.mailer.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(h.mailer.sent))
	}
	// Provider is down, so the email carries the deterministic fallback.
	for _, want := range []string{"AI Opportunities Explorer Report", "Mobile-first AI solutions"} {
		if !strings.Contains(h.mailer.sent[0].HTML, want) {
			t.Errorf("email missing %q", want)
		}
	}
}

func TestLeadSubmissionMissingFields(t *testing.T) {
	h := newHarness(t, &fakeMailer{})

	for _, body := range []string{
		`{}`,
		`{"fullName":"Jane Doe"}`,
		`{"fullName":"Jane Doe","email":"jane@example.com","country":"Nigeria"}`,
		`{"fullName":"  ","email":"jane@example.com","country":"Nigeria","businessStage":"Exploring"}`,
		`not json`,
	} {
		rr := h.do(t, http.MethodPost, "/api/lead-submission", body)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rr.Code)
			continue
		}
		payload := decode(t, rr)
		if payload["message"] != "All fields are required" {
			t.Errorf("body %q: message = %v", body, payload["message"])
		}
	}
	if len(h.mailer.sent) != 0 {
		t.Fatalf("rejected submissions sent %d emails", len(h.mailer.sent))
	}
	if h.store.Len() != 0 {
		t.Fatalf("rejected submissions stored %d records", h.store.Len())
	}
}

func TestLeadSubmissionUnknownCountry(t *testing.T) {
	h := newHarness(t, &fakeMailer{})

	rr := h.do(t, http.MethodPost, "/api/lead-submission",
		`{"fullName":"Jane Doe","email":"jane@example.com","country":"Atlantis","businessStage":"Exploring"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if len(h.mailer.sent) != 0 || h.store.Len() != 0 {
		t.Fatal("invalid submission produced side effects")
	}
}

func TestLeadSubmissionMailFailure(t *testing.T) {
	h := newHarness(t, &fakeMailer{err: errors.New("smtp refused")})

	rr := h.do(t, http.MethodPost, "/api/lead-submission",
		`{"fullName":"Jane Doe","email":"jane@example.com","country":"Nigeria","businessStage":"Exploring"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	payload := decode(t, rr)
	if payload["message"] != "Error processing your request. Please try again." {
		t.Errorf("message = %v", payload["message"])
	}
	// The submission was accepted before the send, so it stays stored.
	if h.store.Len() != 1 {
		t.Fatalf("store holds %d submissions, want 1", h.store.Len())
	}
}

func TestDownloadReport(t *testing.T) {
	h := newHarness(t, &fakeMailer{})

	rr := h.do(t, http.MethodPost, "/api/download-report", `{"email":"reader@example.com"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	payload := decode(t, rr)
	if payload["message"] != "Report sent successfully" {
		t.Errorf("message = %v", payload["message"])
	}
	if len(h.mailer.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(h.mailer.sent))
	}
	if h.store.Len() != 0 {
		t.Fatal("download path must not store submissions")
	}

	rr = h.do(t, http.MethodPost, "/api/download-report", `{"email":"  "}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("empty email: status = %d, want 400", rr.Code)
	}
	if msg := decode(t, rr)["message"]; msg != "Email is required" {
		t.Errorf("message = %v", msg)
	}
}

func TestAssessmentResults(t *testing.T) {
	h := newHarness(t, &fakeMailer{})

	rr := h.do(t, http.MethodPost, "/api/lead-submission",
		`{"fullName":"Jane Doe","email":"jane@example.com","country":"Nigeria","businessStage":"Exploring"}`)
	userID := decode(t, rr)["userId"].(string)

	rr = h.do(t, http.MethodGet, "/api/assessment-results/"+userID, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	payload := decode(t, rr)
	data, ok := payload["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data object in %v", payload)
	}
	if data["fullName"] != "Jane Doe" || data["country"] != "Nigeria" || data["businessStage"] != "Exploring" {
		t.Errorf("unexpected data payload: %v", data)
	}

	rr = h.do(t, http.MethodGet, "/api/assessment-results/nope", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown id: status = %d, want 404", rr.Code)
	}
	if msg := decode(t, rr)["message"]; msg != "Assessment data not found" {
		t.Errorf("message = %v", msg)
	}
}

func TestAssessmentResultsPDF(t *testing.T) {
	h := newHarness(t, &fakeMailer{})

	rr := h.do(t, http.MethodPost, "/api/lead-submission",
		`{"fullName":"Jane Doe","email":"jane@example.com","country":"Nigeria","businessStage":"Exploring"}`)
	userID := decode(t, rr)["userId"].(string)

	rr = h.do(t, http.MethodGet, "/api/assessment-results/"+userID+"/pdf", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(rr.Body.String(), "%PDF") {
		t.Errorf("unexpected body prefix %q", rr.Body.String()[:4])
	}

	rr = h.do(t, http.MethodGet, "/api/assessment-results/nope/pdf", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown id: status = %d, want 404", rr.Code)
	}
}

func TestHealth(t *testing.T) {
	h := newHarness(t, &fakeMailer{})

	rr := h.do(t, http.MethodGet, "/api/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	payload := decode(t, rr)
	if payload["success"] != true || payload["message"] != "Server is running" {
		t.Errorf("unexpected payload %v", payload)
	}
	if _, ok := payload["timestamp"].(string); !ok {
		t.Error("missing timestamp")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newHarness(t, &fakeMailer{})

	for path, method := range map[string]string{
		"/api/lead-submission":     http.MethodGet,
		"/api/download-report":     http.MethodGet,
		"/api/health":              http.MethodPost,
		"/api/assessment-results/x": http.MethodPost,
	} {
		rr := h.do(t, method, path, "")
		if rr.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: status = %d, want 405", method, path, rr.Code)
		}
	}
}
