// Package site exposes the marketing site's HTTP surface: the lead and
// download endpoints, assessment lookup, health, and static assets.
package site

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aimaverick/clarity/internal/delivery"
	"github.com/aimaverick/clarity/internal/report"
	"github.com/aimaverick/clarity/internal/store"
)

// PDFRenderer turns report markdown into a PDF document.
type PDFRenderer interface {
	Render(ctx context.Context, markdown string) ([]byte, error)
}

type Server struct {
	delivery *delivery.Service
	composer *report.Composer
	store    store.Store
	pdf      PDFRenderer
	webDir   string
}

// NewServer wires the JSON API and static serving. pdf may be nil, which
// disables the PDF download route with a 404.
func NewServer(svc *delivery.Service, composer *report.Composer, st store.Store, pdf PDFRenderer, webDir string) http.Handler {
	s := &Server{
		delivery: svc,
		composer: composer,
		store:    st,
		pdf:      pdf,
		webDir:   webDir,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/lead-submission", s.handleLeadSubmission)
	mux.HandleFunc("/api/download-report", s.handleDownloadReport)
	mux.HandleFunc("/api/assessment-results/", s.handleAssessmentResults)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/", s.handleRoot)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "message": msg})
}

func (s *Server) handleLeadSubmission(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		FullName      string `json:"fullName"`
		Email         string `json:"email"`
		Country       string `json:"country"`
		BusinessStage string `json:"businessStage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Country) == "" || strings.TrimSpace(req.BusinessStage) == "" {
		writeFailure(w, http.StatusBadRequest, "All fields are required")
		return
	}

	lead := report.LeadSubmission{
		FullName:      strings.TrimSpace(req.FullName),
		Email:         strings.TrimSpace(req.Email),
		Country:       strings.TrimSpace(req.Country),
		BusinessStage: strings.TrimSpace(req.BusinessStage),
	}
	// Catalog and shape validation happens before any side effect; a
	// submission rejected here is never stored or emailed.
	if err := s.composer.Validate(lead); err != nil {
		var inv *report.InvalidInputError
		if errors.As(err, &inv) {
			writeFailure(w, http.StatusBadRequest, err.Error())
			return
		}
		writeFailure(w, http.StatusInternalServerError, "Error processing your request. Please try again.")
		return
	}

	result, err := s.delivery.Deliver(r.Context(), lead)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "Error processing your request. Please try again.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Report generated and sent successfully",
		"userId":  result.ID,
	})
}

func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Email is required")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeFailure(w, http.StatusBadRequest, "Email is required")
		return
	}
	if err := s.delivery.DeliverGeneric(r.Context(), strings.TrimSpace(req.Email)); err != nil {
		writeFailure(w, http.StatusInternalServerError, "Error processing your request. Please try again.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Report sent successfully",
	})
}

func (s *Server) handleAssessmentResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/api/assessment-results/")
	path = strings.TrimSuffix(path, "/")
	if strings.HasSuffix(path, "/pdf") {
		s.servePDF(w, r, strings.TrimSuffix(path, "/pdf"))
		return
	}
	if path == "" {
		writeFailure(w, http.StatusBadRequest, "userId is required")
		return
	}
	sub, ok := s.store.Get(path)
	if !ok {
		writeFailure(w, http.StatusNotFound, "Assessment data not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": sub})
}

// servePDF renders the deterministic report for a stored submission. The
// model is never consulted here, so repeated downloads are identical.
func (s *Server) servePDF(w http.ResponseWriter, r *http.Request, userID string) {
	if s.pdf == nil || userID == "" {
		writeFailure(w, http.StatusNotFound, "Assessment data not found")
		return
	}
	sub, ok := s.store.Get(userID)
	if !ok {
		writeFailure(w, http.StatusNotFound, "Assessment data not found")
		return
	}
	markdown, err := s.composer.ComposeFallback(sub)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "Error processing your request. Please try again.")
		return
	}
	blob, err := s.pdf.Render(r.Context(), markdown)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "Error rendering report PDF. Please try again.")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="strategic-ai-clarity-report-%s.pdf"`, userID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" || r.URL.Path == "/index.html" {
		http.ServeFile(w, r, filepath.Join(s.webDir, "index.html"))
		return
	}
	// Serve static assets from the web directory.
	path := filepath.Join(s.webDir, filepath.Clean(r.URL.Path))
	if _, err := fs.Stat(os.DirFS(s.webDir), strings.TrimPrefix(filepath.Clean(r.URL.Path), "/")); err == nil {
		http.ServeFile(w, r, path)
		return
	}
	http.NotFound(w, r)
}
