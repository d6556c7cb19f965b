// Package report composes Strategic AI Clarity reports: an LLM draft when
// the completion provider is healthy, a deterministic template render when
// it is not. Every valid submission produces a report.
package report

import (
	"regexp"
	"strings"
	"time"
)

// LeadSubmission is a visitor's form entry requesting a personalized
// report. It is immutable once created; ID is the only field assigned
// later, exactly once, when the delivery layer stores it.
type LeadSubmission struct {
	ID            string    `json:"id,omitempty"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	Country       string    `json:"country"`
	BusinessStage string    `json:"businessStage"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// Source records which path produced a report.
type Source string

const (
	SourceProvider Source = "provider"
	SourceFallback Source = "fallback"
)

// ComposedReport is an ephemeral document consumed within one delivery.
type ComposedReport struct {
	Text   string
	Source Source
}

// Minimal local@domain.tld shape; full RFC validation is not the goal.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has a basic address shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}
