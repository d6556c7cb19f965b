package delivery

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/aimaverick/clarity/internal/catalog"
	"github.com/aimaverick/clarity/internal/report"
	"github.com/aimaverick/clarity/internal/store"
)

// DeliveryError marks a mail transport failure. The submission stays
// stored; a retried submission gets a fresh id rather than deduplicating.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return fmt.Sprintf("delivery failed: %v", e.Err) }
func (e *DeliveryError) Unwrap() error { return e.Err }

// DeliveryResult reports the outcome of one accepted submission.
type DeliveryResult struct {
	ID      string
	Success bool
}

// Service runs the store-compose-send pipeline for lead submissions.
type Service struct {
	composer *report.Composer
	mailer   Mailer
	store    store.Store
	clock    func() time.Time
	tracer   trace.Tracer
}

func NewService(composer *report.Composer, mailer Mailer, st store.Store) *Service {
	return &Service{
		composer: composer,
		mailer:   mailer,
		store:    st,
		clock:    time.Now,
		tracer:   otel.Tracer("clarity/delivery"),
	}
}

// Deliver stores the submission, composes its report, and emails it. The
// store write happens exactly once, before the email, and is not rolled
// back on a send failure.
func (s *Service) Deliver(ctx context.Context, lead report.LeadSubmission) (DeliveryResult, error) {
	ctx, span := s.tracer.Start(ctx, "report.deliver")
	defer span.End()

	lead.ID = store.NewSubmissionID()
	lead.CreatedAt = s.clock()
	if err := s.store.Put(lead); err != nil {
		return DeliveryResult{}, fmt.Errorf("storing submission: %w", err)
	}
	span.SetAttributes(attribute.String("submission.id", lead.ID))

	composed, err := s.composer.Compose(ctx, lead)
	if err != nil {
		return DeliveryResult{}, err
	}

	focus := ""
	if tpl, ok := catalog.TemplateFor(lead.BusinessStage); ok {
		focus = tpl.Focus
	}
	msg := RenderLeadEmail(lead, focus, composed.Text)
	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Printf("delivery: send failed for submission %s: %v", lead.ID, err)
		return DeliveryResult{ID: lead.ID}, &DeliveryError{Err: err}
	}

	log.Printf("delivery: report sent to %s (submission=%s, source=%s)", lead.Email, lead.ID, composed.Source)
	return DeliveryResult{ID: lead.ID, Success: true}, nil
}

// DeliverGeneric emails the hardcoded generic report. Nothing is stored
// and no id is assigned.
func (s *Service) DeliverGeneric(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "report.deliver_generic")
	defer span.End()

	msg := RenderGenericEmail(email, report.GenericReport())
	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Printf("delivery: generic send failed for %s: %v", email, err)
		return &DeliveryError{Err: err}
	}
	log.Printf("delivery: generic report sent to %s", email)
	return nil
}
