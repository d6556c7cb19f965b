package report

import (
	"context"
	"log"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/aimaverick/clarity/internal/catalog"
)

// DefaultProviderTimeout bounds the completion call so a hung provider
// reaches the fallback path instead of stalling the submission.
const DefaultProviderTimeout = 60 * time.Second

// Config tunes a Composer. Zero values select the defaults.
type Config struct {
	// ProviderTimeout caps the completion call.
	ProviderTimeout time.Duration
	// Clock supplies the report date; injected so the fallback render is
	// reproducible in tests.
	Clock func() time.Time
}

type Composer struct {
	provider CompletionProvider
	timeout  time.Duration
	clock    func() time.Time
	tracer   trace.Tracer
}

func NewComposer(provider CompletionProvider, cfg Config) *Composer {
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = DefaultProviderTimeout
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Composer{
		provider: provider,
		timeout:  cfg.ProviderTimeout,
		clock:    cfg.Clock,
		tracer:   otel.Tracer("clarity/report"),
	}
}

// Validate checks a submission's fields and catalog keys. It performs no
// I/O and must pass before any side effect is taken on the submission.
func (c *Composer) Validate(sub LeadSubmission) error {
	if strings.TrimSpace(sub.FullName) == "" {
		return invalidInput("fullName", "must not be empty")
	}
	if !ValidEmail(sub.Email) {
		return invalidInput("email", "%q is not a valid address", sub.Email)
	}
	if _, ok := catalog.MarketFor(sub.Country); !ok {
		return invalidInput("country", "%q is not a recognized market", sub.Country)
	}
	if _, ok := catalog.TemplateFor(sub.BusinessStage); !ok {
		return invalidInput("businessStage", "%q is not a recognized stage", sub.BusinessStage)
	}
	return nil
}

// Compose produces the report for a submission. Provider failures are
// absorbed: any error or empty response after validation yields the
// deterministic fallback render, so a valid submission always gets a
// report.
func (c *Composer) Compose(ctx context.Context, sub LeadSubmission) (ComposedReport, error) {
	tpl, ok := catalog.TemplateFor(sub.BusinessStage)
	if !ok {
		return ComposedReport{}, invalidInput("businessStage", "%q is not a recognized stage", sub.BusinessStage)
	}
	insight, ok := catalog.MarketFor(sub.Country)
	if !ok {
		return ComposedReport{}, invalidInput("country", "%q is not a recognized market", sub.Country)
	}

	ctx, span := c.tracer.Start(ctx, "report.compose",
		trace.WithAttributes(
			attribute.String("lead.country", sub.Country),
			attribute.String("lead.stage", sub.BusinessStage),
		))
	defer span.End()

	prompt := BuildPrompt(sub, tpl, insight)

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	text, err := c.provider.Complete(callCtx, prompt)
	if err != nil {
		log.Printf("report: provider failed for %s/%s, using fallback: %v", sub.BusinessStage, sub.Country, err)
		span.SetAttributes(attribute.String("report.source", string(SourceFallback)))
		return ComposedReport{Text: RenderFallback(sub, tpl, insight, c.clock()), Source: SourceFallback}, nil
	}
	span.SetAttributes(attribute.String("report.source", string(SourceProvider)))
	return ComposedReport{Text: text, Source: SourceProvider}, nil
}

// ComposeFallback renders the deterministic report without consulting the
// provider. The PDF download path uses it so downloads stay reproducible.
func (c *Composer) ComposeFallback(sub LeadSubmission) (string, error) {
	tpl, ok := catalog.TemplateFor(sub.BusinessStage)
	if !ok {
		return "", invalidInput("businessStage", "%q is not a recognized stage", sub.BusinessStage)
	}
	insight, ok := catalog.MarketFor(sub.Country)
	if !ok {
		return "", invalidInput("country", "%q is not a recognized market", sub.Country)
	}
	return RenderFallback(sub, tpl, insight, c.clock()), nil
}
