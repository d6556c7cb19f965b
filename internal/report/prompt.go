package report

import (
	"fmt"
	"strings"

	"github.com/aimaverick/clarity/internal/catalog"
)

// BuildPrompt assembles the structured completion prompt for a validated
// submission. The eight numbered sections are the report contract; the
// provider text is returned to the lead verbatim.
func BuildPrompt(sub LeadSubmission, tpl catalog.StageTemplate, insight catalog.MarketInsight) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a comprehensive Strategic AI Clarity Report for %s based on the following information:\n\n", sub.FullName)
	fmt.Fprintf(&b, "Business Stage: %s\n", sub.BusinessStage)
	fmt.Fprintf(&b, "Primary Market: %s\n\n", sub.Country)
	fmt.Fprintf(&b, "Report Template: %s\n", tpl.Title)
	fmt.Fprintf(&b, "Focus Area: %s\n\n", tpl.Focus)
	fmt.Fprintf(&b, "Market Context:\n")
	fmt.Fprintf(&b, "- Market Characteristics: %s\n", insight.MarketCharacteristics)
	fmt.Fprintf(&b, "- Opportunities: %s\n", insight.Opportunities)
	fmt.Fprintf(&b, "- Challenges: %s\n", insight.Challenges)
	fmt.Fprintf(&b, "- Regulatory Environment: %s\n", insight.RegulatoryEnvironment)
	fmt.Fprintf(&b, "- Cultural Considerations: %s\n\n", insight.CulturalConsiderations)
	fmt.Fprintf(&b, "Key Areas to Address:\n%s\n\n", strings.Join(tpl.KeyAreas, "\n"))
	b.WriteString("Please provide:\n")
	b.WriteString("1. Executive Summary (2-3 paragraphs)\n")
	b.WriteString("2. Current Stage Assessment\n")
	b.WriteString("3. Market-Specific Opportunities\n")
	b.WriteString("4. Strategic Recommendations (5-7 actionable items)\n")
	b.WriteString("5. Implementation Roadmap (30-60-90 day plan)\n")
	b.WriteString("6. Risk Mitigation Strategies\n")
	b.WriteString("7. Success Metrics and KPIs\n")
	b.WriteString("8. Next Steps\n\n")
	b.WriteString("Format the report professionally with clear sections and actionable insights.\n")
	b.WriteString("Make it specific to their business stage and market context.\n")
	return b.String()
}
