package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/aimaverick/clarity/internal/catalog"
)

const bookingURL = "https://selar.com/366141ux1u"

// RenderFallback produces the deterministic template-substituted report
// used when the completion provider is unavailable. It is pure and total:
// given a submission whose country and stage resolved, it cannot fail, and
// its output is byte-for-byte reproducible for a fixed clock.
func RenderFallback(sub LeadSubmission, tpl catalog.StageTemplate, insight catalog.MarketInsight, now time.Time) string {
	var b strings.Builder
	b.WriteString("# Strategic AI Clarity Report\n")
	fmt.Fprintf(&b, "## %s\n\n", tpl.Title)
	fmt.Fprintf(&b, "**Prepared for:** %s  \n", sub.FullName)
	fmt.Fprintf(&b, "**Business Stage:** %s  \n", sub.BusinessStage)
	fmt.Fprintf(&b, "**Primary Market:** %s  \n", sub.Country)
	fmt.Fprintf(&b, "**Report Date:** %s\n\n---\n\n", now.Format("January 2, 2006"))

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "This Strategic AI Clarity Report provides personalized recommendations for your AI transformation journey. "+
		"Based on your current stage of %s in the %s market, this report outlines strategic opportunities and actionable next steps.\n\n",
		sub.BusinessStage, sub.Country)
	fmt.Fprintf(&b, "Your market context shows: %s\n\n---\n\n", insight.MarketCharacteristics)

	b.WriteString("## Current Stage Assessment\n\n")
	fmt.Fprintf(&b, "**Stage:** %s\n", sub.BusinessStage)
	fmt.Fprintf(&b, "**Focus:** %s\n\n", tpl.Focus)
	b.WriteString("**Key Characteristics:**\n")
	for _, area := range tpl.KeyAreas {
		fmt.Fprintf(&b, "- %s\n", area)
	}
	b.WriteString("\n---\n\n")

	b.WriteString("## Market-Specific Opportunities\n\n")
	fmt.Fprintf(&b, "**Market:** %s\n\n", sub.Country)
	b.WriteString("**Primary Opportunities:**\n")
	writeCommaList(&b, insight.Opportunities)
	b.WriteString("\n**Market Considerations:**\n")
	fmt.Fprintf(&b, "- %s\n", insight.MarketCharacteristics)
	fmt.Fprintf(&b, "- Regulatory Environment: %s\n", insight.RegulatoryEnvironment)
	fmt.Fprintf(&b, "- Cultural Factors: %s\n\n---\n\n", insight.CulturalConsiderations)

	b.WriteString("## Strategic Recommendations\n\n")
	b.WriteString("1. **Immediate Actions (Next 30 Days)**\n")
	b.WriteString("   - Conduct comprehensive AI readiness assessment\n")
	b.WriteString("   - Identify key stakeholders and decision makers\n")
	b.WriteString("   - Define clear business objectives for AI integration\n\n")
	b.WriteString("2. **Short-term Goals (30-60 Days)**\n")
	b.WriteString("   - Develop market-specific AI strategy\n")
	b.WriteString("   - Create implementation timeline and resource plan\n")
	b.WriteString("   - Establish success metrics and KPIs\n\n")
	b.WriteString("3. **Medium-term Objectives (60-90 Days)**\n")
	b.WriteString("   - Begin pilot AI implementations\n")
	b.WriteString("   - Monitor performance and adjust strategy\n")
	b.WriteString("   - Scale successful initiatives\n\n---\n\n")

	b.WriteString("## Risk Mitigation Strategies\n\n")
	b.WriteString("**Key Challenges:**\n")
	writeCommaList(&b, insight.Challenges)
	b.WriteString("\n**Mitigation Approaches:**\n")
	b.WriteString("- Start with low-risk, high-impact AI applications\n")
	b.WriteString("- Implement robust testing and validation processes\n")
	b.WriteString("- Maintain compliance with local regulations\n")
	b.WriteString("- Build internal AI expertise gradually\n\n---\n\n")

	b.WriteString("## Success Metrics and KPIs\n\n")
	b.WriteString("**Performance Indicators:**\n")
	b.WriteString("- AI implementation progress (% of planned initiatives deployed)\n")
	b.WriteString("- Business impact metrics (efficiency gains, cost reduction, revenue growth)\n")
	b.WriteString("- Market penetration and competitive positioning\n")
	b.WriteString("- Team AI literacy and adoption rates\n\n")
	b.WriteString("**Measurement Frequency:**\n")
	b.WriteString("- Weekly progress reviews\n")
	b.WriteString("- Monthly impact assessments\n")
	b.WriteString("- Quarterly strategy adjustments\n\n---\n\n")

	b.WriteString("## Next Steps\n\n")
	b.WriteString("1. **Schedule Strategic Clarity Call** - Book a consultation to discuss implementation details\n")
	b.WriteString("2. **Download Implementation Framework** - Access detailed guides and templates\n")
	b.WriteString("3. **Join AI Leaders Community** - Connect with other executives in our network\n")
	b.WriteString("4. **Subscribe to AI Insights** - Receive ongoing strategic updates and market analysis\n\n---\n\n")

	b.WriteString("**Report prepared by:** Adenola Adegbesan - The AI Maverick  \n")
	b.WriteString("**Contact:** Strategic AI clarity for cross-market business growth  \n")
	fmt.Fprintf(&b, "**Next Action:** Schedule your Strategic Clarity Call at %s\n", bookingURL)
	return b.String()
}

// writeCommaList renders a comma-joined field as markdown bullets.
func writeCommaList(b *strings.Builder, joined string) {
	for _, item := range strings.Split(joined, ",") {
		fmt.Fprintf(b, "- %s\n", strings.TrimSpace(item))
	}
}
