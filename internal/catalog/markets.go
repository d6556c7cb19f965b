// Package catalog holds the fixed market and stage content the report
// engine draws from. Both sets are closed: a key outside them is a
// client-input error, never silently defaulted.
package catalog

// MarketInsight describes a country's AI business context.
// Opportunities and Challenges are comma-joined lists; renderers split on
// commas, so embedded commas inside a single item are not supported.
type MarketInsight struct {
	MarketCharacteristics  string
	Opportunities          string
	Challenges             string
	RegulatoryEnvironment  string
	CulturalConsiderations string
}

var marketInsights = map[string]MarketInsight{
	"Nigeria": {
		MarketCharacteristics:  "Rapidly growing tech ecosystem with increasing AI adoption in fintech and agriculture",
		Opportunities:          "Mobile-first AI solutions, local language processing, informal sector digitization",
		Challenges:             "Infrastructure limitations, regulatory uncertainty, talent acquisition",
		RegulatoryEnvironment:  "Evolving AI governance framework, data protection laws developing",
		CulturalConsiderations: "Relationship-driven business culture, hierarchical decision-making structures",
	},
	"United Kingdom": {
		MarketCharacteristics:  "Mature AI market with strong regulatory framework and enterprise adoption",
		Opportunities:          "Financial services AI, healthcare innovation, manufacturing optimization",
		Challenges:             "GDPR compliance, Brexit implications, competitive market landscape",
		RegulatoryEnvironment:  "Comprehensive AI regulation, strict data protection, ethical AI guidelines",
		CulturalConsiderations: "Evidence-based decision making, risk-averse culture, formal business practices",
	},
	"United States": {
		MarketCharacteristics:  "Leading AI innovation hub with massive market size and venture capital availability",
		Opportunities:          "Enterprise AI solutions, consumer AI applications, cutting-edge research commercialization",
		Challenges:             "Intense competition, regulatory complexity, high operational costs",
		RegulatoryEnvironment:  "Sector-specific regulations, state-level variations, emerging federal AI policy",
		CulturalConsiderations: "Fast-paced decision making, innovation-focused culture, results-driven metrics",
	},
	"Multiple": {
		MarketCharacteristics:  "Complex multi-market operations requiring sophisticated coordination",
		Opportunities:          "Cross-market synergies, global scaling potential, diversified revenue streams",
		Challenges:             "Regulatory complexity, cultural adaptation, operational coordination",
		RegulatoryEnvironment:  "Multiple jurisdictions, varying compliance requirements, complex legal frameworks",
		CulturalConsiderations: "Diverse stakeholder management, adaptive leadership styles, global-local balance",
	},
}

// MarketFor returns the insight for a country. The second return is false
// for countries outside the recognized set.
func MarketFor(country string) (MarketInsight, bool) {
	m, ok := marketInsights[country]
	return m, ok
}

// Markets returns the recognized country names.
func Markets() []string {
	out := make([]string, 0, len(marketInsights))
	for k := range marketInsights {
		out = append(out, k)
	}
	return out
}
