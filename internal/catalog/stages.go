package catalog

// StageTemplate describes the report shape for one AI-maturity phase.
type StageTemplate struct {
	Title    string
	Focus    string
	KeyAreas []string
}

var stageTemplates = map[string]StageTemplate{
	"Exploring": {
		Title: "AI Opportunities Explorer Report",
		Focus: "Discovery and Opportunity Assessment",
		KeyAreas: []string{
			"Market-specific AI opportunity mapping",
			"Competitive landscape analysis",
			"Technology readiness assessment",
			"ROI potential evaluation",
			"Risk mitigation strategies",
		},
	},
	"Planning": {
		Title: "AI Implementation Planner Report",
		Focus: "Strategic Planning and Roadmap Development",
		KeyAreas: []string{
			"Implementation timeline optimization",
			"Resource allocation strategy",
			"Cross-market compliance framework",
			"Team capability building plan",
			"Technology stack recommendations",
		},
	},
	"Implementing": {
		Title: "AI Implementation Optimizer Report",
		Focus: "Current Implementation Enhancement",
		KeyAreas: []string{
			"Implementation progress assessment",
			"Performance optimization strategies",
			"Cross-market scaling opportunities",
			"Risk management enhancement",
			"Success metric refinement",
		},
	},
	"Scaling": {
		Title: "AI Scale Mastery Report",
		Focus: "Enterprise-wide AI Scaling Strategy",
		KeyAreas: []string{
			"Organizational AI maturity assessment",
			"Scaling framework development",
			"Change management strategy",
			"Advanced AI opportunity identification",
			"Long-term competitive positioning",
		},
	},
}

// TemplateFor returns the report template for a business stage. The second
// return is false for stages outside the recognized set.
func TemplateFor(stage string) (StageTemplate, bool) {
	t, ok := stageTemplates[stage]
	return t, ok
}

// Stages returns the recognized business-stage names.
func Stages() []string {
	out := make([]string, 0, len(stageTemplates))
	for k := range stageTemplates {
		out = append(out, k)
	}
	return out
}
