package brain

import "github.com/arcbrain/arcbrain/pkg/arcbrain/models"

// Generate returns the canned analysis for a brain type. It is a pure
// function over the closed BrainType set: the same input always yields
// the same payload, and unknown values fall back to the personal
// analysis. Placeholder until a real inference backend exists.
func Generate(brainType models.BrainType) models.AIAnalysis {
	switch brainType {
	case models.BrainTypeFinance:
		return models.AIAnalysis{
			ReasoningSteps: []string{
				"Analyzed financial constraints and budget requirements",
				"Evaluated potential ROI and payback period",
				"Assessed financial risks and mitigation strategies",
				"Compared against industry benchmarks",
			},
			ProsCons: map[string][]string{
				"pros": {"Strong ROI potential", "Aligned with financial goals", "Scalable investment"},
				"cons": {"High upfront cost", "Market uncertainty", "Resource intensive"},
			},
			RiskAssessment: map[string]string{
				"financial_risk":   "Medium",
				"market_risk":      "High",
				"operational_risk": "Low",
			},
			Recommendations: []string{
				"Conduct detailed financial modeling",
				"Secure additional funding sources",
				"Implement phased rollout approach",
			},
			ConfidenceScore: 0.78,
			EstimatedImpact: "High positive impact on revenue",
		}
	case models.BrainTypeStrategy:
		return models.AIAnalysis{
			ReasoningSteps: []string{
				"Analyzed competitive landscape and market positioning",
				"Evaluated strategic alignment with company goals",
				"Assessed resource requirements and capabilities",
				"Examined potential market opportunities",
			},
			ProsCons: map[string][]string{
				"pros": {"Competitive advantage", "Market expansion", "Brand strengthening"},
				"cons": {"Resource intensive", "Execution complexity", "Market saturation risk"},
			},
			RiskAssessment: map[string]string{
				"competitive_risk": "Medium",
				"execution_risk":   "High",
				"market_risk":      "Low",
			},
			Recommendations: []string{
				"Develop detailed execution roadmap",
				"Secure key partnerships",
				"Invest in market research",
			},
			ConfidenceScore: 0.82,
			EstimatedImpact: "Significant strategic advantage",
		}
	default: // personal
		return models.AIAnalysis{
			ReasoningSteps: []string{
				"Evaluated personal values and long-term goals",
				"Analyzed potential life impact and trade-offs",
				"Considered available resources and constraints",
				"Assessed timing and opportunity factors",
			},
			ProsCons: map[string][]string{
				"pros": {"Personal growth", "New opportunities", "Skill development"},
				"cons": {"Time investment", "Uncertainty", "Potential stress"},
			},
			RiskAssessment: map[string]string{
				"personal_risk":  "Medium",
				"financial_risk": "Low",
				"career_risk":    "Low",
			},
			Recommendations: []string{
				"Create detailed timeline and milestones",
				"Build support network",
				"Plan for contingencies",
			},
			ConfidenceScore: 0.75,
			EstimatedImpact: "Positive long-term personal development",
		}
	}
}
