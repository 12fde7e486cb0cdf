package brain

import (
	"reflect"
	"testing"

	"github.com/arcbrain/arcbrain/pkg/arcbrain/models"
)

func TestGenerateFinance(t *testing.T) {
	analysis := Generate(models.BrainTypeFinance)

	wantSteps := []string{
		"Analyzed financial constraints and budget requirements",
		"Evaluated potential ROI and payback period",
		"Assessed financial risks and mitigation strategies",
		"Compared against industry benchmarks",
	}
	if !reflect.DeepEqual(analysis.ReasoningSteps, wantSteps) {
		t.Errorf("Unexpected reasoning steps: %v", analysis.ReasoningSteps)
	}

	wantProsCons := map[string][]string{
		"pros": {"Strong ROI potential", "Aligned with financial goals", "Scalable investment"},
		"cons": {"High upfront cost", "Market uncertainty", "Resource intensive"},
	}
	if !reflect.DeepEqual(analysis.ProsCons, wantProsCons) {
		t.Errorf("Unexpected pros/cons: %v", analysis.ProsCons)
	}

	wantRisks := map[string]string{
		"financial_risk":   "Medium",
		"market_risk":      "High",
		"operational_risk": "Low",
	}
	if !reflect.DeepEqual(analysis.RiskAssessment, wantRisks) {
		t.Errorf("Unexpected risk assessment: %v", analysis.RiskAssessment)
	}

	wantRecs := []string{
		"Conduct detailed financial modeling",
		"Secure additional funding sources",
		"Implement phased rollout approach",
	}
	if !reflect.DeepEqual(analysis.Recommendations, wantRecs) {
		t.Errorf("Unexpected recommendations: %v", analysis.Recommendations)
	}

	if analysis.ConfidenceScore != 0.78 {
		t.Errorf("Expected confidence 0.78, got %v", analysis.ConfidenceScore)
	}
	if analysis.EstimatedImpact != "High positive impact on revenue" {
		t.Errorf("Unexpected estimated impact: %s", analysis.EstimatedImpact)
	}
}

func TestGenerateConfidencePerBrainType(t *testing.T) {
	cases := []struct {
		brainType  models.BrainType
		confidence float64
	}{
		{models.BrainTypeFinance, 0.78},
		{models.BrainTypeStrategy, 0.82},
		{models.BrainTypePersonal, 0.75},
	}

	for _, tc := range cases {
		analysis := Generate(tc.brainType)
		if analysis.ConfidenceScore != tc.confidence {
			t.Errorf("Expected confidence %v for %s, got %v",
				tc.confidence, tc.brainType, analysis.ConfidenceScore)
		}
	}
}

func TestGenerateIsPure(t *testing.T) {
	for _, brainType := range []models.BrainType{
		models.BrainTypeFinance,
		models.BrainTypeStrategy,
		models.BrainTypePersonal,
	} {
		first := Generate(brainType)
		second := Generate(brainType)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Expected identical output for %s on repeated calls", brainType)
		}
	}
}

func TestGenerateUnknownFallsBackToPersonal(t *testing.T) {
	unknown := Generate(models.BrainType("astrology"))
	personal := Generate(models.BrainTypePersonal)

	if !reflect.DeepEqual(unknown, personal) {
		t.Error("Expected unknown brain types to yield the personal analysis")
	}
}
