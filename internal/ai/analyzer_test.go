package ai

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/concresys/concresys/internal/models"
)

func TestAnalyzeWithoutClient(t *testing.T) {
	got := AnalyzePourData(context.Background(), nil, nil, nil, nil, nil)
	if got != msgNoAPIKey {
		t.Errorf("Expected API key placeholder, got %q", got)
	}
}

func TestBuildAnalysisPromptCapsPours(t *testing.T) {
	var pours []models.PourRecord
	for i := 0; i < maxContextPours+10; i++ {
		pours = append(pours, models.PourRecord{
			ID:   fmt.Sprintf("pour-%03d", i),
			Date: "2026-08-10",
		})
	}

	prompt := BuildAnalysisPrompt(pours, nil, nil, nil)

	if !strings.Contains(prompt, "pour-049") {
		t.Error("Expected the 50th pour in the prompt")
	}
	if strings.Contains(prompt, "pour-050") {
		t.Error("Expected pours beyond the cap to be dropped")
	}
	if !strings.Contains(prompt, "engenheiro civil") {
		t.Error("Expected the instruction template in the prompt")
	}
}

func TestBuildAnalysisPromptIncludesRegistries(t *testing.T) {
	prompt := BuildAnalysisPrompt(
		[]models.PourRecord{{ID: "p1", Date: "2026-08-10"}},
		[]models.Supplier{{ID: "s1", Name: "Alfa Concreto"}},
		[]models.Location{{ID: "l1", Name: "Bloco A"}},
		[]models.ConcreteType{{ID: "c1", Name: "FCK 30"}},
	)
	for _, want := range []string{"Alfa Concreto", "Bloco A", "FCK 30"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected %q in the prompt", want)
		}
	}
}
