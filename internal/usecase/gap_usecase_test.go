package usecase

import (
	"context"
	"testing"

	"skill-path/internal/domain/gap"
)

func TestAnalyzeGap(t *testing.T) {
	uc := NewGapUsecase(gap.NewAnalyzer(gap.DefaultWeights(), nil), testEnsemble())

	out, err := uc.AnalyzeGap(context.Background(), []string{"python"}, []string{"python", "machine learning"})
	if err != nil {
		t.Fatalf("AnalyzeGap: %v", err)
	}
	if out.Message != "" {
		t.Fatalf("unexpected message %q", out.Message)
	}
	if out.Result.Coverage != 0.5 {
		t.Fatalf("coverage = %v, want 0.5", out.Result.Coverage)
	}
	if len(out.Result.Missing) != 1 || out.Result.Missing[0] != "machine learning" {
		t.Fatalf("missing = %v", out.Result.Missing)
	}
}

func TestAnalyzeGapNoJobSkills(t *testing.T) {
	uc := NewGapUsecase(gap.NewAnalyzer(gap.DefaultWeights(), nil), testEnsemble())

	out, err := uc.AnalyzeGap(context.Background(), []string{"python"}, nil)
	if err != nil {
		t.Fatalf("AnalyzeGap: %v", err)
	}
	if out.Message != "No job skills provided; nothing to compare against." {
		t.Fatalf("message = %q", out.Message)
	}
	if out.Result.TotalRequired != 0 {
		t.Fatalf("total required = %d", out.Result.TotalRequired)
	}
}
