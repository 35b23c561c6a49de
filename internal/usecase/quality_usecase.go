package usecase

import (
	"context"

	"skill-path/internal/domain/quality"
	"skill-path/internal/domain/rules"
)

// ProductionGate is the go/no-go decision for one rule store.
type ProductionGate struct {
	Store    string
	Ready    bool
	Warnings []string
}

type QualityUsecase interface {
	Reports(ctx context.Context) (map[string]quality.Report, error)
	Report(ctx context.Context, store string) (quality.Report, error)
	ProductionGates(ctx context.Context) ([]ProductionGate, error)
}

type Quality struct {
	ensemble *rules.Ensemble
}

func NewQualityUsecase(ensemble *rules.Ensemble) *Quality {
	return &Quality{ensemble: ensemble}
}

func (u *Quality) Reports(ctx context.Context) (map[string]quality.Report, error) {
	_ = ctx
	return quality.Compare(u.ensemble.Stores()...), nil
}

func (u *Quality) Report(ctx context.Context, store string) (quality.Report, error) {
	_ = ctx
	for _, s := range u.ensemble.Stores() {
		if s.Name == store {
			return quality.Validate(s), nil
		}
	}
	return quality.Report{}, ErrStoreUnknown
}

func (u *Quality) ProductionGates(ctx context.Context) ([]ProductionGate, error) {
	_ = ctx
	stores := u.ensemble.Stores()
	out := make([]ProductionGate, 0, len(stores))
	for _, s := range stores {
		ready, warnings := quality.ValidateForProduction(s)
		if warnings == nil {
			warnings = []string{}
		}
		out = append(out, ProductionGate{Store: s.Name, Ready: ready, Warnings: warnings})
	}
	return out, nil
}
