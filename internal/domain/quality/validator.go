// Package quality computes distributional statistics over a rule store
// and gates whether a store is trustworthy enough for the recommendation
// ensemble.
package quality

import (
	"fmt"
	"math"
	"sort"

	"skill-path/internal/domain/rules"
	"skill-path/internal/domain/skillset"
)

const (
	StatusValid = "valid"
	StatusEmpty = "empty"
)

// Production gates. A store passes only with zero warnings.
const (
	minRuleCount  = 100
	minConfidence = 0.4
	minSupport    = 0.01
)

// MetricStats summarizes one metric column.
type MetricStats struct {
	Min    float64
	Mean   float64
	Median float64
	Max    float64
	Std    float64
	Q25    float64
	Q75    float64
}

// QualityDistribution counts rules by confidence band.
type QualityDistribution struct {
	High   int // confidence > 0.7
	Medium int // 0.5 < confidence <= 0.7
	Low    int // confidence <= 0.5
}

// Coverage counts the distinct items appearing in the store.
type Coverage struct {
	UniqueAntecedents int
	UniqueConsequents int
	TotalUniqueItems  int
}

// Report is the full validation result for one store.
type Report struct {
	Store        string
	Status       string
	TotalRules   int
	Support      MetricStats
	Confidence   MetricStats
	Lift         MetricStats
	Distribution QualityDistribution
	StrongRules  int
	Coverage     Coverage
}

// Validate computes the quality report for a store. An empty store yields
// a report with Status "empty" and zeroed metrics.
func Validate(store *rules.Store) Report {
	name := ""
	if store != nil {
		name = store.Name
	}
	if store.Empty() {
		return Report{Store: name, Status: StatusEmpty}
	}

	supports := make([]float64, 0, len(store.Rules))
	confidences := make([]float64, 0, len(store.Rules))
	lifts := make([]float64, 0, len(store.Rules))
	ants := make(skillset.Set)
	cons := make(skillset.Set)
	dist := QualityDistribution{}
	strong := 0

	for _, r := range store.Rules {
		supports = append(supports, r.Support)
		confidences = append(confidences, r.Confidence)
		lifts = append(lifts, r.Lift)
		for a := range r.Antecedents {
			ants[a] = struct{}{}
		}
		for c := range r.Consequents {
			cons[c] = struct{}{}
		}
		switch {
		case r.Confidence > 0.7:
			dist.High++
		case r.Confidence > 0.5:
			dist.Medium++
		default:
			dist.Low++
		}
		if r.Confidence > 0.5 {
			strong++
		}
	}

	all := make(skillset.Set, len(ants)+len(cons))
	for a := range ants {
		all[a] = struct{}{}
	}
	for c := range cons {
		all[c] = struct{}{}
	}

	return Report{
		Store:        name,
		Status:       StatusValid,
		TotalRules:   len(store.Rules),
		Support:      analyze(supports),
		Confidence:   analyze(confidences),
		Lift:         analyze(lifts),
		Distribution: dist,
		StrongRules:  strong,
		Coverage: Coverage{
			UniqueAntecedents: len(ants),
			UniqueConsequents: len(cons),
			TotalUniqueItems:  len(all),
		},
	}
}

// ValidateForProduction decides whether a store should be trusted by the
// ensemble. An empty store fails outright; thin or weak stores pass
// validation but carry warnings, and only a warning-free store is
// production-ready. Missing or malformed rule columns never reach this
// check: the CSV repository drops such rows at load time, so a file
// without the required columns arrives here as an empty store and fails
// the "No rules found" gate.
func ValidateForProduction(store *rules.Store) (bool, []string) {
	if store.Empty() {
		return false, []string{"No rules found"}
	}

	var warnings []string
	if len(store.Rules) < minRuleCount {
		warnings = append(warnings, fmt.Sprintf("Only %d rules - consider more training data", len(store.Rules)))
	}

	var confSum, supSum float64
	for _, r := range store.Rules {
		confSum += r.Confidence
		supSum += r.Support
	}
	n := float64(len(store.Rules))
	if avg := confSum / n; avg < minConfidence {
		warnings = append(warnings, fmt.Sprintf("Average confidence is low (%.2f)", avg))
	}
	if avg := supSum / n; avg < minSupport {
		warnings = append(warnings, fmt.Sprintf("Average support is very low (%.4f)", avg))
	}

	return len(warnings) == 0, warnings
}

// Compare validates several stores at once, keyed by store name.
func Compare(stores ...*rules.Store) map[string]Report {
	out := make(map[string]Report, len(stores))
	for _, s := range stores {
		if s == nil {
			continue
		}
		out[s.Name] = Validate(s)
	}
	return out
}

// TopRules returns the n strongest rules by the given metric
// ("confidence", "support" or "lift"; anything else means confidence).
func TopRules(store *rules.Store, n int, metric string) []rules.Rule {
	if store.Empty() || n <= 0 {
		return nil
	}
	key := func(r rules.Rule) float64 {
		switch metric {
		case "support":
			return r.Support
		case "lift":
			return r.Lift
		default:
			return r.Confidence
		}
	}
	sorted := make([]rules.Rule, len(store.Rules))
	copy(sorted, store.Rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) > key(sorted[j])
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func analyze(vs []float64) MetricStats {
	if len(vs) == 0 {
		return MetricStats{}
	}
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	variance := 0.0
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	std := 0.0
	if len(sorted) > 1 {
		// Sample standard deviation, matching the usual stats tooling.
		std = math.Sqrt(variance / float64(len(sorted)-1))
	}

	return MetricStats{
		Min:    sorted[0],
		Mean:   mean,
		Median: quantile(sorted, 0.5),
		Max:    sorted[len(sorted)-1],
		Std:    std,
		Q25:    quantile(sorted, 0.25),
		Q75:    quantile(sorted, 0.75),
	}
}

// quantile linearly interpolates over the sorted sample.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
