// Package rules holds the in-memory association-rule model: immutable
// rule stores grouped into an ensemble that is queried by the gap
// analyzer, recommendation scorer and path builder. Stores are loaded
// once at startup and are safe for concurrent readers.
package rules

import (
	"sort"

	"skill-path/internal/domain/skillset"
)

// Rule is one association rule. Antecedents and Consequents are disjoint,
// non-empty canonical skill sets; the rule is never mutated after load.
type Rule struct {
	Antecedents skillset.Set
	Consequents skillset.Set
	Support     float64
	Confidence  float64
	Lift        float64
}

// Valid reports whether the rule satisfies the load invariants. The
// adapter drops invalid rows instead of surfacing them here.
func (r Rule) Valid() bool {
	if len(r.Antecedents) == 0 || len(r.Consequents) == 0 {
		return false
	}
	return !r.Antecedents.Intersects(r.Consequents)
}

// Store is an ordered collection of rules sharing one granularity
// (skill-level, category-level or combined).
type Store struct {
	Name  string
	Rules []Rule
}

func NewStore(name string, rs []Rule) *Store {
	kept := make([]Rule, 0, len(rs))
	for _, r := range rs {
		if r.Valid() {
			kept = append(kept, r)
		}
	}
	return &Store{Name: name, Rules: kept}
}

func (s *Store) Empty() bool {
	return s == nil || len(s.Rules) == 0
}

// Ensemble is a static collection of rule stores queried jointly.
type Ensemble struct {
	stores []*Store
}

func NewEnsemble(stores ...*Store) *Ensemble {
	kept := make([]*Store, 0, len(stores))
	for _, s := range stores {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &Ensemble{stores: kept}
}

func (e *Ensemble) Stores() []*Store {
	if e == nil {
		return nil
	}
	return e.stores
}

func (e *Ensemble) TotalRules() int {
	n := 0
	for _, s := range e.Stores() {
		n += len(s.Rules)
	}
	return n
}

// StoreScore is the per-store evidence breakdown for one skill.
type StoreScore struct {
	Confidence float64
	AvgLift    float64
	RuleCount  int
}

// SkillScore aggregates the firing-rule evidence for one candidate skill
// across every store in the ensemble.
type SkillScore struct {
	ModelScore    float64
	Sources       []string
	AvgConfidence float64
	AvgLift       float64
	RuleCount     int
	PerStore      map[string]StoreScore
}

// ScoreSkill scans every rule in every store. A rule fires for the skill
// when the skill is in the rule's consequents and the antecedents
// intersect the user's skills. ModelScore is the max firing confidence:
// one very strong rule should not be diluted by many weak ones.
func (e *Ensemble) ScoreSkill(skill string, userSkills skillset.Set) SkillScore {
	out := SkillScore{PerStore: map[string]StoreScore{}}
	target := skillset.Normalize(skill)
	if target == "" || len(userSkills) == 0 {
		return out
	}

	var confSum, liftSum float64
	for _, store := range e.Stores() {
		var storeConfs, storeLifts []float64
		for _, r := range store.Rules {
			if !r.Consequents.Has(target) || !r.Antecedents.Intersects(userSkills) {
				continue
			}
			storeConfs = append(storeConfs, r.Confidence)
			storeLifts = append(storeLifts, r.Lift)
			confSum += r.Confidence
			liftSum += r.Lift
			out.RuleCount++
			if r.Confidence > out.ModelScore {
				out.ModelScore = r.Confidence
			}
		}
		if len(storeConfs) == 0 {
			continue
		}
		out.Sources = append(out.Sources, store.Name)
		out.PerStore[store.Name] = StoreScore{
			Confidence: maxFloat(storeConfs),
			AvgLift:    meanFloat(storeLifts),
			RuleCount:  len(storeConfs),
		}
	}

	if out.RuleCount > 0 {
		out.AvgConfidence = confSum / float64(out.RuleCount)
		out.AvgLift = liftSum / float64(out.RuleCount)
	}
	if out.ModelScore > 1 {
		out.ModelScore = 1
	}
	sort.Strings(out.Sources)
	return out
}

// Candidate is one merged ensemble recommendation.
type Candidate struct {
	Skill                string
	Score                float64
	Sources              []string
	TopSource            string
	TopNormalizedConf    float64
	Confidence           float64
	Lift                 float64
	BasedOn              []string
	AntecedentMatchRatio float64
}

type storeCandidate struct {
	skill      string
	confidence float64
	normalized float64
	lift       float64
	basedOn    []string
	matchRatio float64
	source     string
}

// Recommend queries every store for consequent skills the user does not
// yet have, normalizes confidence per store, and combines the per-store
// signals with noisy-or (1 - prod(1 - c_i)) so corroboration across
// stores strengthens a skill without any single store dominating.
func (e *Ensemble) Recommend(userSkills skillset.Set, topN int) []Candidate {
	if len(userSkills) == 0 || topN <= 0 {
		return nil
	}

	var raw []storeCandidate
	for _, store := range e.Stores() {
		raw = append(raw, storeCandidates(store, userSkills)...)
	}
	if len(raw) == 0 {
		return nil
	}

	grouped := make(map[string][]storeCandidate)
	for _, c := range raw {
		grouped[c.skill] = append(grouped[c.skill], c)
	}

	out := make([]Candidate, 0, len(grouped))
	for skill, cands := range grouped {
		prod := 1.0
		srcSet := map[string]struct{}{}
		top := cands[0]
		var liftSum, confSum, bestRatio float64
		for _, c := range cands {
			prod *= 1.0 - c.normalized
			srcSet[c.source] = struct{}{}
			liftSum += c.lift
			confSum += c.confidence
			if c.matchRatio > bestRatio {
				bestRatio = c.matchRatio
			}
			if c.normalized > top.normalized {
				top = c
			}
		}
		sources := make([]string, 0, len(srcSet))
		for s := range srcSet {
			sources = append(sources, s)
		}
		sort.Strings(sources)
		out = append(out, Candidate{
			Skill:                skill,
			Score:                1.0 - prod,
			Sources:              sources,
			TopSource:            top.source,
			TopNormalizedConf:    top.normalized,
			Confidence:           confSum / float64(len(cands)),
			Lift:                 liftSum / float64(len(cands)),
			BasedOn:              top.basedOn,
			AntecedentMatchRatio: bestRatio,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].AntecedentMatchRatio != out[j].AntecedentMatchRatio {
			return out[i].AntecedentMatchRatio > out[j].AntecedentMatchRatio
		}
		return out[i].Skill < out[j].Skill
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// storeCandidates finds rules whose antecedents overlap the user's skills
// and emits each consequent skill the user is missing, keeping the single
// best rule per skill within the store.
func storeCandidates(store *Store, userSkills skillset.Set) []storeCandidate {
	best := make(map[string]storeCandidate)
	var maxConf float64
	for _, r := range store.Rules {
		overlap := r.Antecedents.Intersect(userSkills)
		if len(overlap) == 0 {
			continue
		}
		ratio := float64(len(overlap)) / float64(len(r.Antecedents))
		for skill := range r.Consequents.Diff(userSkills) {
			cur, ok := best[skill]
			if ok && (cur.confidence > r.Confidence ||
				(cur.confidence == r.Confidence && cur.matchRatio >= ratio)) {
				continue
			}
			best[skill] = storeCandidate{
				skill:      skill,
				confidence: r.Confidence,
				lift:       r.Lift,
				basedOn:    overlap.Sorted(),
				matchRatio: ratio,
				source:     store.Name,
			}
			if r.Confidence > maxConf {
				maxConf = r.Confidence
			}
		}
	}

	out := make([]storeCandidate, 0, len(best))
	for _, c := range best {
		if maxConf > 0 {
			c.normalized = c.confidence / maxConf
		}
		out = append(out, c)
	}
	return out
}

func maxFloat(vs []float64) float64 {
	m := 0.0
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}

func meanFloat(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}
