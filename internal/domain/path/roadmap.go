package path

import (
	"fmt"
	"sort"
	"strings"

	"skill-path/internal/domain/rules"
	"skill-path/internal/domain/skillset"
)

const (
	// prerequisiteConfidence gates which rules contribute prerequisite
	// relationships to the roadmap.
	prerequisiteConfidence = 0.5
	// explanationConfidence is the weaker floor for attaching a rule
	// explanation to a roadmap skill.
	explanationConfidence = 0.3
)

// RoadmapPhase is one greedy step of the prerequisite-aware roadmap.
type RoadmapPhase struct {
	Skills           []string
	Weeks            int
	SkillWeeks       map[string]int
	PrerequisitesMet bool
	Explanations     map[string]string
}

// Roadmap is the prerequisite-ordered alternative to the rank-sliced
// Path: skills only enter a phase once their rule-derived prerequisites
// within the target set have been scheduled.
type Roadmap struct {
	Phases        []RoadmapPhase
	TotalWeeks    int
	TotalSkills   int
	Prerequisites map[string][]string
}

// GenerateRoadmap builds a phased roadmap for targetSkills, treating
// currentSkills as already learned. maxPerPhase caps each greedy step;
// when no skill has its prerequisites met the next skills are taken in
// lexical order so cycles cannot stall the build.
func GenerateRoadmap(targetSkills, currentSkills []string, ruleSet []rules.Rule, maxPerPhase int) Roadmap {
	if maxPerPhase <= 0 {
		maxPerPhase = 3
	}

	target := skillset.NewSet(targetSkills...)
	learned := skillset.NewSet(currentSkills...)
	if len(target) == 0 {
		return Roadmap{Phases: []RoadmapPhase{}, Prerequisites: map[string][]string{}}
	}

	prereqs := buildPrerequisites(target, ruleSet)

	remaining := target.Diff(learned)
	var phases []RoadmapPhase
	for len(remaining) > 0 {
		ready := make([]string, 0, len(remaining))
		for skill := range remaining {
			if prereqsMet(prereqs[skill], learned) {
				ready = append(ready, skill)
			}
		}
		sort.Strings(ready)
		if len(ready) == 0 {
			ready = remaining.Sorted()
		}
		if len(ready) > maxPerPhase {
			ready = ready[:maxPerPhase]
		}

		phases = append(phases, newRoadmapPhase(ready, learned, prereqs))
		for _, s := range ready {
			learned.Add(s)
			delete(remaining, s)
		}
	}

	total := 0
	for _, p := range phases {
		total += p.Weeks
	}
	return Roadmap{
		Phases:        phases,
		TotalWeeks:    total,
		TotalSkills:   len(target),
		Prerequisites: prereqs,
	}
}

// buildPrerequisites derives skill -> prerequisite-skills from rules where
// the skill is a consequent, restricted to the target set.
func buildPrerequisites(target skillset.Set, ruleSet []rules.Rule) map[string][]string {
	acc := make(map[string]skillset.Set)
	for _, r := range ruleSet {
		if r.Confidence <= prerequisiteConfidence {
			continue
		}
		for skill := range r.Consequents {
			if _, ok := target[skill]; !ok {
				continue
			}
			if acc[skill] == nil {
				acc[skill] = make(skillset.Set)
			}
			for p := range r.Antecedents.Intersect(target) {
				acc[skill][p] = struct{}{}
			}
		}
	}

	out := make(map[string][]string, len(acc))
	for skill, set := range acc {
		out[skill] = set.Sorted()
	}
	return out
}

func prereqsMet(prereqs []string, learned skillset.Set) bool {
	for _, p := range prereqs {
		if !learned.Has(p) {
			return false
		}
	}
	return true
}

func newRoadmapPhase(skills []string, learned skillset.Set, prereqs map[string][]string) RoadmapPhase {
	weeks := 0
	perSkill := make(map[string]int, len(skills))
	met := true
	for _, s := range skills {
		w := estimateSkillWeeks(s)
		perSkill[s] = w
		weeks += w
		if !prereqsMet(prereqs[s], learned) {
			met = false
		}
	}
	return RoadmapPhase{
		Skills:           skills,
		Weeks:            weeks,
		SkillWeeks:       perSkill,
		PrerequisitesMet: met,
	}
}

// estimateSkillWeeks buckets skills into rough effort tiers.
func estimateSkillWeeks(skill string) int {
	hard := []string{"machine learning", "kubernetes", "hadoop", "spark"}
	medium := []string{"aws", "docker", "react", "angular", "django"}
	for _, h := range hard {
		if strings.Contains(skill, h) {
			return 12
		}
	}
	for _, m := range medium {
		if strings.Contains(skill, m) {
			return 6
		}
	}
	return 3
}

// ExplainRoadmap attaches a rule-based explanation to each roadmap skill
// that has one: the strongest rule whose consequents include the skill
// and whose antecedents intersect the user's skills.
func ExplainRoadmap(r Roadmap, userSkills []string, ruleSet []rules.Rule) Roadmap {
	user := skillset.NewSet(userSkills...)
	for i := range r.Phases {
		expl := make(map[string]string)
		for _, skill := range r.Phases[i].Skills {
			if e, ok := explainSkill(skill, user, ruleSet); ok {
				expl[skill] = e
			}
		}
		r.Phases[i].Explanations = expl
	}
	return r
}

func explainSkill(skill string, user skillset.Set, ruleSet []rules.Rule) (string, bool) {
	best := ""
	bestConf := explanationConfidence
	for _, r := range ruleSet {
		if r.Confidence <= bestConf || !r.Consequents.Has(skill) {
			continue
		}
		matched := r.Antecedents.Intersect(user)
		if len(matched) == 0 {
			continue
		}
		bestConf = r.Confidence
		best = fmt.Sprintf(
			"Users with %s frequently need %s (confidence: %.0f%%, lift: %.2f)",
			strings.Join(matched.Sorted(), ", "), skill, r.Confidence*100, r.Lift,
		)
	}
	return best, best != ""
}
