package path

import (
	"skill-path/internal/domain/rules"
	"skill-path/internal/domain/skillset"
)

// sequenceConfidence is the edge threshold: only rules this confident
// contribute a prerequisite edge to the sequencing graph.
const sequenceConfidence = 0.6

// SuggestSequence orders a set of skills so prerequisite skills come
// first. It builds a directed graph from high-confidence rules restricted
// to the input set (edge antecedent -> consequent) and runs Kahn's
// algorithm; skills left over from cycles or isolation are appended in
// input order. The output is always a permutation of the deduplicated
// input.
func SuggestSequence(skills []string, ruleSet []rules.Rule) []string {
	input := make([]string, 0, len(skills))
	seen := make(skillset.Set, len(skills))
	for _, raw := range skills {
		k := skillset.Normalize(raw)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		input = append(input, k)
	}
	if len(input) == 0 {
		return []string{}
	}

	edges := make(map[string][]string)
	inDegree := make(map[string]int, len(input))
	for _, s := range input {
		inDegree[s] = 0
	}
	hasEdge := make(map[[2]string]bool)

	for _, r := range ruleSet {
		if r.Confidence <= sequenceConfidence {
			continue
		}
		for ant := range r.Antecedents {
			if _, ok := inDegree[ant]; !ok {
				continue
			}
			for cons := range r.Consequents {
				if _, ok := inDegree[cons]; !ok || ant == cons {
					continue
				}
				key := [2]string{ant, cons}
				if hasEdge[key] {
					continue
				}
				hasEdge[key] = true
				edges[ant] = append(edges[ant], cons)
				inDegree[cons]++
			}
		}
	}

	// Kahn's algorithm over the restricted graph. The queue starts in
	// input order so the result is deterministic.
	queue := make([]string, 0, len(input))
	for _, s := range input {
		if inDegree[s] == 0 {
			queue = append(queue, s)
		}
	}

	ordered := make([]string, 0, len(input))
	placed := make(map[string]bool, len(input))
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		ordered = append(ordered, cur)
		placed[cur] = true
		for _, next := range edges[cur] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	// Cycle fallback: append the unvisited skills in input order.
	for _, s := range input {
		if !placed[s] {
			ordered = append(ordered, s)
		}
	}
	return ordered
}
