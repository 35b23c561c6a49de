package path

import (
	"reflect"
	"sort"
	"testing"

	"skill-path/internal/domain/rules"
	"skill-path/internal/domain/skillset"
)

func seqRule(ant, cons string, confidence float64) rules.Rule {
	return rules.Rule{
		Antecedents: skillset.NewSet(ant),
		Consequents: skillset.NewSet(cons),
		Confidence:  confidence,
		Support:     0.05,
		Lift:        1.2,
	}
}

func TestSuggestSequencePrerequisiteFirst(t *testing.T) {
	ruleSet := []rules.Rule{seqRule("python", "machine learning", 0.9)}

	got := SuggestSequence([]string{"machine learning", "python"}, ruleSet)
	want := []string{"python", "machine learning"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sequence = %v, want %v", got, want)
	}
}

func TestSuggestSequenceIgnoresWeakEdges(t *testing.T) {
	// At or below the threshold the rule contributes no edge, so input
	// order wins.
	ruleSet := []rules.Rule{seqRule("python", "machine learning", 0.6)}

	got := SuggestSequence([]string{"machine learning", "python"}, ruleSet)
	want := []string{"machine learning", "python"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sequence = %v, want %v", got, want)
	}
}

func TestSuggestSequenceIsPermutation(t *testing.T) {
	in := []string{"d", "c", "b", "a"}
	ruleSet := []rules.Rule{
		seqRule("a", "b", 0.9),
		seqRule("b", "c", 0.8),
	}

	got := SuggestSequence(in, ruleSet)
	if len(got) != len(in) {
		t.Fatalf("length = %d, want %d", len(got), len(in))
	}
	sorted := append([]string(nil), got...)
	sort.Strings(sorted)
	if !reflect.DeepEqual(sorted, []string{"a", "b", "c", "d"}) {
		t.Fatalf("not a permutation: %v", got)
	}
	idx := map[string]int{}
	for i, s := range got {
		idx[s] = i
	}
	if idx["a"] > idx["b"] || idx["b"] > idx["c"] {
		t.Fatalf("edge order violated: %v", got)
	}
}

func TestSuggestSequenceCycleFallsBackToInputOrder(t *testing.T) {
	ruleSet := []rules.Rule{
		seqRule("a", "b", 0.9),
		seqRule("b", "a", 0.9),
	}

	got := SuggestSequence([]string{"b", "a"}, ruleSet)
	want := []string{"b", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sequence = %v, want input order %v", got, want)
	}
}

func TestSuggestSequenceDedupsAndNormalizes(t *testing.T) {
	got := SuggestSequence([]string{"  Python ", "python", "", "SQL"}, nil)
	want := []string{"python", "sql"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sequence = %v, want %v", got, want)
	}
}

func TestSuggestSequenceEmptyInput(t *testing.T) {
	if got := SuggestSequence(nil, nil); len(got) != 0 {
		t.Fatalf("sequence = %v, want empty", got)
	}
}

func TestSuggestSequenceIgnoresRulesOutsideInput(t *testing.T) {
	// Rule endpoints outside the input set must not create edges or
	// introduce new skills.
	ruleSet := []rules.Rule{seqRule("python", "machine learning", 0.9)}

	got := SuggestSequence([]string{"sql", "docker"}, ruleSet)
	want := []string{"sql", "docker"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sequence = %v, want %v", got, want)
	}
}
