package repository

import (
	"log"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadStoreParsesFrozensetCells(t *testing.T) {
	dir := t.TempDir()
	csvBody := "antecedents,consequents,support,confidence,lift\n" +
		"\"frozenset({'python'})\",\"frozenset({'machine learning'})\",0.05,0.8,1.5\n" +
		"\"['sql']\",\"['tableau', 'power bi']\",0.02,0.6,1.2\n"
	path := writeFile(t, dir, "rules.csv", csvBody)

	repo := NewCSVRuleRepository(log.New(os.Stderr, "", 0))
	store, err := repo.LoadStore(path, "skills")
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	if len(store.Rules) != 2 {
		t.Fatalf("loaded %d rules, want 2", len(store.Rules))
	}

	first := store.Rules[0]
	if !reflect.DeepEqual(first.Antecedents.Sorted(), []string{"python"}) {
		t.Fatalf("antecedents = %v", first.Antecedents.Sorted())
	}
	if !reflect.DeepEqual(first.Consequents.Sorted(), []string{"machine learning"}) {
		t.Fatalf("consequents = %v", first.Consequents.Sorted())
	}
	if first.Support != 0.05 || first.Confidence != 0.8 || first.Lift != 1.5 {
		t.Fatalf("metrics = %v/%v/%v", first.Support, first.Confidence, first.Lift)
	}

	second := store.Rules[1]
	if !reflect.DeepEqual(second.Consequents.Sorted(), []string{"power bi", "tableau"}) {
		t.Fatalf("second consequents = %v", second.Consequents.Sorted())
	}
}

func TestLoadStoreSkipsInvalidRows(t *testing.T) {
	dir := t.TempDir()
	csvBody := "antecedents,consequents,support,confidence,lift\n" +
		"\"['python']\",\"['sql']\",0.05,0.8,1.5\n" +
		"\"['python']\",\"['python']\",0.05,0.8,1.5\n" + // overlapping sets
		"\"\",\"['sql']\",0.05,0.8,1.5\n" // empty antecedents
	path := writeFile(t, dir, "rules.csv", csvBody)

	repo := NewCSVRuleRepository(nil)
	store, err := repo.LoadStore(path, "skills")
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	if len(store.Rules) != 1 {
		t.Fatalf("loaded %d rules, want 1", len(store.Rules))
	}
}

func TestLoadStoreDefaultsUnparseableMetrics(t *testing.T) {
	dir := t.TempDir()
	csvBody := "antecedents,consequents,support,confidence,lift\n" +
		"\"['python']\",\"['sql']\",oops,,1.5\n"
	path := writeFile(t, dir, "rules.csv", csvBody)

	repo := NewCSVRuleRepository(nil)
	store, err := repo.LoadStore(path, "skills")
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	if len(store.Rules) != 1 {
		t.Fatalf("loaded %d rules, want 1", len(store.Rules))
	}
	r := store.Rules[0]
	if r.Support != 0 || r.Confidence != 0 || r.Lift != 1.5 {
		t.Fatalf("metrics = %v/%v/%v, want 0/0/1.5", r.Support, r.Confidence, r.Lift)
	}
}

func TestLoadStoreMissingFileYieldsEmptyStore(t *testing.T) {
	repo := NewCSVRuleRepository(nil)
	store, err := repo.LoadStore(filepath.Join(t.TempDir(), "nope.csv"), "skills")
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	if store.Name != "skills" || !store.Empty() {
		t.Fatalf("store = %+v, want empty %q store", store, "skills")
	}
}

func TestLoadStoreMissingRequiredColumns(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rules.csv", "foo,bar\n1,2\n")

	repo := NewCSVRuleRepository(nil)
	store, err := repo.LoadStore(path, "skills")
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("store = %+v, want empty", store)
	}
}

func TestLoadEnsemble(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, SkillsRulesFile,
		"antecedents,consequents,support,confidence,lift\n"+
			"\"['python']\",\"['sql']\",0.05,0.8,1.5\n")
	// categories and combined files intentionally absent

	repo := NewCSVRuleRepository(nil)
	e, err := repo.LoadEnsemble(dir)
	if err != nil {
		t.Fatalf("LoadEnsemble: %v", err)
	}
	if len(e.Stores()) != 3 {
		t.Fatalf("stores = %d, want 3", len(e.Stores()))
	}
	if e.TotalRules() != 1 {
		t.Fatalf("total rules = %d, want 1", e.TotalRules())
	}
	names := []string{e.Stores()[0].Name, e.Stores()[1].Name, e.Stores()[2].Name}
	if !reflect.DeepEqual(names, []string{"skills", "categories", "combined"}) {
		t.Fatalf("store names = %v", names)
	}
}
