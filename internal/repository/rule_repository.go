package repository

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"skill-path/internal/domain/rules"
	"skill-path/internal/domain/skillset"
)

// Conventional rule export file names, one per granularity.
const (
	SkillsRulesFile     = "association_rules_skills.csv"
	CategoriesRulesFile = "association_rules_categories.csv"
	CombinedRulesFile   = "association_rules_combined.csv"
)

// RuleRepository loads association-rule tables into immutable stores.
type RuleRepository interface {
	LoadStore(path, name string) (*rules.Store, error)
	LoadEnsemble(dir string) (*rules.Ensemble, error)
}

// CSVRuleRepository reads the rule exports produced by the mining
// pipeline. Cell encodings vary between exports, so itemset cells go
// through skillset.ParseItemSet; bad rows are skipped, never fatal.
type CSVRuleRepository struct {
	logger *log.Logger
}

func NewCSVRuleRepository(logger *log.Logger) *CSVRuleRepository {
	if logger == nil {
		logger = log.Default()
	}
	return &CSVRuleRepository{logger: logger}
}

// LoadStore parses one rule CSV into a store. A missing file yields an
// empty store so downstream components degrade to "no model signal"
// instead of crashing.
func (r *CSVRuleRepository) LoadStore(path, name string) (*rules.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Printf("[Rules] %s not found, loading empty store %q", path, name)
			return rules.NewStore(name, nil), nil
		}
		return nil, err
	}
	defer f.Close()

	loaded, skipped := r.parseRules(f)
	if skipped > 0 {
		r.logger.Printf("[Rules] store %q: skipped %d malformed rows", name, skipped)
	}
	r.logger.Printf("[Rules] store %q: loaded %d rules from %s", name, len(loaded), filepath.Base(path))
	return rules.NewStore(name, loaded), nil
}

// LoadEnsemble loads the three conventional granularities from dir.
// Absent files contribute empty stores.
func (r *CSVRuleRepository) LoadEnsemble(dir string) (*rules.Ensemble, error) {
	stores := make([]*rules.Store, 0, 3)
	for _, spec := range []struct {
		file, name string
	}{
		{SkillsRulesFile, "skills"},
		{CategoriesRulesFile, "categories"},
		{CombinedRulesFile, "combined"},
	} {
		store, err := r.LoadStore(filepath.Join(dir, spec.file), spec.name)
		if err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}
	return rules.NewEnsemble(stores...), nil
}

func (r *CSVRuleRepository) parseRules(src io.Reader) (loaded []rules.Rule, skipped int) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0
	}
	cols := headerIndex(header)
	antIdx, antOK := cols["antecedents"]
	conIdx, conOK := cols["consequents"]
	if !antOK || !conOK {
		return nil, 0
	}

	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			skipped++
			continue
		}

		rule := rules.Rule{
			Antecedents: skillset.ParseItemSet(field(row, antIdx)),
			Consequents: skillset.ParseItemSet(field(row, conIdx)),
			Support:     parseFloat(row, cols, "support"),
			Confidence:  parseFloat(row, cols, "confidence"),
			Lift:        parseFloat(row, cols, "lift"),
		}
		if !rule.Valid() {
			skipped++
			continue
		}
		loaded = append(loaded, rule)
	}
	return loaded, skipped
}

func headerIndex(header []string) map[string]int {
	out := make(map[string]int, len(header))
	for i, h := range header {
		out[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return out
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseFloat coerces a numeric cell; anything unparseable defaults to 0
// rather than aborting the load.
func parseFloat(row []string, cols map[string]int, name string) float64 {
	idx, ok := cols[name]
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(field(row, idx)), 64)
	if err != nil {
		return 0
	}
	return v
}
