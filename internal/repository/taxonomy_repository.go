package repository

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"

	"skill-path/internal/domain/skillset"
)

// sampleTaxonomy backs the taxonomy when no file is available, so the
// categorized displays and priority scoring still have something to work
// with in a fresh checkout.
var sampleTaxonomy = map[string]string{
	"python":           "programming",
	"sql":              "databases",
	"machine learning": "machine_learning",
	"excel":            "tools",
	"tableau":          "visualization",
	"aws":              "cloud",
	"docker":           "devops",
	"javascript":       "programming",
	"react":            "programming",
}

// TaxonomyRepository resolves the skill -> category lookup.
type TaxonomyRepository interface {
	LoadSkillCategories(path string) (map[string]string, error)
}

type CSVTaxonomyRepository struct {
	logger *log.Logger
}

func NewCSVTaxonomyRepository(logger *log.Logger) *CSVTaxonomyRepository {
	if logger == nil {
		logger = log.Default()
	}
	return &CSVTaxonomyRepository{logger: logger}
}

// LoadSkillCategories reads the taxonomy CSV (skill_group_name,
// skill_group_category). A missing or unreadable file falls back to the
// built-in sample taxonomy.
func (r *CSVTaxonomyRepository) LoadSkillCategories(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Printf("[Taxonomy] %s not found, using sample taxonomy", path)
			return cloneTaxonomy(sampleTaxonomy), nil
		}
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		r.logger.Printf("[Taxonomy] unreadable header in %s, using sample taxonomy", path)
		return cloneTaxonomy(sampleTaxonomy), nil
	}
	cols := headerIndex(header)
	nameIdx, nameOK := cols["skill_group_name"]
	catIdx, catOK := cols["skill_group_category"]
	if !nameOK || !catOK {
		r.logger.Printf("[Taxonomy] required columns missing in %s, using sample taxonomy", path)
		return cloneTaxonomy(sampleTaxonomy), nil
	}

	out := make(map[string]string)
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			continue
		}
		name := skillset.Normalize(field(row, nameIdx))
		cat := skillset.Normalize(field(row, catIdx))
		if name == "" || cat == "" {
			continue
		}
		out[name] = cat
	}

	if len(out) == 0 {
		return cloneTaxonomy(sampleTaxonomy), nil
	}
	return out, nil
}

func cloneTaxonomy(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
