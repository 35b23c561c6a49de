package repository

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"skill-path/internal/domain/skillset"
)

// JobListing is one job row: a title plus its required skill list. The
// skill cell uses the same itemset encodings as the rule exports.
type JobListing struct {
	Title          string
	RequiredSkills []string
}

// JobRepository loads the job listings consumed by the UI layer.
type JobRepository interface {
	LoadJobs(path string) ([]JobListing, error)
}

type CSVJobRepository struct {
	logger *log.Logger
}

func NewCSVJobRepository(logger *log.Logger) *CSVJobRepository {
	if logger == nil {
		logger = log.Default()
	}
	return &CSVJobRepository{logger: logger}
}

// sampleJobs keep the API usable when no jobs export is present.
var sampleJobs = []JobListing{
	{Title: "Data Scientist", RequiredSkills: []string{"python", "sql", "machine learning", "pandas", "numpy"}},
	{Title: "Machine Learning Engineer", RequiredSkills: []string{"python", "machine learning", "tensorflow", "pytorch", "docker"}},
	{Title: "Data Analyst", RequiredSkills: []string{"sql", "excel", "tableau", "python", "statistics"}},
	{Title: "Python Developer", RequiredSkills: []string{"python", "django", "flask", "sql", "git"}},
	{Title: "Software Engineer", RequiredSkills: []string{"javascript", "react", "node.js", "sql", "git"}},
	{Title: "DevOps Engineer", RequiredSkills: []string{"docker", "kubernetes", "aws", "jenkins", "terraform"}},
	{Title: "Business Analyst", RequiredSkills: []string{"excel", "sql", "tableau", "power bi", "analytics"}},
	{Title: "Data Engineer", RequiredSkills: []string{"python", "sql", "aws", "spark", "hadoop"}},
	{Title: "Backend Developer", RequiredSkills: []string{"python", "java", "spring", "sql", "microservices"}},
}

// LoadJobs reads the jobs CSV (job_title, skill_list). Rows with titles
// shorter than three characters are dropped; a missing file falls back
// to the sample listings.
func (r *CSVJobRepository) LoadJobs(path string) ([]JobListing, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Printf("[Jobs] %s not found, using sample jobs", path)
			return cloneJobs(sampleJobs), nil
		}
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return cloneJobs(sampleJobs), nil
	}
	cols := headerIndex(header)
	titleIdx, titleOK := cols["job_title"]
	skillIdx, skillOK := cols["skill_list"]
	if !titleOK || !skillOK {
		r.logger.Printf("[Jobs] required columns missing in %s, using sample jobs", path)
		return cloneJobs(sampleJobs), nil
	}

	out := make([]JobListing, 0)
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			continue
		}
		title := strings.TrimSpace(field(row, titleIdx))
		if len(title) < 3 || strings.EqualFold(title, "nan") {
			continue
		}
		skills := skillset.ParseItemSet(field(row, skillIdx)).Sorted()
		if len(skills) == 0 {
			continue
		}
		out = append(out, JobListing{Title: title, RequiredSkills: skills})
	}

	if len(out) == 0 {
		r.logger.Printf("[Jobs] no usable rows in %s, using sample jobs", path)
		return cloneJobs(sampleJobs), nil
	}
	r.logger.Printf("[Jobs] loaded %d jobs from %s", len(out), path)
	return out, nil
}

func cloneJobs(src []JobListing) []JobListing {
	out := make([]JobListing, len(src))
	copy(out, src)
	return out
}
