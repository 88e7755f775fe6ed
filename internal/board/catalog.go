package board

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"job-board/internal/errors"
	"job-board/internal/models"
)

// Catalog is a read-only set of listings supplied by the operator.
type Catalog struct {
	jobs  []models.Job
	index map[string]int
}

func NewCatalog(jobs []models.Job) (*Catalog, error) {
	c := &Catalog{
		jobs:  make([]models.Job, 0, len(jobs)),
		index: make(map[string]int, len(jobs)),
	}
	for _, job := range jobs {
		if job.ID == "" {
			return nil, errors.InvalidInput(fmt.Sprintf("job %q has no id", job.Title), nil)
		}
		if !routableID(job.ID) {
			return nil, errors.InvalidInput(fmt.Sprintf("job id %q cannot be used in a /jobs/{id} path", job.ID), nil)
		}
		if _, dup := c.index[job.ID]; dup {
			return nil, errors.InvalidInput(fmt.Sprintf("duplicate job id %q", job.ID), nil)
		}
		c.index[job.ID] = len(c.jobs)
		c.jobs = append(c.jobs, job)
	}
	return c, nil
}

// routableID reports whether id survives the router as a single path
// segment. The router matches on the decoded path, so an escaped slash
// still splits the segment, and dot segments get cleaned away.
func routableID(id string) bool {
	return !strings.Contains(id, "/") && id != "." && id != ".."
}

// LoadCatalog reads a JSON array of listings. A missing file yields an
// empty catalog.
func LoadCatalog(filename string) (*Catalog, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return NewCatalog(nil)
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var jobs []models.Job
	if err := json.Unmarshal(content, &jobs); err != nil {
		return nil, errors.InvalidInput("decoding listings", err)
	}
	return NewCatalog(jobs)
}

func (c *Catalog) All() []models.Job {
	out := make([]models.Job, len(c.jobs))
	copy(out, c.jobs)
	return out
}

func (c *Catalog) Get(id string) (models.Job, error) {
	i, ok := c.index[id]
	if !ok {
		return models.Job{}, errors.NotFound(fmt.Sprintf("job %q", id), nil)
	}
	return c.jobs[i], nil
}
