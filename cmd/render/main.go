package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"job-board/internal/board"
	"job-board/internal/jobcard"
	"job-board/internal/logger"
)

func main() {
	jobsFile := flag.String("jobs", "", "JSON file with job listings")
	out := flag.String("out", "", "Output HTML file")
	title := flag.String("title", "Open Positions", "Board title")
	showSalary := flag.Bool("show-salary", false, "Show salary rows")
	savedIDs := flag.String("saved", "", "Comma separated ids to mark as saved")
	flag.Parse()

	logger.Init(os.Getenv("LOG_LEVEL"))

	if *jobsFile == "" {
		log.Fatal().Msg("Listings file is required")
	}

	if *out == "" {
		*out = strings.TrimSuffix(*jobsFile, filepath.Ext(*jobsFile)) + ".html"
	}

	catalog, err := board.LoadCatalog(*jobsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load listings")
	}

	saved := board.NewSavedSet()
	for _, id := range strings.Split(*savedIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			saved.Toggle(id)
		}
	}

	// A static page has no one to hand actions to, so cards carry no
	// apply or save controls.
	var props []jobcard.Props
	for _, job := range catalog.All() {
		p := jobcard.FromJob(job)
		p.IsSaved = saved.Has(job.ID)
		p.ShowSalary = *showSalary
		props = append(props, p)
	}

	renderer := jobcard.NewRenderer(logger.Get())
	page, err := board.BuildPage(renderer, *title, time.Now(), saved.Len(), props)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build page")
	}

	var buf bytes.Buffer
	if err := board.WritePage(&buf, page); err != nil {
		log.Fatal().Err(err).Msg("Failed to write page")
	}

	if err := os.WriteFile(*out, buf.Bytes(), 0644); err != nil {
		log.Fatal().Err(err).Str("file", *out).Msg("Failed to save page")
	}
	log.Info().Int("jobs", len(props)).Str("file", *out).Msg("Board rendered")
}
