package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/mazohq/beam-parser/constants"
	"github.com/mazohq/beam-parser/internal/common"
	"github.com/mazohq/beam-parser/internal/entity"
	"github.com/mazohq/beam-parser/internal/export"
	"github.com/mazohq/beam-parser/internal/extract"
	"github.com/mazohq/beam-parser/internal/history"
	"github.com/mazohq/beam-parser/internal/llm/openai"
	"github.com/mazohq/beam-parser/internal/parser"
	"github.com/mazohq/beam-parser/internal/session"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		jdDir     = flag.String("jd-dir", "", "directory of job description files (required)")
		resumeDir = flag.String("resume-dir", "", "directory of resume files (required)")
		out       = flag.String("out", "", "output XLSX file path (optional, defaults to the resume directory's parent)")
		user      = flag.String("user", "", "user id recorded with the history entry")
	)
	flag.Parse()

	if *jdDir == "" || *resumeDir == "" {
		printError("Error: --jd-dir and --resume-dir are required\n")
		os.Exit(1)
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	jdDocs, err := loadDirectory(*jdDir)
	if err != nil {
		logger.Error("failed to read job description directory", "dir", *jdDir, "error", err)
		os.Exit(1)
	}
	resumeDocs, err := loadDirectory(*resumeDir)
	if err != nil {
		logger.Error("failed to read resume directory", "dir", *resumeDir, "error", err)
		os.Exit(1)
	}
	if len(jdDocs) == 0 || len(resumeDocs) == 0 {
		printError("Error: both directories must contain at least one PDF or DOCX file\n")
		os.Exit(1)
	}

	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	extractor := extract.NewExtractor(logger)
	parserSvc := parser.NewService(cfg.Parser, extractor, client, logger)
	sess := session.New(cfg.Session, parserSvc, logger)

	progress := func(stage string) parser.ProgressFunc {
		return func(percent float64) {
			fmt.Printf("%s: %.0f%%\n", stage, percent)
		}
	}

	logger.Info("parsing job descriptions", "files", len(jdDocs))
	jdSummary, err := sess.AddJobDescriptions(ctx, jdDocs, progress("job descriptions"))
	if err != nil {
		logger.Error("job description upload rejected", "error", err)
		os.Exit(1)
	}

	logger.Info("parsing resumes", "files", len(resumeDocs))
	resumeSummary, err := sess.AddResumes(ctx, resumeDocs, progress("resumes"))
	if err != nil {
		logger.Error("resume upload rejected", "error", err)
		os.Exit(1)
	}

	snap := sess.Snapshot()
	if len(snap.JobDescriptions) == 0 || len(snap.Candidates) == 0 {
		printError("Error: nothing to report; all files failed to parse\n")
		os.Exit(1)
	}

	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		logger.Error("failed to open history store", "path", cfg.History.DBPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("history store close", "error", err)
		}
	}()

	rec, err := store.Insert(ctx, *user, snap)
	if err != nil {
		logger.Error("failed to record history", "error", err)
		os.Exit(1)
	}

	exporter := export.NewService(logger)
	report, err := exporter.BuildReport(snap, constants.PaletteStandard)
	if err != nil {
		logger.Error("failed to build report", "error", err)
		os.Exit(1)
	}

	if *out == "" {
		*out = filepath.Join(filepath.Dir(*resumeDir), export.Filename(time.Now()))
	}
	if err := os.WriteFile(*out, report, 0644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"jds_accepted", jdSummary.Accepted,
		"jds_failed", jdSummary.Failed,
		"resumes_accepted", resumeSummary.Accepted,
		"resumes_failed", resumeSummary.Failed,
		"history_id", rec.ID.String(),
		"output_file", *out)

	fmt.Printf("Batch complete!\n")
	fmt.Printf("- Job descriptions: %d accepted, %d failed\n", jdSummary.Accepted, jdSummary.Failed)
	fmt.Printf("- Resumes: %d accepted, %d failed\n", resumeSummary.Accepted, resumeSummary.Failed)
	fmt.Printf("- Output: %s\n", *out)
}

// loadDirectory reads every parseable file in dir (non-recursive) into memory.
func loadDirectory(dir string) ([]entity.RawDocument, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var docs []entity.RawDocument
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		mediaType := constants.DetectMediaType(entry.Name())
		if mediaType == "" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		docs = append(docs, entity.RawDocument{
			Content:   content,
			MediaType: mediaType,
			Filename:  entry.Name(),
		})
	}
	return docs, nil
}
