package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/api"
	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/config"
	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/engine"
	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/extractor"
	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/logger"
	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/models"
	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/writer"
)

func main() {
	serveFlag := flag.Bool("serve", false, "Run the HTTP API server instead of processing files")
	userFlag := flag.String("user", "", "User ID to attach to prepared storage records")
	formatFlag := flag.String("format", "json", "Output format: json or csv")
	outputFlag := flag.String("output", "", "Output file path (defaults to stdout)")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Personal Finance Assistant — statement engine

Interprets bank statement text and recovers structured transactions
(date, amount, direction, description, category) without a per-bank
schema.

Usage:
  statement-engine [flags] <statement.pdf|statement.txt> [more files ...]
  statement-engine --serve

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Interpret a statement and print JSON
  statement-engine statement.pdf

  # CSV output with summary rows
  statement-engine --format=csv --output=transactions.csv statement.pdf

  # Attach a user ID for downstream persistence
  statement-engine --user=user-42 statement.txt

  # Run the HTTP API (PFA_ADDR, PFA_LOG_LEVEL, PFA_MAX_UPLOAD_BYTES)
  statement-engine --serve
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("statement-engine v%s\n", api.Version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fatalf("config: %v\n", err)
	}
	log := logger.New(cfg.LogLevel)

	if *serveFlag {
		if err := api.Serve(cfg, log); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	eng := engine.New()
	ext := extractor.Extractor{}
	for _, path := range flag.Args() {
		if err := processFile(eng, ext, path, *userFlag, *formatFlag, *outputFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

func processFile(eng *engine.Engine, ext extractor.Extractor, path, userID, format, outputPath string) error {
	text, err := ext.ExtractFile(path)

	// Extraction failure is a document-level failure: report it as a
	// structured result, never a partial transaction list.
	var result *models.ProcessingResult
	if err != nil {
		result = models.FailureResult(fmt.Sprintf("text extraction failed: %v", err))
	} else {
		result = eng.ProcessText(text)
	}

	out := os.Stdout
	if outputPath != "" {
		f, createErr := os.Create(outputPath)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}
		defer f.Close()
		out = f
	}

	switch strings.ToLower(format) {
	case "json":
		payload := struct {
			*models.ProcessingResult
			Records []models.TransactionRecord `json:"records,omitempty"`
		}{ProcessingResult: result}
		if userID != "" && result.Success {
			payload.Records = engine.PrepareRecords(userID, result.Transactions)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(payload); encErr != nil {
			return fmt.Errorf("encoding result: %w", encErr)
		}
	case "csv":
		w := &writer.CSVWriter{IncludeSummary: true}
		if writeErr := w.Write(out, result); writeErr != nil {
			return fmt.Errorf("writing CSV: %w", writeErr)
		}
	default:
		return fmt.Errorf("unknown output format %q (expected json or csv)", format)
	}

	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}
	return nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
