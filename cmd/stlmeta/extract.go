package main

import (
	"errors"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/archivemeta/stlmeta/internal/config"
	"github.com/archivemeta/stlmeta/pkg/metadata"
	"github.com/archivemeta/stlmeta/pkg/stl"
	"github.com/archivemeta/stlmeta/pkg/validate"
)

func runExtract(cmd *cobra.Command, args []string) error {
	if fileFullName == "" {
		fmt.Fprintln(os.Stderr, "No argument with --file-full-name= found.")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = config.Default()
	}

	logger := newLogger(cfg)

	if err := extract(fileFullName, cfg, logger); err != nil {
		if noteErr := metadata.WriteFailureNote(os.Stderr, err.Error()); noteErr != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
	return nil
}

func newLogger(cfg *config.Config) *charmlog.Logger {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
	})
	if level, err := charmlog.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if verbose {
		logger.SetLevel(charmlog.DebugLevel)
	}
	return logger
}

// extract runs the full pipeline for one file: parse, validate, stat,
// assemble, serialize. Any error aborts processing for this file with no
// partial metadata output.
func extract(path string, cfg *config.Config, logger *charmlog.Logger) error {
	model, err := stl.ParseFile(path)
	if err != nil {
		return describeParseError(err)
	}
	for _, warning := range model.Warnings {
		logger.Warn(warning)
	}

	report := validate.Analyze(model, validate.Options{
		Tolerance: cfg.Tolerance,
		Logger:    logger,
	})

	warningCount := len(model.Warnings) + len(report.Warnings)
	logger.Debug("validated model",
		"file", path,
		"format", model.Format,
		"triangles", model.TriangleCount(),
		"warnings", warningCount)
	logger.Debug(metadata.FormatDetailNote("STL", "1.0",
		fmt.Sprintf("errors: 0, warnings: %d", warningCount)))

	attrs, err := metadata.Stat(path, cfg.ChecksumAlgorithm)
	if err != nil {
		return err
	}

	record := metadata.BuildRecord(attrs, model, report)
	return record.WriteXML(os.Stdout)
}

// describeParseError prefixes grammar and layout violations with the
// validation-failed wording the pipeline expects in its detail note,
// including the error and warning counts from this parse.
func describeParseError(err error) error {
	var syntaxErr *stl.SyntaxError
	var nameErr *stl.NameMismatchError
	if errors.As(err, &syntaxErr) || errors.As(err, &nameErr) || errors.Is(err, stl.ErrMalformedFile) {
		warnings := 0
		var failure *stl.ParseFailure
		if errors.As(err, &failure) {
			warnings = failure.Warnings
		}
		return fmt.Errorf("STL file validation failed, errors: 1, warnings: %d, first error on %s", warnings, err)
	}
	return err
}
