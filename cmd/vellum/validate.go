package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vellum-ui/vellum/internal/config"
	"github.com/vellum-ui/vellum/pkg/components"
	"github.com/vellum-ui/vellum/pkg/document"
	"github.com/vellum-ui/vellum/pkg/store"
)

func validateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Validate document files",
		Long: `Validate document files against the built-in component registry.

With no arguments, validates every document in the configured
documents directory. Validation checks tag registration, version
compatibility, and attribute shapes; --strict additionally runs
the full decode so factory-level errors surface too.

Examples:
  vellum validate
  vellum validate documents/login.vellum.json
  vellum validate --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Also run the full decode")

	return cmd
}

func runValidate(files []string, strict bool) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		files, err = documentFiles(cfg.Documents)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			info("no documents found in %s", cfg.Documents)
			return nil
		}
	}

	failed := 0
	for _, path := range files {
		if errs := validateFile(engine, path, strict); len(errs) > 0 {
			failed++
			errorMsg("%s", path)
			for _, e := range errs {
				info("  %v", e)
			}
		} else {
			success("%s", path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(files))
	}
	return nil
}

func validateFile(engine *document.Engine, path string, strict bool) []error {
	data, err := os.ReadFile(path)
	if err != nil {
		return []error{err}
	}

	var doc document.Node
	if err := json.Unmarshal(data, &doc); err != nil {
		return []error{fmt.Errorf("invalid JSON: %w", err)}
	}

	errs := engine.Validate(&doc)
	if strict && len(errs) == 0 {
		if _, err := engine.Unmarshal(data); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func documentFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), store.DocumentExt) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// newEngine builds a decode engine over the built-in components,
// honoring the configured depth limit.
func newEngine(cfg *config.Config) (*document.Engine, error) {
	reg, err := components.NewRegistry()
	if err != nil {
		return nil, err
	}
	return document.New(reg, document.WithMaxDepth(cfg.MaxDepth)), nil
}
