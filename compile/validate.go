package compile

import (
	"context"
	"fmt"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"formc/catalog"
	"formc/state"
	"formc/structure"
)

// Validate implements the "validate" command: checks every document found
// under SOURCE against its structure schema and, when a record catalog is
// available, lints record bindings against it. Exits non-zero when any
// document fails.
func Validate(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("validate")

	applyZipEncoding(cmd, env, log)

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return fmt.Errorf("no input source has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}

	catPath := cmd.String("catalog")
	if len(catPath) == 0 {
		catPath = env.Cfg.Catalog.Path
	}
	var cat *catalog.Catalog
	if len(catPath) != 0 {
		if cat, err = catalog.Load(catPath, env.Cfg.Catalog.Encoding); err != nil {
			return fmt.Errorf("unable to load record catalog: %w", err)
		}
		log.Debug("Linting bindings against record catalog",
			zap.String("catalog", catPath),
			zap.Int("fields", len(cat.RecordFields)), zap.Int("subtables", len(cat.Subtables)))
	}

	var total, failed int
	err = process(ctx, src, log, func(data []byte, s source) error {
		total++

		doc, err := loadDocument(data, s.Rel, log)
		if err != nil {
			failed++
			return err
		}

		adapter, err := structure.ForName(doc.Structure)
		if err != nil {
			failed++
			return fmt.Errorf("document (%s): %w", s.Rel, err)
		}

		res := adapter.Validate(&doc.Mapping)
		if cat != nil {
			res.Merge(catalog.Lint(cat, adapter.Schema(), &doc.Mapping))
		}

		for _, issue := range res.Errors {
			log.Warn("Mapping problem",
				zap.String("source", s.Rel), zap.String("path", issue.Path), zap.String("problem", issue.Message))
		}
		if !res.OK {
			failed++
			return fmt.Errorf("document is not valid (%s), problems: %d", s.Rel, len(res.Errors))
		}

		log.Info("Document is valid", zap.String("source", s.Rel), zap.String("structure", doc.Structure))
		return nil
	})
	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d out of %d documents failed validation", failed, total)
	}
	return nil
}
