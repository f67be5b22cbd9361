package compile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"formc/form"
	"formc/state"
	"formc/structure"
)

// Compile implements the "compile" command: synthesizes the element tree of
// every document found under SOURCE from its mapping and writes render-ready
// documents under DESTINATION.
func Compile(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compile")

	src, dst, err := sourceArgs(cmd, log)
	if err != nil {
		return err
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")
	applyZipEncoding(cmd, env, log)

	check := cmd.Bool("check")

	// A directory of documents sharing one mapping flavor repeats the same
	// synthesis diagnostics for every file. Sample them.
	synthLog := zap.New(zapcore.NewSamplerWithOptions(log.Core(), time.Minute, 1, 0))

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, log, func(data []byte, s source) error {
		return compileDocument(ctx, data, s, dst, check, synthLog, log)
	})
}

// compileDocument compiles a single document. "s.Rel" is the source path
// relative to the original input (just the base name when an actual file was
// specified) and drives output naming. "dst" is the destination directory.
func compileDocument(ctx context.Context, data []byte, s source, dst string, check bool, synthLog, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Info("Compilation starting", zap.String("from", s.Rel))
	defer func(start time.Time) {
		log.Info("Compilation completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
	}(time.Now())

	doc, err := loadDocument(data, s.Rel, log)
	if err != nil {
		return err
	}

	adapter, err := structure.ForName(doc.Structure)
	if err != nil {
		return fmt.Errorf("document (%s): %w", s.Rel, err)
	}

	// Mapping problems are surfaced but do not stop compilation, synthesis
	// handles any mapping.
	for _, issue := range adapter.Validate(&doc.Mapping).Errors {
		log.Warn("Mapping problem",
			zap.String("source", s.Rel), zap.String("path", issue.Path), zap.String("problem", issue.Message))
	}

	doc.Elements = adapter.Synthesize(doc, synthLog)

	if check {
		first := form.Signature(doc.Elements)
		if again := form.Signature(adapter.Synthesize(doc, zap.NewNop())); again != first {
			return fmt.Errorf("synthesis of (%s) is not stable", s.Rel)
		}
	}

	outputName = buildOutputPath(doc, s.Rel, dst, ".json", env)

	if err := prepareOutput(outputName, env.Overwrite, log); err != nil {
		return err
	}

	out, err := form.Encode(doc, env.Cfg.Compile.Pretty)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputName, out, 0644); err != nil {
		return fmt.Errorf("unable to write compiled document: %w", err)
	}

	// Store compilation result for debugging
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%s%s", doc.ID, filepath.Ext(outputName)), outputName)
	}

	return nil
}
