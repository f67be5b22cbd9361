package compile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"formc/state"
)

// Inspect implements the "inspect" command: prints a human readable tree
// dump of every document found under SOURCE to STDOUT.
func Inspect(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	applyZipEncoding(cmd, env, log)

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return fmt.Errorf("no input source has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	count := 0
	return process(ctx, src, log, func(data []byte, s source) error {
		doc, err := loadDocument(data, s.Rel, log)
		if err != nil {
			return err
		}
		if count > 0 {
			fmt.Fprintln(os.Stdout)
		}
		count++
		fmt.Fprintf(os.Stdout, "%s\n%s", s.Rel, doc)
		return nil
	})
}
