package compile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"formc/state"
	"formc/structure"
)

// Schema implements the "schema" command: dumps one or all structure
// schemas as JSON to STDOUT for host UIs to consume.
func Schema(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("schema")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var out any
	if name := cmd.Args().Get(0); len(name) != 0 {
		adapter, err := structure.ForName(name)
		if err != nil {
			return err
		}
		out = adapter.Schema()
	} else {
		all := make(map[string]*structure.Schema, len(structure.KindNames()))
		for _, name := range structure.KindNames() {
			adapter, err := structure.ForName(name)
			if err != nil {
				return err
			}
			all[name] = adapter.Schema()
		}
		out = all
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialize schema: %w", err)
	}
	data = append(data, '\n')

	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("unable to write schema: %w", err)
	}
	return nil
}
