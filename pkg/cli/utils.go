package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode JSON output")
	}
	return nil
}

// configError logs a configuration error before the command aborts with it
func configError(ctx context.Context, msg string, err error) error {
	ctxlog.From(ctx).Error(msg, "error", err)
	return err
}
