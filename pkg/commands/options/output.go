// Package options defines shared flag helpers for CLI commands.
package options

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&po.JSON, "json", false,
		"Output errors as JSON.")
}

// HandleError reports err on the command output as {"error": ...} when JSON
// output is on. The error is still returned so the exit status reflects it.
func (o *OutputOptions) HandleError(cmd *cobra.Command, err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, merr := json.Marshal(out)
		if merr != nil {
			return merr
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(b))
		cmd.SilenceErrors = true
	}
	return err
}
