package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/1129kyoto/sitecontent/internal/entrypoint"
)

// ServeCommand serves llms.txt and the JSON-LD documents over HTTP.
type ServeCommand struct {
	globals *Globals

	Port int32
}

func NewServeCommand(globals *Globals) *ServeCommand {
	return &ServeCommand{globals: globals}
}

func (cmd *ServeCommand) Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve llms.txt and structured data from the published content",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Run(c.Context())
		},
	}
	c.Flags().Int32Var(&cmd.Port, "port", 0, "listen port (default $PORT)")
	return c
}

func (cmd *ServeCommand) Run(ctx context.Context) error {
	cfg := cmd.globals.Config
	if cmd.Port > 0 {
		cfg.HTTP.Port = cmd.Port
	}
	return entrypoint.Run(ctx, cfg, cmd.globals.Version, cmd.globals.logger())
}
