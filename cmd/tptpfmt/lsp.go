package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/leoprover/go-tptp/internal/lsp"
	"github.com/leoprover/go-tptp/internal/tlog"
)

var lspVerbose bool

func lspCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Run a Language Server Protocol server over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := tlog.New(lspVerbose)
			defer logger.Sync()
			server := lsp.NewServer(logger)
			return server.Run(context.Background())
		},
	}
	cmd.Flags().BoolVar(&lspVerbose, "verbose", false, "enable debug-level server logging")
	return cmd
}
