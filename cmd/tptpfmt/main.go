// Command tptpfmt checks, formats and serves TPTP problem files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "tptpfmt",
		Short: "Parse, check, format and serve TPTP problem files",
		Long: `tptpfmt parses TPTP problem files across all six dialects (THF, TFF, FOF,
TCF, CNF, TPI) plus their non-classical extensions, and exposes that parser
as a linter (check), a canonical formatter (fmt), and a language server (lsp).`,
	}

	root.AddCommand(checkCmd(), fmtCmd(), lspCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
