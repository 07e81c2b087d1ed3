package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leoprover/go-tptp/parser"
)

var fmtWrite bool

func fmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <file>...",
		Short: "Print each file's canonical pretty-printed form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := fmtFile(path); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result back to the file instead of stdout")
	return cmd
}

func fmtFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	problem, err := parser.ParseProblem(string(data))
	if err != nil {
		return err
	}
	out := problem.String()
	if fmtWrite {
		return os.WriteFile(path, []byte(out), 0o644)
	}
	_, err = fmt.Print(out)
	return err
}
