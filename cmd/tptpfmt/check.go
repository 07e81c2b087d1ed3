package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/leoprover/go-tptp/internal/config"
	"github.com/leoprover/go-tptp/parser"
	"github.com/leoprover/go-tptp/reporter"
)

var checkIncludePath []string

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse each file and report the first error, if any",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			includePaths := checkIncludePath
			if len(includePaths) == 0 {
				includePaths = cfg.IncludePaths
			}

			failed := 0
			for _, path := range args {
				if err := checkFile(path, includePaths); err != nil {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d file(s) failed to parse", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&checkIncludePath, "include-path", nil, "directories to search when reporting unresolved include targets")
	return cmd
}

func checkFile(path string, includePaths []string) error {
	red := color.New(color.FgRed, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)

	data, err := os.ReadFile(path)
	if err != nil {
		red.Fprintf(os.Stderr, "%s: ", path)
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	problem, err := parser.ParseProblem(string(data))
	if err != nil {
		red.Fprintf(os.Stderr, "%s: ", path)
		if pe, ok := err.(*reporter.ParseError); ok {
			fmt.Fprintf(os.Stderr, "%d:%d: %s\n", pe.Line, pe.Column, pe.Message)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return err
	}

	green.Fprintf(os.Stdout, "%s: ok", path)
	fmt.Printf(" (%d formula(s), %d include(s))\n", len(problem.Formulas), len(problem.Includes))

	for _, inc := range problem.Includes {
		if !includeResolvable(inc.Filename, includePaths) {
			yellow.Fprintf(os.Stderr, "%s: ", path)
			fmt.Fprintf(os.Stderr, "include target %q not found on search path\n", inc.Filename)
		}
	}
	return nil
}

// includeResolvable never feeds back into the parse; it only decides
// whether a human could find the named include file for diagnostic
// purposes.
func includeResolvable(filename string, includePaths []string) bool {
	if len(includePaths) == 0 {
		return true
	}
	if _, err := os.Stat(filename); err == nil {
		return true
	}
	for _, dir := range includePaths {
		if _, err := os.Stat(dir + string(os.PathSeparator) + filename); err == nil {
			return true
		}
	}
	return false
}
