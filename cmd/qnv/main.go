// Command qnv is the quantum network verifier's CLI entry point
// (spec.md §6 "CLI surface"). It wires the external collaborators named
// there — lexer, parser, tree printer, topology file reader — to the
// driver that actually runs the probabilistic configuration interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qnv/driver"
	"github.com/katalvlaran/qnv/parser"
	"github.com/katalvlaran/qnv/printer"
	"github.com/katalvlaran/qnv/topology"
)

type options struct {
	input    string
	topoPath string
	parse    bool
	qnv      bool
	format   string
	output   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "qnv",
		Short:         "Quantum Network Verifier",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.input, "input", "", "the input qnv source file")
	flags.StringVar(&opts.topoPath, "topo", "", "the input topology file")
	flags.BoolVar(&opts.parse, "parse", false, "emit the parsed AST pretty-print and exit")
	flags.BoolVar(&opts.qnv, "qnv", false, "run the interpreter and print the final probabilistic configuration")
	flags.StringVar(&opts.format, "format", "text", "output format for --qnv: text or yaml")
	flags.StringVar(&opts.output, "output", "", "write output to this file instead of stdout")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts *options) error {
	if opts.input == "" {
		return fmt.Errorf("qnv: --input is required")
	}

	src, err := os.ReadFile(opts.input)
	if err != nil {
		return fmt.Errorf("qnv: reading --input: %w", err)
	}

	prog, err := parser.Parse(string(src))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("qnv: creating --output: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch {
	case opts.qnv:
		if opts.topoPath == "" {
			return fmt.Errorf("qnv: --topo is required with --qnv")
		}
		topoFile, err := os.Open(opts.topoPath)
		if err != nil {
			return fmt.Errorf("qnv: reading --topo: %w", err)
		}
		defer topoFile.Close()

		topo, err := topology.Load(topoFile)
		if err != nil {
			return err
		}
		driver.PrintTopologyBanner(out, topo)

		pc, err := driver.Run(topo, prog, logrus.StandardLogger())
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "======Quantum Network Verifier======")
		result := driver.BuildResult(pc)
		switch opts.format {
		case "", "text":
			return result.WriteText(out)
		case "yaml":
			return result.WriteYAML(out)
		default:
			return fmt.Errorf("qnv: unknown --format %q", opts.format)
		}

	case opts.parse:
		printer.Print(out, prog)
		return nil

	default:
		return fmt.Errorf("qnv: one of --parse or --qnv is required")
	}
}
