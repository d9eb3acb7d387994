package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const emptyReportWarning = "WARNING: Report appears empty (all zeros). Backtest may need re-run."

type options struct {
	outputDir  string
	format     string
	configPath string
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "parsereport <report.htm>",
		Short: "Convert a Strategy Tester HTML report to Markdown",
		Long: `Reads a Strategy Tester HTML report (UTF-16 as exported by the terminal,
or UTF-8), extracts settings, statistics, orders and deals, and writes them
as a single <expert>_report.md document.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: %s", cmd.UseLine())
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), out, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "directory for the generated document (default from config, then \".\")")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: markdown or json (default from config)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "config.yaml", "path to config file")
	cmd.SetOut(out)

	return cmd
}

func runConvert(ctx context.Context, out io.Writer, opts *options, reportPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts)
	if err != nil {
		return err
	}

	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	summary, err := conv.Convert(ctx, reportPath, cfg.Output.Dir)
	if err != nil {
		return err
	}

	if summary.EmptyReport {
		fmt.Fprintln(out, emptyReportWarning)
	}
	fmt.Fprintf(out, "Parsed: %d metrics, %d deals, %d orders\n", summary.Metrics, summary.Deals, summary.Orders)
	fmt.Fprintf(out, "Output: %s\n", summary.OutputPath)
	return nil
}

// run executes the command and returns the process exit code
func run(args []string, out io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd := newRootCmd(out)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(out, "ERROR: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	if err := initializeSystem(); err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}

	code := run(os.Args[1:], os.Stdout)
	shutdownSystem()
	os.Exit(code)
}
