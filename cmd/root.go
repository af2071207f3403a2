package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	dotenv "github.com/dsh2dsh/expx-dotenv"
	"github.com/spf13/cobra"

	"github.com/dsh2dsh/edgar-links/internal/forms"
)

var (
	tableFile string
	verbose   bool

	rootCmd = cobra.Command{
		Use:   "edgar-links",
		Short: "Find links to SEC EDGAR filings of companies",
		Long: `Looks up filings of every company in a batch and writes links to them.

EDGAR_UA environment variable is required by SEC:

  EDGAR_UA="Sample Company Name AdminContact@<sample company domain>.com"

Optional environment variables:

  EDGAR_PROCS - number of companies processed in parallel (default 4, max 10)
  EDGAR_RATE  - number of requests per second to EDGAR (default 5, max 10)

All of them can be set in .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			return loadEnvs()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&tableFile, "table", "",
		"load form classifier table from this YAML file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log debug messages")
}

func Execute(version string) {
	rootCmd.Version = version
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	cobra.CheckErr(err)
}

func loadEnvs() error {
	if err := dotenv.New().WithDepth(1).Load(); err != nil {
		return fmt.Errorf("load edgar envs: %w", err)
	}
	return nil
}

func newClassifier() (*forms.Classifier, error) {
	if tableFile == "" {
		return forms.Default(), nil
	}
	c, err := forms.LoadFile(tableFile)
	if err != nil {
		return nil, fmt.Errorf("load form table: %w", err)
	}
	return c, nil
}
