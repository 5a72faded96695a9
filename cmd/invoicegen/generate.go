package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/goinvoice/internal/domain"
	"github.com/iho/goinvoice/internal/infrastructure/config"
	"github.com/iho/goinvoice/internal/infrastructure/metrics"
	"github.com/iho/goinvoice/internal/usecase"
)

type generateOptions struct {
	profile     string
	number      string
	date        string
	serviceDate string
	rate        string
	metricsFile string
}

func newRootCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "invoicegen [input] [output]",
		Short: "Create a PDF invoice from a timesheet",
		Long: `Reads a timesheet with two lines per entry (date;start, duration;location),
totals the billed minutes and writes a paginated A4 invoice.

Input and output default to INVOICE_INPUT and INVOICE_OUTPUT
(daten.csv and rechnung.pdf).`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := a.cfg.InputPath, a.cfg.OutputPath
			if len(args) > 0 {
				input = args[0]
			}
			if len(args) > 1 {
				output = args[1]
			}

			return a.generate(cmd.Context(), input, output, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.profile, "profile", "", "invoice profile YAML (default $INVOICE_PROFILE or invoice.yaml)")
	flags.StringVar(&opts.number, "number", "", "invoice number, overrides the profile")
	flags.StringVar(&opts.date, "date", "", "invoice date dd.mm.yyyy, defaults to today")
	flags.StringVar(&opts.serviceDate, "service-date", "", "service date dd.mm.yyyy")
	flags.StringVar(&opts.rate, "rate", "", "hourly rate, overrides the profile")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")

	cmd.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newHistoryCmd(a),
	)

	return cmd
}

func (a *app) generate(ctx context.Context, input, output string, opts *generateOptions) error {
	if opts.metricsFile != "" {
		defer func() {
			if werr := metrics.WriteTextfile(opts.metricsFile, a.registry); werr != nil {
				a.logger.Warn().Err(werr).Str("path", opts.metricsFile).Msg("failed to write metrics file")
			}
		}()
	}

	profile, err := a.loadProfile(opts)
	if err != nil {
		return err
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open timesheet: %w", err)
	}
	defer f.Close()

	s, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	var buf bytes.Buffer
	out, err := a.invoiceUseCase(s).GenerateInvoice(ctx, usecase.GenerateInvoiceInput{
		Timesheet: f,
		Profile:   profile,
	}, &buf)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(output, buf.Bytes()); err != nil {
		return err
	}

	a.logger.Debug().
		Str("document_id", out.DocumentID).
		Str("path", output).
		Int("bytes", out.Bytes).
		Msg("invoice written")
	fmt.Fprintf(a.stdout, "PDF erstellt: %s\n", output)

	return nil
}

func (a *app) loadProfile(opts *generateOptions) (domain.Profile, error) {
	path := opts.profile
	if path == "" {
		path = a.cfg.ProfilePath
	}

	p, err := config.LoadProfile(path, a.cfg.HourlyRate)
	if err != nil {
		return p, err
	}

	if opts.number != "" {
		p.Number = opts.number
	}
	if opts.date != "" {
		p.Date = opts.date
	}
	if opts.serviceDate != "" {
		p.ServiceDate = opts.serviceDate
	}
	if opts.rate != "" {
		rate, err := decimal.NewFromString(opts.rate)
		if err != nil {
			return p, fmt.Errorf("invalid --rate %q: %w", opts.rate, err)
		}
		if rate.IsNegative() {
			return p, fmt.Errorf("invalid --rate %q: must not be negative", opts.rate)
		}
		p.HourlyRate = rate
	}

	return p, nil
}

// writeFileAtomic writes data next to path and renames it into place, so
// a failed run never leaves a partial document behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
