package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iho/goinvoice/internal/domain"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently generated invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.DatabaseURL == "" {
				return errRegisterNotConfigured
			}
			return a.history(cmd.Context(), limit, offset)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of invoices to show")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of invoices to skip")

	return cmd
}

func (a *app) history(ctx context.Context, limit, offset int) error {
	s, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := a.invoiceUseCase(s).ListInvoices(ctx, limit, offset)
	if err != nil {
		return err
	}

	printHistory(a.stdout, records)
	return nil
}

func printHistory(out io.Writer, records []*domain.InvoiceRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "Keine Rechnungen gefunden.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUMMER\tDATUM\tKUNDE\tPOSITIONEN\tSEITEN\tBETRAG\tID")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			r.Number,
			r.InvoiceDate,
			r.BuyerName,
			r.EntryCount,
			r.Pages,
			domain.FormatMoney(r.NetAmount),
			r.ID,
		)
	}
	w.Flush()
}
