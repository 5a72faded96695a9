// Command invoicegen turns a two-line-per-entry timesheet into a PDF invoice.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(newApp(os.Stdout, os.Stderr)).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Fehler: %v\n", err)
		os.Exit(1)
	}
}
