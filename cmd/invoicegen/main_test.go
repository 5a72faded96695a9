package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/goinvoice/internal/domain"
	"github.com/iho/goinvoice/internal/infrastructure/postgres"
)

const testProfileYAML = `seller:
  name: Erika Mustermann
  address: |
    Musterstraße 1
    10115 Berlin
  email: erika@example.com
  iban: DE00 0000 0000 0000 0000 00
  bic: TESTDEFFXXX
  tax_id: 12/345/67890
buyer:
  name: Beispiel GmbH
  address: |
    Hauptstraße 5
    10365 Berlin
invoice:
  number: RE-2025-001
  date: 05.12.2025
  service_date: 02.12.2025
`

const testTimesheet = "01.12.2025;09:00\n30 min;Berlin\n02.12.2025;10:00\n15 min;Köln\n"

// isolateEnv clears the variables the command reads and moves into a
// fresh directory so no .env or default files leak in.
func isolateEnv(t *testing.T) string {
	t.Helper()

	for _, key := range []string{
		"INVOICE_PROFILE", "INVOICE_INPUT", "INVOICE_OUTPUT", "INVOICE_HOURLY_RATE",
		"DATABASE_URL", "REDIS_URL", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "invoice.yaml"), []byte(testProfileYAML), 0o644))
	return dir
}

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(newApp(&stdout, &stderr))
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerateDefaults(t *testing.T) {
	dir := isolateEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "daten.csv"), []byte(testTimesheet), 0o644))

	stdout, _, err := runCmd(t)
	require.NoError(t, err)
	assert.Equal(t, "PDF erstellt: rechnung.pdf\n", stdout)

	data, err := os.ReadFile(filepath.Join(dir, "rechnung.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestGenerateExplicitPathsAndFlags(t *testing.T) {
	dir := isolateEnv(t)
	input := filepath.Join(dir, "stunden.txt")
	output := filepath.Join(dir, "out.pdf")
	metricsFile := filepath.Join(dir, "invoicegen.prom")
	require.NoError(t, os.WriteFile(input, []byte(testTimesheet), 0o644))

	stdout, _, err := runCmd(t, input, output,
		"--number", "RE-2025-099",
		"--rate", "40",
		"--metrics-file", metricsFile,
	)
	require.NoError(t, err)
	assert.Equal(t, "PDF erstellt: "+output+"\n", stdout)
	assert.FileExists(t, output)

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "goinvoice_invoices_generated_total 1")
	assert.Contains(t, string(prom), "goinvoice_billed_minutes_total 45")
}

func TestGenerateEmptyTimesheetWritesNothing(t *testing.T) {
	dir := isolateEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "daten.csv"), nil, 0o644))

	_, _, err := runCmd(t)
	require.ErrorIs(t, err, domain.ErrNoLineItems)
	assert.NoFileExists(t, filepath.Join(dir, "rechnung.pdf"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover temp file %s", e.Name())
	}
}

func TestGenerateFailureKeepsExistingOutput(t *testing.T) {
	dir := isolateEnv(t)
	output := filepath.Join(dir, "rechnung.pdf")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "daten.csv"), []byte("01.12.2025;09:00\nviel;Berlin\n"), 0o644))
	require.NoError(t, os.WriteFile(output, []byte("previous"), 0o644))

	_, _, err := runCmd(t)
	require.ErrorIs(t, err, domain.ErrParse)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing input", []string{"fehlt.csv"}, "failed to open timesheet"},
		{"missing profile", []string{"--profile", "nope.yaml"}, "failed to read profile"},
		{"bad rate", []string{"--rate", "viel"}, "invalid --rate"},
		{"negative rate", []string{"--rate=-1"}, "must not be negative"},
		{"too many args", []string{"a", "b", "c"}, "accepts at most 2 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolateEnv(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, "daten.csv"), []byte(testTimesheet), 0o644))

			_, _, err := runCmd(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRegisterCommandsNeedDatabase(t *testing.T) {
	for _, args := range [][]string{{"history"}, {"migrate", "up"}, {"migrate", "down"}, {"migrate", "status"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			isolateEnv(t)

			_, _, err := runCmd(t, args...)
			assert.ErrorIs(t, err, errRegisterNotConfigured)
		})
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rechnung.pdf")

	require.NoError(t, writeFileAtomic(path, []byte("first")))
	require.NoError(t, writeFileAtomic(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	assert.Error(t, writeFileAtomic(filepath.Join(dir, "missing", "rechnung.pdf"), []byte("x")))
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, nil)
	assert.Equal(t, "Keine Rechnungen gefunden.\n", buf.String())

	buf.Reset()
	printHistory(&buf, []*domain.InvoiceRecord{{
		CreatedAt:   time.Date(2025, 12, 5, 9, 0, 0, 0, time.UTC),
		ID:          "01JEXAMPLE",
		Number:      "RE-2025-001",
		InvoiceDate: "05.12.2025",
		BuyerName:   "Beispiel GmbH",
		EntryCount:  2,
		Pages:       1,
		NetAmount:   decimal.NewFromInt(24),
	}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "NUMMER"))
	assert.Contains(t, lines[1], "RE-2025-001")
	assert.Contains(t, lines[1], "24,00 €")
}

func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "Keine Migration angewendet.", formatStatus(postgres.MigrationStatus{}))
	assert.Equal(t, "Schema-Version 1", formatStatus(postgres.MigrationStatus{Version: 1, Applied: true}))
	assert.Equal(t, "Schema-Version 2 (unvollständig)", formatStatus(postgres.MigrationStatus{Version: 2, Dirty: true, Applied: true}))
}
