package layout

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/goinvoice/internal/domain"
)

// Geometry describes the page and the fixed block spacing, in millimetres.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	RowHeight  float64
	// BreakThreshold is the minimum space above the bottom margin that
	// must remain after a table row; below it a new page is started.
	BreakThreshold float64
}

// A4 returns the portrait A4 geometry with 18mm margins.
func A4() Geometry {
	return Geometry{
		PageWidth:      210,
		PageHeight:     297,
		Margin:         18,
		RowHeight:      7,
		BreakThreshold: 50,
	}
}

// Labels printed on the invoice.
const (
	labelTitle         = "RECHNUNG"
	labelNumber        = "Rechnungsnr.: "
	labelDate          = "Rechnungsdatum: "
	labelServiceDate   = "Leistungsdatum: "
	labelIndex         = "#"
	labelEntryDate     = "Datum"
	labelEntryStart    = "Begin"
	labelEntryLocation = "Ort"
	labelEntryDuration = "Dauer"
	labelSubtotalHours = "Zwischensumme (Stunden)"
	labelTotal         = "Gesamtbetrag"
	paymentRequest     = "Bitte überweisen Sie den Gesamtbetrag innerhalb von %d Tagen auf:"
	paymentAccount     = "IBAN: %s   BIC: %s"
	paymentTaxID       = "Steuernr./USt-IdNr.: %s"
)

// Table column offsets from the left margin.
const (
	colDate     = 10
	colStart    = 35
	colLocation = 55
	// colDuration is measured from the right margin.
	colDuration = 45
)

// Engine renders one invoice onto a Renderer. An Engine is single use.
type Engine struct {
	r      Renderer
	geo    Geometry
	cursor Cursor
	state  State
	pages  int
	logger zerolog.Logger
}

// NewEngine creates an Engine drawing on r.
func NewEngine(r Renderer, geo Geometry, logger zerolog.Logger) *Engine {
	return &Engine{
		r:      r,
		geo:    geo,
		cursor: NewCursor(geo.Margin, geo.PageHeight),
		state:  StateIdle,
		logger: logger,
	}
}

// State returns the block the engine reached last.
func (e *Engine) State() State {
	return e.state
}

// Pages returns the number of pages started so far.
func (e *Engine) Pages() int {
	return e.pages
}

// Cursor returns a copy of the current cursor.
func (e *Engine) Cursor() Cursor {
	return e.cursor
}

// Render lays out inv, fills in its totals and writes the finished document
// to w. Nothing is drawn when inv has no entries. On error the document is
// abandoned and nothing is written to w.
func (e *Engine) Render(inv *domain.Invoice, w io.Writer) error {
	if inv == nil || len(inv.Entries) == 0 {
		return domain.ErrNoLineItems
	}

	if e.state != StateIdle {
		return fmt.Errorf("layout engine already used (state %s)", e.state)
	}

	e.newPage()
	e.header(inv)
	e.recipient(inv)
	e.tableHeader()

	if err := e.rows(inv); err != nil {
		return err
	}

	e.totals(inv)
	e.paymentNotice(inv)

	e.state = StateDone
	if err := e.r.Finish(w); err != nil {
		return fmt.Errorf("failed to finish document: %w", err)
	}

	return nil
}

func (e *Engine) left() float64 {
	return e.geo.Margin
}

func (e *Engine) right() float64 {
	return e.geo.PageWidth - e.geo.Margin
}

func (e *Engine) newPage() {
	e.r.AddPage()
	e.pages++
	e.cursor.Reset()
}

func (e *Engine) rule() {
	e.r.Line(e.left(), e.cursor.Y, e.right(), e.cursor.Y)
}

func (e *Engine) header(inv *domain.Invoice) {
	e.state = StateHeader
	x0 := e.left()

	// Seller, left column.
	e.r.SetFont(StyleBold, 12)
	e.r.Text(x0, e.cursor.Y, inv.Seller.Name)
	e.r.SetFont(StyleRegular, 10)
	e.cursor.Advance(5)
	for _, line := range inv.Seller.AddressLines() {
		e.r.Text(x0, e.cursor.Y, line)
		e.cursor.Advance(4.2)
	}
	e.r.Text(x0, e.cursor.Y, inv.Seller.Email)

	// Invoice meta, right column.
	metaX := e.right() - 70
	metaY := e.geo.Margin
	e.r.SetFont(StyleBold, 14)
	e.r.TextRight(e.right(), metaY, labelTitle)
	e.r.SetFont(StyleRegular, 10)
	metaY += 8
	e.r.Text(metaX, metaY, labelNumber+inv.Number)
	metaY += 5
	e.r.Text(metaX, metaY, labelDate+inv.Date)
	metaY += 5
	e.r.Text(metaX, metaY, labelServiceDate+inv.ServiceDate)
}

func (e *Engine) recipient(inv *domain.Invoice) {
	e.state = StateRecipientBlock
	x0 := e.left()

	e.cursor.MoveTo(e.geo.Margin + 40)
	e.cursor.Advance(8)
	e.r.SetFont(StyleBold, 11)
	e.r.Text(x0, e.cursor.Y, inv.Buyer.Name)
	e.cursor.Advance(5)
	e.r.SetFont(StyleRegular, 10)
	for _, line := range inv.Buyer.AddressLines() {
		e.r.Text(x0, e.cursor.Y, line)
		e.cursor.Advance(4.2)
	}
}

func (e *Engine) tableHeader() {
	e.state = StateTableHeader
	x0 := e.left()

	e.cursor.Advance(6)
	e.r.SetFont(StyleBold, 10)
	e.rule()
	e.cursor.Advance(6)
	e.r.Text(x0, e.cursor.Y, labelIndex)
	e.r.Text(x0+colDate, e.cursor.Y, labelEntryDate)
	e.r.Text(x0+colStart, e.cursor.Y, labelEntryStart)
	e.r.Text(x0+colLocation, e.cursor.Y, labelEntryLocation)
	e.r.TextRight(e.right()-colDuration, e.cursor.Y, labelEntryDuration)
	e.cursor.Advance(4)
	e.rule()
	e.cursor.Advance(7)
	e.r.SetFont(StyleRegular, 10)
}

func (e *Engine) rows(inv *domain.Invoice) error {
	e.state = StateTableRow
	x0 := e.left()
	total := decimal.Zero

	for i, entry := range inv.Entries {
		minutes, err := entry.Minutes()
		if err != nil {
			return fmt.Errorf("entry %d (line %d): %w", i+1, entry.Line, err)
		}
		total = total.Add(minutes)

		e.r.Text(x0, e.cursor.Y, strconv.Itoa(i+1))
		e.r.Text(x0+colDate, e.cursor.Y, entry.Date)
		e.r.Text(x0+colStart, e.cursor.Y, entry.StartTime)
		e.r.Text(x0+colLocation, e.cursor.Y, entry.Location)
		e.r.TextRight(e.right()-colDuration, e.cursor.Y, entry.Duration)
		e.cursor.Advance(e.geo.RowHeight)

		if e.cursor.Remaining() < e.geo.BreakThreshold {
			e.logger.Debug().
				Int("row", i+1).
				Int("page", e.pages+1).
				Float64("remaining_mm", e.cursor.Remaining()).
				Msg("page break")
			e.newPage()
			e.r.SetFont(StyleRegular, 10)
		}
	}

	inv.TotalMinutes = total
	inv.NetAmount = domain.NetAmount(total, inv.HourlyRate)

	return nil
}

func (e *Engine) totals(inv *domain.Invoice) {
	e.state = StateTotals
	labelX := e.right() - 60
	valueX := e.right()

	e.cursor.Advance(4)
	e.rule()
	e.cursor.Advance(10)

	e.r.SetFont(StyleRegular, 10)
	e.r.Text(labelX, e.cursor.Y, labelSubtotalHours)
	// The hour value goes through the money formatter, currency sign included.
	e.r.TextRight(valueX, e.cursor.Y, domain.FormatMoney(inv.Hours()))
	e.cursor.Advance(12)

	e.r.SetFont(StyleBold, 11)
	e.r.Text(labelX, e.cursor.Y, labelTotal)
	e.r.TextRight(valueX, e.cursor.Y, domain.FormatMoney(inv.NetAmount))
	e.cursor.Advance(12)
}

func (e *Engine) paymentNotice(inv *domain.Invoice) {
	e.state = StatePaymentNotice
	x0 := e.left()

	if inv.TaxNotice != "" {
		e.r.SetFont(StyleRegular, 9)
		e.r.Text(x0, e.cursor.Y, inv.TaxNotice)
	}
	e.cursor.Advance(15)

	e.r.SetFont(StyleRegular, 10)
	e.r.Text(x0, e.cursor.Y, fmt.Sprintf(paymentRequest, inv.PaymentTermDays))
	e.cursor.Advance(6)
	e.r.Text(x0, e.cursor.Y, fmt.Sprintf(paymentAccount, inv.Seller.IBAN, inv.Seller.BIC))
	e.cursor.Advance(10)
	e.r.SetFont(StyleRegular, 9)
	e.r.Text(x0, e.cursor.Y, fmt.Sprintf(paymentTaxID, inv.Seller.TaxID))
}
