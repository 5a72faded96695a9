package layout

// State is the block the engine is currently rendering.
type State int

const (
	StateIdle State = iota
	StateHeader
	StateRecipientBlock
	StateTableHeader
	StateTableRow
	StateTotals
	StatePaymentNotice
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHeader:
		return "header"
	case StateRecipientBlock:
		return "recipient_block"
	case StateTableHeader:
		return "table_header"
	case StateTableRow:
		return "table_row"
	case StateTotals:
		return "totals"
	case StatePaymentNotice:
		return "payment_notice"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
