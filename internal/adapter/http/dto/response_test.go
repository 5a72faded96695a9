package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/goinvoice/internal/domain"
)

func TestInvoiceRecordFromDomain(t *testing.T) {
	now := time.Date(2025, 12, 5, 9, 30, 0, 0, time.UTC)
	record := &domain.InvoiceRecord{
		CreatedAt:    now,
		ID:           "01JEXAMPLE",
		Number:       "RE-2025-001",
		InvoiceDate:  "05.12.2025",
		BuyerName:    "Beispiel GmbH",
		EntryCount:   2,
		Pages:        1,
		TotalMinutes: decimal.NewFromInt(45),
		NetAmount:    decimal.RequireFromString("24.005"),
	}

	resp := InvoiceRecordFromDomain(record)
	if resp.Number != "RE-2025-001" || resp.NetAmount != "24.01" || resp.EntryCount != 2 {
		t.Fatalf("unexpected invoice response: %+v", resp)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := decoded["service_date"]; ok {
		t.Fatalf("expected empty service date to be omitted, got %s", data)
	}
	if decoded["total_minutes"] != "45" {
		t.Fatalf("expected total minutes as decimal string, got %v", decoded["total_minutes"])
	}

	list := InvoiceRecordsFromDomain([]*domain.InvoiceRecord{record})
	if len(list) != 1 || list[0].ID != record.ID {
		t.Fatalf("InvoiceRecordsFromDomain returned %+v", list)
	}
}
