package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/goinvoice/internal/adapter/http/dto"
	"github.com/iho/goinvoice/internal/adapter/http/handler"
	"github.com/iho/goinvoice/internal/adapter/pdf"
	"github.com/iho/goinvoice/internal/domain"
	"github.com/iho/goinvoice/internal/usecase"
	"github.com/iho/goinvoice/internal/usecase/mocks"
)

const timesheet = "01.12.2025;09:00\n30 min;Berlin\n02.12.2025;10:00\n15 min;Köln\n"

func testProfile() domain.Profile {
	return domain.Profile{
		Seller:          domain.Seller{Name: "Erika Mustermann", Address: "Musterstraße 1\n10115 Berlin"},
		Buyer:           domain.Buyer{Name: "Beispiel GmbH", Address: "Hauptstraße 5\n10365 Berlin"},
		Date:            "05.12.2025",
		HourlyRate:      decimal.NewFromInt(32),
		PaymentTermDays: 14,
	}
}

func newHandler(t *testing.T, opts ...usecase.InvoiceOption) *handler.InvoiceHandler {
	t.Helper()

	uc := usecase.NewInvoiceUseCase(pdf.NewFactory(), &mocks.SequentialIDGenerator{}, opts...)
	return handler.NewInvoiceHandler(uc, testProfile(), 1<<16)
}

func TestInvoiceHandler_Create(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices?number=RE-2025-007&service_date=02.12.2025", strings.NewReader(timesheet))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="rechnung-RE-2025-007.pdf"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "RE-2025-007", rr.Header().Get(handler.HeaderInvoiceNumber))
	assert.Equal(t, "doc-1", rr.Header().Get(handler.HeaderDocumentID))
	assert.Equal(t, "1", rr.Header().Get(handler.HeaderInvoicePages))
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF-")))
}

func TestInvoiceHandler_CreateErrors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		body   string
		status int
	}{
		{"empty timesheet", "?number=RE-1", "", http.StatusUnprocessableEntity},
		{"odd line count", "?number=RE-1", "01.12.2025;09:00\n", http.StatusUnprocessableEntity},
		{"bad duration", "?number=RE-1", "01.12.2025;09:00\nzehn min;Berlin\n", http.StatusUnprocessableEntity},
		{"no number", "", timesheet, http.StatusUnprocessableEntity},
		{"bad date", "?number=RE-1&date=2025-12-05", timesheet, http.StatusUnprocessableEntity},
		{"bad rate", "?number=RE-1&rate=abc", timesheet, http.StatusBadRequest},
		{"body too large", "?number=RE-1", strings.Repeat("01.12.2025;09:00\n15 min;Berlin\n", 4000), http.StatusRequestEntityTooLarge},
	}

	h := newHandler(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices"+tt.query, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.Create(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestInvoiceHandler_List(t *testing.T) {
	t.Run("register disabled", func(t *testing.T) {
		h := newHandler(t)

		rr := httptest.NewRecorder()
		h.List(rr, httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil))
		assert.Equal(t, http.StatusNotImplemented, rr.Code)
	})

	t.Run("lists generated invoices", func(t *testing.T) {
		h := newHandler(t, usecase.WithRegister(mocks.NewMemoryRegister()))

		create := httptest.NewRequest(http.MethodPost, "/api/v1/invoices?number=RE-2025-009", strings.NewReader(timesheet))
		h.Create(httptest.NewRecorder(), create)

		rr := httptest.NewRecorder()
		h.List(rr, httptest.NewRequest(http.MethodGet, "/api/v1/invoices?limit=5", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Data  []dto.InvoiceRecordResponse `json:"data"`
			Limit int                         `json:"limit"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "RE-2025-009", resp.Data[0].Number)
		assert.Equal(t, "24.00", resp.Data[0].NetAmount)
		assert.Equal(t, 5, resp.Limit)
	})
}
