package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// VATMultiplier is applied per line item when vatApplied is set.
// The flat VAT rate is 5% (OMR regime).
var VATMultiplier = decimal.RequireFromString("1.05")

// MoneyPlaces is the number of decimal places carried by every monetary
// amount (OMR has 3 subunit digits).
const MoneyPlaces = 3

// Company is a customer record. Outstanding is the net amount the company
// currently owes: the sum of all credit-invoice totals minus the sum of all
// receipt amounts, over all non-deleted transactions.
type Company struct {
	DocID       string          `json:"docId"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address,omitempty"`
	Description string          `json:"description,omitempty"`
	CRNumber    string          `json:"crNumber,omitempty"`
	VATNumber   string          `json:"vatNumber,omitempty"`
	Outstanding decimal.Decimal `json:"outstanding"`
	IsSynced    bool            `json:"isSynced"`
}

// PriceItem is one entry in the shared price list. Independent of companies.
type PriceItem struct {
	DocID    string          `json:"docId"`
	ItemName string          `json:"itemName"`
	Price    decimal.Decimal `json:"price"`
}

// InvoiceLine is a single billed line. UnitPrice may be a user-edited
// override of the referenced price-list item.
type InvoiceLine struct {
	DocID      string          `json:"docId"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
	VATApplied bool            `json:"vatApplied"`
}

// InvoicePayload is the structured blob embedded inside an invoice row.
// Company fields are a snapshot taken at invoice time and are never
// re-derived from the live company record.
type InvoicePayload struct {
	InvoiceNumber  string        `json:"invoiceNumber"`
	IsCredit       bool          `json:"isCredit"`
	CompanyName    string        `json:"companyName"`
	CompanyAddress string        `json:"companyAddress"`
	CompanyCR      string        `json:"companyCr"`
	CompanyVAT     string        `json:"companyVat"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	Items          []InvoiceLine `json:"items"`
}

// Invoice is a cash or credit bill. Total is derived from the payload's
// line items; only credit invoices move the company's outstanding balance.
type Invoice struct {
	DocID        string          `json:"docId"`
	CompanyDocID string          `json:"companyDocId"`
	Total        decimal.Decimal `json:"total"`
	Date         time.Time       `json:"date"`
	Payload      InvoicePayload  `json:"payload"`
}

// ReceiptPayload is the structured blob embedded inside a receipt row.
// OSAfterThisReceipt snapshots the company's outstanding balance immediately
// after the receipt was recorded; it is historical display data, never
// re-derived.
type ReceiptPayload struct {
	ReceiptNumber      string          `json:"receiptNumber"`
	CompanyName        string          `json:"companyName"`
	Description        string          `json:"description,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
	OSAfterThisReceipt decimal.Decimal `json:"osAfterThisReceipt"`
}

// Receipt is a payment against a company's outstanding balance.
type Receipt struct {
	DocID        string          `json:"docId"`
	CompanyDocID string          `json:"companyDocId"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Payload      ReceiptPayload  `json:"payload"`
}

// Note is a dated free-text note, one per calendar day.
type Note struct {
	Date time.Time `json:"date"`
	Note string    `json:"note"`
}

// LedgerRow is one line of a statement-of-account report. Derived only,
// never persisted.
type LedgerRow struct {
	Date        time.Time       `json:"date"`
	Particulars string          `json:"particulars"`
	Type        string          `json:"type"`
	ReferenceNo string          `json:"referenceNo"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// Ledger row types.
const (
	RowTypeInvoice = "INVOICE"
	RowTypeReceipt = "RECEIPT"
)

// Statement is a chronological ledger for one company and date range:
// opening balance, dated rows with running balances, closing balance.
type Statement struct {
	CompanyDocID   string          `json:"companyDocId"`
	CompanyName    string          `json:"companyName"`
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Rows           []LedgerRow     `json:"rows"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}
