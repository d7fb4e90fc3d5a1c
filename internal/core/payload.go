package core

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Total derives the invoice total from the line items: each line is
// independently VAT-rated, then the sum is rounded to money precision.
func (p InvoicePayload) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range p.Items {
		amt := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		if line.VATApplied {
			amt = amt.Mul(VATMultiplier)
		}
		total = total.Add(amt)
	}
	return total.Round(MoneyPlaces)
}

// Encode serializes the payload for storage inside the invoice row.
func (p InvoicePayload) Encode() []byte {
	b, err := json.Marshal(p)
	if err != nil {
		return []byte("{}")
	}
	return b
}

// DecodeInvoicePayload parses an embedded invoice blob. A corrupt blob
// degrades to the zero payload (no line items, not credit) rather than
// surfacing an error.
func DecodeInvoicePayload(raw []byte) InvoicePayload {
	if len(raw) == 0 {
		return InvoicePayload{}
	}
	var p InvoicePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return InvoicePayload{}
	}
	return p
}

// Encode serializes the payload for storage inside the receipt row.
func (p ReceiptPayload) Encode() []byte {
	b, err := json.Marshal(p)
	if err != nil {
		return []byte("{}")
	}
	return b
}

// DecodeReceiptPayload parses an embedded receipt blob, degrading to the
// zero payload on corrupt input.
func DecodeReceiptPayload(raw []byte) ReceiptPayload {
	if len(raw) == 0 {
		return ReceiptPayload{}
	}
	var p ReceiptPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return ReceiptPayload{}
	}
	return p
}
