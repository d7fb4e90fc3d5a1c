package core

import (
	"context"
	"fmt"
	"strconv"
)

// Setting keys used by the billing engine.
const (
	SettingInvoiceCounter = "invoiceCounter"
	SettingReceiptCounter = "receiptCounter"
	SettingSchemaVersion  = "schemaVersion"
)

// Document number prefixes.
const (
	invoiceNumberPrefix = "INV"
	receiptNumberPrefix = "RCT"
)

// nextDocumentNumber increments the persisted counter under key and returns
// the formatted human-facing number. The counter is persisted before the
// entity itself is saved, so an abandoned creation still burns a number —
// gaps in the sequence are expected.
func nextDocumentNumber(ctx context.Context, local LocalStore, key, prefix string) (string, error) {
	raw, err := local.GetSetting(ctx, key)
	if err != nil {
		return "", fmt.Errorf("read counter %s: %w", key, err)
	}
	n, _ := strconv.Atoi(raw) // blank or unparseable restarts the sequence
	n++
	if err := local.SetSetting(ctx, key, strconv.Itoa(n)); err != nil {
		return "", fmt.Errorf("persist counter %s: %w", key, err)
	}
	return fmt.Sprintf("%s-%05d", prefix, n), nil
}
