package utils

import "fmt"

// NewImportBatchID generates the batch id for one bulk import run.
func NewImportBatchID() (string, error) {
	suffix, err := GenerateSecureRandomString(6)
	if err != nil {
		return "", err
	}
	return suffix, nil
}

// NewImportRowID generates a transaction id for a bulk-imported row. The
// IMP_{batchID}_{random} scheme groups rows by batch so a later bulk undo can
// find everything a run inserted.
func NewImportRowID(batchID string) (string, error) {
	suffix, err := GenerateSecureRandomString(8)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("IMP_%s_%s", batchID, suffix), nil
}
