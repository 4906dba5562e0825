// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable matches every failure to obtain a record from the
// annotation source. It is distinct from a record lacking a function
// block, which is reported through annotation.Sentinel instead.
var ErrSourceUnavailable = errors.New("annotation source unavailable")

// ErrInvalidAccession is returned for identifiers that are not UniProt
// accessions.
var ErrInvalidAccession = errors.New("invalid UniProt accession")

// SourceUnavailableError describes why a record could not be retrieved.
// StatusCode is zero for transport failures.
type SourceUnavailableError struct {
	Accession  string
	StatusCode int
	Err        error
}

func (e *SourceUnavailableError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("unable to retrieve data for %s, status code %d", e.Accession, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("unable to retrieve data for %s: %v", e.Accession, e.Err)
	default:
		return fmt.Sprintf("unable to retrieve data for %s", e.Accession)
	}
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// Is makes every SourceUnavailableError match ErrSourceUnavailable.
func (e *SourceUnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}
