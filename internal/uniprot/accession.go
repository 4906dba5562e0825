// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"fmt"
	"regexp"
	"strings"
)

// accessionPattern is the UniProtKB accession format published at
// https://www.uniprot.org/help/accession_numbers.
var accessionPattern = regexp.MustCompile(`^(?:[OPQ][0-9][A-Z0-9]{3}[0-9]|[A-NR-Z][0-9](?:[A-Z][A-Z0-9]{2}[0-9]){1,2})$`)

// ValidateAccession trims and upper-cases s and checks it against the
// UniProtKB accession format.
func ValidateAccession(s string) (string, error) {
	acc := strings.ToUpper(strings.TrimSpace(s))
	if !accessionPattern.MatchString(acc) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAccession, s)
	}
	return acc, nil
}
