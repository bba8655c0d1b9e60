// Package postal renders a customer address as a multi-line string the
// way it would be printed on a parcel label.
package postal

import (
	"strings"

	"shopfront/internal/domain"
)

// Format joins the address segments with newlines, dropping blanks.
func Format(a domain.Address) string {
	lines := []string{
		strings.TrimSpace(a.FirstName + " " + a.LastName),
		a.Company,
		a.Address1,
		a.Address2,
		strings.TrimSpace(a.Postcode + " " + a.City),
		a.Country,
		a.Phone,
	}

	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
