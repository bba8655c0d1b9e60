package postal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopfront/internal/domain"
)

func TestFormat(t *testing.T) {
	a := domain.Address{
		FirstName: "Ada",
		LastName:  "Winters",
		Address1:  "16 Main Street",
		Postcode:  "73000",
		City:      "Springfield",
		Country:   "United States",
		Phone:     "555-0100",
	}

	assert.Equal(t,
		"Ada Winters\n16 Main Street\n73000 Springfield\nUnited States\n555-0100",
		Format(a))
}

func TestFormat_SkipsBlankSegments(t *testing.T) {
	a := domain.Address{
		FirstName: "Ada",
		LastName:  "Winters",
		Company:   "  ",
		Address1:  "16 Main Street",
		City:      "Springfield",
		Country:   "United States",
	}

	assert.Equal(t,
		"Ada Winters\n16 Main Street\nSpringfield\nUnited States",
		Format(a))
}

func TestFormat_IncludesCompanyAndSecondLine(t *testing.T) {
	a := domain.Address{
		FirstName: "Ada",
		LastName:  "Winters",
		Company:   "Winters & Co",
		Address1:  "16 Main Street",
		Address2:  "Suite 12",
		Postcode:  "73000",
		City:      "Springfield",
		Country:   "United States",
	}

	assert.Equal(t,
		"Ada Winters\nWinters & Co\n16 Main Street\nSuite 12\n73000 Springfield\nUnited States",
		Format(a))
}
