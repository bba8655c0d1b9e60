package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelays(t *testing.T) {
	delays, err := parseDelays([]byte(`{"1": "3 to 5 business days", "2": "3 à 5 jours"}`))
	require.NoError(t, err)

	assert.Equal(t, map[int]string{
		1: "3 to 5 business days",
		2: "3 à 5 jours",
	}, delays)
}

func TestParseDelays_Empty(t *testing.T) {
	delays, err := parseDelays([]byte(`{}`))
	require.NoError(t, err)

	assert.Empty(t, delays)
}

func TestParseDelays_BadLanguageKey(t *testing.T) {
	_, err := parseDelays([]byte(`{"en": "tomorrow"}`))

	require.Error(t, err)
}
