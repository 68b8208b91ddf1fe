package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orcasim/seaway/geodesy"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("-69.95, 40.02")
	require.NoError(t, err)
	assert.Equal(t, geodesy.GeoPoint{Lon: -69.95, Lat: 40.02}, p)

	for _, bad := range []string{"", "-69.95", "x,40", "-69.95,y"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}
