package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	d, err := Distance(35.6812, 139.7671, 35.6812, 139.7671)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestDistance_Symmetric(t *testing.T) {
	ab, err := Distance(35.6812, 139.7671, 35.6896, 139.7006)
	require.NoError(t, err)
	ba, err := Distance(35.6896, 139.7006, 35.6812, 139.7671)
	require.NoError(t, err)
	assert.InDelta(t, ab, ba, 1e-9)
}

func TestDistance_TokyoToShinjuku(t *testing.T) {
	// Tokyo Station to Shinjuku Station, roughly 6 km apart.
	d, err := Distance(35.6812, 139.7671, 35.6896, 139.7006)
	require.NoError(t, err)
	assert.Greater(t, d, 5500.0)
	assert.Less(t, d, 6500.0)
}

func TestDistance_InvalidCoordinates(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"latitude too high", 90.1, 0, 0, 0},
		{"latitude too low", 0, 0, -90.1, 0},
		{"longitude too high", 0, 180.1, 0, 0},
		{"longitude too low", 0, 0, 0, -180.1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Distance(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}
}

func TestDistance_BoundaryCoordinatesAreValid(t *testing.T) {
	_, err := Distance(90, 180, -90, -180)
	assert.NoError(t, err)
}
