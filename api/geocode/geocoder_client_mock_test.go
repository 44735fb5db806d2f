package geocode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockGeocodeDeterministic(t *testing.T) {
	mock := NewGeocoderClientMock()

	lat1, lng1, err := mock.Geocode("東京都千代田区神田小川町2-2")
	assert.NoError(t, err)
	lat2, lng2, err := mock.Geocode("東京都千代田区神田小川町2-2")
	assert.NoError(t, err)

	assert.Equal(t, lat1, lat2)
	assert.Equal(t, lng1, lng2)
}

func TestMockGeocodeStaysNearKanda(t *testing.T) {
	mock := NewGeocoderClientMock()

	addresses := []string{
		"東京都千代田区神田小川町2-2",
		"東京都千代田区内神田3-5",
		"東京都千代田区神田駿河台2-1",
	}
	for _, addr := range addresses {
		lat, lng, err := mock.Geocode(addr)
		assert.NoError(t, err)
		assert.Less(t, math.Abs(lat-mockBaseLat), 0.006)
		assert.Less(t, math.Abs(lng-mockBaseLng), 0.006)
	}
}
