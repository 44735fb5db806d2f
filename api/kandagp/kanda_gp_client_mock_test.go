package kandagp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	indexFixture   = "../../resources/restaurant_index.json"
	detailsFixture = "../../resources/restaurant_details.json"
)

func TestMockGetRestaurantIndex(t *testing.T) {
	mock := NewKandaGpApiClientMock(indexFixture, detailsFixture)

	index, err := mock.GetRestaurantIndex()
	assert.NoError(t, err)
	assert.NotEmpty(t, index)

	for _, entry := range index {
		assert.NotEmpty(t, entry.Name)
		assert.NotEmpty(t, entry.Course)
		assert.NotEmpty(t, entry.URL)
	}
}

func TestMockGetRestaurantDetail(t *testing.T) {
	mock := NewKandaGpApiClientMock(indexFixture, detailsFixture)

	index, err := mock.GetRestaurantIndex()
	assert.NoError(t, err)
	assert.NotEmpty(t, index)

	detail, err := mock.GetRestaurantDetail(index[0].URL)
	assert.NoError(t, err)
	assert.NotZero(t, detail.Code)
	assert.NotEmpty(t, detail.Name)
	assert.NotEmpty(t, detail.BusinessHours)
}

func TestMockGetRestaurantDetailUnknownURL(t *testing.T) {
	mock := NewKandaGpApiClientMock(indexFixture, detailsFixture)

	_, err := mock.GetRestaurantDetail("https://kanda-curry.com/?page_id=99999")
	assert.Error(t, err)
}
