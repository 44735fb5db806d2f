package util

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadRestaurantIndexFromJSON(t *testing.T) {
	path := writeFixture(t, "index.json", `[
		{"name": "テスト食堂", "course": "A", "url": "https://example.com/?page_id=1", "tn_url": "https://example.com/t.jpg"}
	]`)

	index, err := ReadRestaurantIndexFromJSON(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(index) != 1 || index[0].Name != "テスト食堂" {
		t.Errorf("got %+v", index)
	}
}

func TestReadRestaurantDetailsFromJSON(t *testing.T) {
	path := writeFixture(t, "details.json", `{
		"https://example.com/?page_id=1": {
			"code": 101,
			"name": "テスト食堂",
			"address": "東京都千代田区神田",
			"business_hours": "11:00〜15:00",
			"regular_holiday": "無休"
		}
	}`)

	details, err := ReadRestaurantDetailsFromJSON(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	detail, ok := details["https://example.com/?page_id=1"]
	if !ok {
		t.Fatal("expected the detail keyed by its page url")
	}
	if detail.Code != 101 || detail.BusinessHours != "11:00〜15:00" {
		t.Errorf("got %+v", detail)
	}
}

func TestReadRestaurantsFromJSONMissingFile(t *testing.T) {
	if _, err := ReadRestaurantsFromJSON("/nonexistent/restaurants.json"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestReadRestaurantsFromJSON(t *testing.T) {
	restaurants, err := ReadRestaurantsFromJSON(filepath.Join("..", "resources", "restaurants.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(restaurants) == 0 {
		t.Fatal("expected at least one restaurant in the bundled fixture")
	}
	if restaurants[0].Code == 0 {
		t.Errorf("got %+v", restaurants[0])
	}
}
