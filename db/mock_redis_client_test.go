package db

import (
	"testing"
)

func TestMockRedisClientSetGetDel(t *testing.T) {
	client := NewMockRedisClient()

	if err := client.Set("mykey", "myvalue"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, err := client.Get("mykey")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if val != "myvalue" {
		t.Errorf("got %q, want %q", val, "myvalue")
	}

	if err := client.Del("mykey"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if _, err := client.Get("mykey"); err == nil {
		t.Error("expected an error for a deleted key")
	}
}

func TestMockRedisClientKeys(t *testing.T) {
	client := NewMockRedisClient()
	client.Set("shops:1", "a")
	client.Set("shops:2", "b")
	client.Set("other:1", "c")

	keys, err := client.Keys("shops:*")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("got %d keys, want 2", len(keys))
	}
}

func TestMockRedisClientGeo(t *testing.T) {
	client := NewMockRedisClient()

	data := map[string]interface{}{"name": "test shop"}
	if err := client.AddGeoJSON("geo_key", "member_1", 35.69, 139.77, data); err != nil {
		t.Fatalf("AddGeoJSON failed: %v", err)
	}

	payloads, err := client.GeoRadiusJSON("geo_key", 35.69, 139.77, 1)
	if err != nil {
		t.Fatalf("GeoRadiusJSON failed: %v", err)
	}
	if len(payloads) != 1 {
		t.Fatalf("got %d payloads, want 1", len(payloads))
	}

	payloads, err = client.GeoRadiusJSON("missing_key", 0, 0, 1)
	if err != nil {
		t.Fatalf("GeoRadiusJSON failed: %v", err)
	}
	if len(payloads) != 0 {
		t.Errorf("got %d payloads for a missing geo key, want 0", len(payloads))
	}
}
