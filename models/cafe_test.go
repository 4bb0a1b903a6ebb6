package models

import (
	"encoding/json"
	"testing"
)

func TestToMapEmitsEveryColumn(t *testing.T) {
	price := "£2.50"
	cafe := Cafe{
		ID: 7, Name: "Costa", MapURL: "https://maps/costa", ImgURL: "https://img/costa",
		Location: "London", Seats: "20-30", HasToilet: true, HasWifi: false,
		HasSockets: true, CanTakeCalls: false, CoffeePrice: &price,
	}

	m := cafe.ToMap()
	if len(m) != len(Columns)+1 {
		t.Fatalf("ToMap has %d keys, want %d", len(m), len(Columns)+1)
	}
	if _, ok := m["id"]; !ok {
		t.Error("id missing")
	}
	for _, col := range Columns {
		if _, ok := m[col]; !ok {
			t.Errorf("column %q missing", col)
		}
	}
	if m["coffee_price"] != "£2.50" || m["has_toilet"] != true || m["location"] != "London" {
		t.Errorf("unexpected values: %v", m)
	}
}

func TestToMapNullPrice(t *testing.T) {
	cafe := Cafe{ID: 1, Name: "Nameless"}
	raw, err := json.Marshal(cafe.ToMap())
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	if v, ok := decoded["coffee_price"]; !ok || v != nil {
		t.Errorf("coffee_price = %v (present=%v), want null", v, ok)
	}
	if decoded["id"] != float64(1) {
		t.Errorf("id = %v, want 1", decoded["id"])
	}
}

func TestToMapsNeverNil(t *testing.T) {
	if got := ToMaps(nil); got == nil || len(got) != 0 {
		t.Errorf("ToMaps(nil) = %#v, want empty slice", got)
	}
}

func TestTableName(t *testing.T) {
	if got := (Cafe{}).TableName(); got != "cafe" {
		t.Errorf("TableName = %q", got)
	}
}
