package types

import (
	"encoding/json"
	"testing"
)

type flexListItem struct {
	Name string `json:"name"`
}

func TestFlexListSingleObject(t *testing.T) {
	var list FlexList[flexListItem]
	if err := json.Unmarshal([]byte(`{"name": "one"}`), &list); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "one" {
		t.Errorf("Expected single wrapped item, got %v", list)
	}
}

func TestFlexListArray(t *testing.T) {
	var list FlexList[flexListItem]
	if err := json.Unmarshal([]byte(`[{"name": "one"}, {"name": "two"}]`), &list); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(list) != 2 || list[1].Name != "two" {
		t.Errorf("Expected two items, got %v", list)
	}
}

func TestFlexListNull(t *testing.T) {
	var list FlexList[flexListItem]
	if err := json.Unmarshal([]byte(`null`), &list); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(list.Slice()) != 0 {
		t.Errorf("Expected empty slice, got %v", list)
	}
}

func TestFlexListInvalid(t *testing.T) {
	var list FlexList[flexListItem]
	if err := json.Unmarshal([]byte(`42`), &list); err == nil {
		t.Error("Expected error for non-object non-array input")
	}
}
