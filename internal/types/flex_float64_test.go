package types

import (
	"encoding/json"
	"testing"
)

func TestFlexFloat64Unmarshal(t *testing.T) {
	cases := []struct {
		name  string
		input string
		set   bool
		valid bool
		val   float64
		fails bool
	}{
		{"number", `{"v": 90.5}`, true, true, 90.5, false},
		{"numeric string", `{"v": "1.20"}`, true, true, 1.2, false},
		{"null", `{"v": null}`, true, false, 0, false},
		{"empty string", `{"v": ""}`, true, false, 0, false},
		{"omitted", `{}`, false, false, 0, false},
		{"bad string", `{"v": "tall"}`, true, false, 0, true},
		{"bool", `{"v": true}`, true, false, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var target struct {
				V FlexFloat64 `json:"v"`
			}
			err := json.Unmarshal([]byte(tc.input), &target)
			if tc.fails {
				if err == nil {
					t.Fatal("Expected unmarshal error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if target.V.Set != tc.set {
				t.Errorf("Set: expected %v, got %v", tc.set, target.V.Set)
			}
			if target.V.Valid != tc.valid {
				t.Errorf("Valid: expected %v, got %v", tc.valid, target.V.Valid)
			}
			if target.V.Valid && target.V.Val != tc.val {
				t.Errorf("Val: expected %v, got %v", tc.val, target.V.Val)
			}
		})
	}
}

func TestFlexFloat64Ptr(t *testing.T) {
	invalid := FlexFloat64{Set: true}
	if invalid.Ptr() != nil {
		t.Error("Expected nil pointer for invalid value")
	}

	valid := FlexFloat64{Set: true, Valid: true, Val: 42.5}
	p := valid.Ptr()
	if p == nil || *p != 42.5 {
		t.Errorf("Expected pointer to 42.5, got %v", p)
	}
}

func TestFlexFloat64Marshal(t *testing.T) {
	raw, err := json.Marshal(FlexFloat64{Set: true})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(raw) != "null" {
		t.Errorf("Expected null, got %s", raw)
	}

	raw, err = json.Marshal(FlexFloat64{Set: true, Valid: true, Val: 7.25})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(raw) != "7.25" {
		t.Errorf("Expected 7.25, got %s", raw)
	}
}
