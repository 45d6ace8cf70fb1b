package dates

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMarshalJSON(t *testing.T) {
	d := New(2025, time.March, 14)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"2025-03-14"` {
		t.Errorf("unexpected output: %s", b)
	}
}

func TestMarshalZeroIsNull(t *testing.T) {
	b, err := json.Marshal(Date{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("expected null, got %s", b)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2025-03-14"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.March || d.Day() != 14 {
		t.Errorf("unexpected date: %v", d)
	}
}

func TestUnmarshalNull(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.IsZero() {
		t.Error("expected zero date")
	}
}

func TestUnmarshalRejectsBadFormat(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"14/03/2025"`), &d); err == nil {
		t.Error("expected error for wrong format")
	}
}

func TestScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2025-03-14" {
		t.Errorf("unexpected date: %s", d)
	}
	if err := d.Scan(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.IsZero() {
		t.Error("expected zero date after nil scan")
	}
}

func TestValue(t *testing.T) {
	v, err := Date{}.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Error("zero date should map to NULL")
	}
	v, err = New(2025, time.March, 14).Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(time.Time); !ok {
		t.Errorf("expected time.Time, got %T", v)
	}
}
