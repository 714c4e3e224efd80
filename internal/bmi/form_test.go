package bmi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormCanCalculate(t *testing.T) {
	tests := []struct {
		weight, height string
		want           bool
	}{
		{"", "", false},
		{"70", "", false},
		{"", "1.75", false},
		{"  ", "1.75", false},
		{"70", "1.75", true},
		{"0", "0", true},
	}

	for _, tc := range tests {
		f := Form{Weight: tc.weight, Height: tc.height}
		if got := f.CanCalculate(); got != tc.want {
			t.Errorf("CanCalculate(%q, %q): expected %t, got %t", tc.weight, tc.height, tc.want, got)
		}
	}
}

func TestFormCalculate(t *testing.T) {
	f := Form{Weight: "70", Height: "1.75"}
	if !f.Calculate() {
		t.Fatal("expected calculation to run")
	}

	want := &Result{Value: 22.9, Raw: 70 / (1.75 * 1.75), Category: Normal}
	if diff := cmp.Diff(want, f.Result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestFormCalculateWithZeroLeavesResultAbsent(t *testing.T) {
	for _, f := range []Form{
		{Weight: "0", Height: "1.75"},
		{Weight: "70", Height: "0"},
		{Weight: "abc", Height: "1.75"},
		{Weight: "70", Height: "-1.75"},
	} {
		if f.Calculate() {
			t.Fatalf("expected %q/%q not to calculate", f.Weight, f.Height)
		}
		if f.HasResult() {
			t.Fatalf("expected no result for %q/%q, got %+v", f.Weight, f.Height, f.Result)
		}
	}
}

func TestFormInvalidInputKeepsPreviousResult(t *testing.T) {
	f := Form{Weight: "90", Height: "1.70"}
	f.Calculate()
	prev := *f.Result

	f.Weight = "0"
	if f.Calculate() {
		t.Fatal("expected calculation to be skipped")
	}
	if diff := cmp.Diff(prev, *f.Result); diff != "" {
		t.Fatalf("previous result changed (-want +got):\n%s", diff)
	}
}

func TestFormReset(t *testing.T) {
	f := Form{Weight: "45", Height: "1.60"}
	f.Calculate()
	f.Reset()

	if diff := cmp.Diff(Form{}, f); diff != "" {
		t.Fatalf("form not cleared (-want +got):\n%s", diff)
	}

	// Reset on an empty form is a no-op.
	f.Reset()
	if f.HasResult() {
		t.Fatal("expected no result after second reset")
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"70", 70, true},
		{" 1.75 ", 1.75, true},
		{"1,75", 1.75, true},
		{"", 0, false},
		{"0", 0, false},
		{"-3", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"70kg", 0, false},
		{"1,000.5", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParseInput(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseInput(%q): expected (%v, %t), got (%v, %t)", tc.in, tc.want, tc.ok, got, ok)
		}
	}
}
