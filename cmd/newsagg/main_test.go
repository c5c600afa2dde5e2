package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDateFlag(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "empty passes through", value: "", want: ""},
		{name: "date only", value: "2025-01-02", want: "2025-01-02T00:00:00Z"},
		{name: "full iso", value: "2025-01-02T10:30:00Z", want: "2025-01-02T10:30:00Z"},
		{name: "garbage rejected", value: "last week", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDateFlag("start", tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("date mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuiltinSource(t *testing.T) {
	for name, want := range map[string]bool{
		"bbc": true, "cnn": true, "rss": true,
		"all": false, "reuters": false, "": false,
	} {
		if got := builtinSource(name); got != want {
			t.Errorf("builtinSource(%q) = %v, want %v", name, got, want)
		}
	}
}
