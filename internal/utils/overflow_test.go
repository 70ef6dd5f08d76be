package utils

import "testing"

func TestAddUint16(t *testing.T) {
	tests := []struct {
		name    string
		base    uint16
		delta   int
		want    uint16
		wantErr bool
	}{
		{name: "no overflow", base: 10, delta: 5, want: 15},
		{name: "exact max", base: 0xFFF0, delta: 0xF, want: 0xFFFF},
		{name: "overflow by one", base: 0xFFFF, delta: 1, wantErr: true},
		{name: "large delta overflow", base: 100, delta: 0x10000, wantErr: true},
		{name: "zero delta", base: 42, delta: 0, want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddUint16(tt.base, tt.delta)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for base=%d delta=%d", tt.base, tt.delta)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}
