package xmacgen

import (
	"errors"
	"testing"
)

func TestIntToHex(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "000000"},
		{1, "000001"},
		{255, "0000ff"},
		{0xabcdef, "abcdef"},
		{0xffffff, "ffffff"},
		// 超出 3 字节时按实际位数输出
		{0x1000000, "1000000"},
	}

	for _, tt := range tests {
		got, err := IntToHex(tt.input)
		if err != nil {
			t.Errorf("IntToHex(%d) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("IntToHex(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIntToHex_Negative(t *testing.T) {
	_, err := IntToHex(-1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("IntToHex(-1) error = %v, want ErrInvalidArgument", err)
	}
}

func TestHexToInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"lower", "0000ff", 255, false},
		{"upper", "0000FF", 255, false},
		{"mixed", "AbCdEf", 0xabcdef, false},
		{"short", "f", 15, false},
		{"empty", "", 0, true},
		{"invalid_char", "zz", 0, true},
		{"with_delimiter", "aa:bb", 0, true},
		{"prefix_not_allowed", "0xff", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToInt(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("HexToInt(%q) error = %v, want ErrInvalidArgument", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("HexToInt(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("HexToInt(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	step := 1
	if testing.Short() {
		step = 251
	}
	for n := 0; n < DeviceSpace; n += step {
		s, err := IntToHex(n)
		if err != nil {
			t.Fatalf("IntToHex(%d) error: %v", n, err)
		}
		got, err := HexToInt(s)
		if err != nil {
			t.Fatalf("HexToInt(%q) error: %v", s, err)
		}
		if got != n {
			t.Fatalf("round trip %d -> %q -> %d", n, s, got)
		}
	}
}
