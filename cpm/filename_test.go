package cpm

import "testing"

func TestToMaskWildcards(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"*.COM", "????????COM"},
		{"A*.*", "A??????????"},
		{"HELLO.COM", "HELLO   COM"},
		{"*.*", "???????????"},
	}
	for _, c := range cases {
		got := ToMask(c.pattern)
		if got != c.want {
			t.Errorf("ToMask(%q) = %q, want %q", c.pattern, got, c.want)
		}
		if len(got) != 11 {
			t.Errorf("ToMask(%q) length = %d, want 11", c.pattern, len(got))
		}
	}
}

func TestMatchMask(t *testing.T) {
	cases := []struct {
		mask, name string
		want       bool
	}{
		{"????????COM", "HELLO   COM", true},
		{"????????COM", "HELLO   TXT", false},
		{"A??????????", "ABC     TXT", true},
		{"A??????????", "BBC     TXT", false},
	}
	for _, c := range cases {
		if got := MatchMask(c.mask, c.name); got != c.want {
			t.Errorf("MatchMask(%q, %q) = %v, want %v", c.mask, c.name, got, c.want)
		}
	}
}

func TestMatchMaskLengthMismatch(t *testing.T) {
	if MatchMask("short", "HELLO   COM") {
		t.Fatal("expected false for mismatched mask length")
	}
}

func TestTo83(t *testing.T) {
	cases := []struct {
		in       string
		wantName string
		wantExt  string
	}{
		{"hello.com", "HELLO   ", "COM"},
		{"x.bin", "X       ", "BIN"},
		{"longname12.txtx", "LONGNAME", "TXT"},
		{"noext", "NOEXT   ", "   "},
	}
	for _, c := range cases {
		name, ext := To83(c.in)
		if string(name[:]) != c.wantName {
			t.Errorf("To83(%q) name = %q, want %q", c.in, string(name[:]), c.wantName)
		}
		if string(ext[:]) != c.wantExt {
			t.Errorf("To83(%q) ext = %q, want %q", c.in, string(ext[:]), c.wantExt)
		}
	}
}
