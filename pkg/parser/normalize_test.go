package parser

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"[1] CMD;a\n", "[1] CMD;a"},
		{"\r\n\t [1] CMD;a \t\r\n", "[1] CMD;a"},
		{"[1] CMD;a b\tc", "[1] CMD;a b\tc"},
		{"\x0b[1] CMD;\x0b", "\x0b[1] CMD;\x0b"},
		{" CMD", " CMD"},
	}

	for _, tt := range tests {
		if got := Strip(tt.in); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStrip_Idempotent(t *testing.T) {
	inputs := []string{
		"  [1] CMD;a  ",
		"\n\n",
		"plain",
		"\t[0]x;SHUTDOWN_PROGRAM;\r\n",
	}
	for _, in := range inputs {
		once := Strip(in)
		if twice := Strip(once); twice != once {
			t.Errorf("Strip(Strip(%q)) = %q, want %q", in, twice, once)
		}
	}
}
