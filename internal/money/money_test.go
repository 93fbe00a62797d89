package money

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		minor int64
		want  string
	}{
		{1000, "10.00"},
		{99, "0.99"},
		{1, "0.01"},
		{0, "0.00"},
		{250999, "2509.99"},
		{-1050, "-10.50"},
	}

	for _, tc := range cases {
		if got := Format(tc.minor); got != tc.want {
			t.Fatalf("Format(%d) = %q, want %q", tc.minor, got, tc.want)
		}
	}
}
