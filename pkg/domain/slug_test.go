package domain

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Welcome to the mrgcar forum", "welcome-to-the-mrgcar-forum"},
		{"  DSG service interval  ", "dsg-service-interval"},
		{"100% torque!", "100-torque"},
		{"---", ""},
		{"Ärger im Motorraum", "rger-im-motorraum"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
