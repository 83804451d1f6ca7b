package simulator

import "testing"

func TestHashMatchesReferenceValues(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"", 0},
		{"a", 97},
		{"abc", 96354},
		{"test@test.com", 2099811859},
		// accumulator ends negative; abs applied
		{"jane@acme.com", 1444191841},
		{"john.doe@example.com", 1116351980},
		// accumulator wraps several times
		{"zzzzzzzzzzzz@example.com", 781122109},
		// non-ASCII hashes UTF-16 code units
		{"é@x.io", 1856614573},
		{"😀@x.io", 1267597543},
	}

	for _, tc := range cases {
		if got := Hash(tc.in); got != tc.want {
			t.Fatalf("Hash(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestHashIsStable(t *testing.T) {
	const email = "lead@example.com"
	first := Hash(email)
	for i := 0; i < 100; i++ {
		if got := Hash(email); got != first {
			t.Fatalf("expected stable hash %d, got %d on iteration %d", first, got, i)
		}
	}
}
