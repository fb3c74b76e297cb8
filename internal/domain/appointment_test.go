package domain

import "testing"

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in     string
		want   Status
		wantOK bool
	}{
		{in: "BOOKED", want: StatusBooked, wantOK: true},
		{in: "  cancelled ", want: StatusCancelled, wantOK: true},
		{in: "completed", want: StatusCompleted, wantOK: true},
		{in: "NO_SHOW", want: Status("NO_SHOW"), wantOK: true},
		{in: "", wantOK: false},
		{in: "   ", wantOK: false},
		{in: "in progress", wantOK: false},
		{in: "1ST", wantOK: false},
		{in: "A23456789012345678901234567890123", wantOK: false},
	}

	for _, tc := range cases {
		got, ok := ParseStatus(tc.in)
		if ok != tc.wantOK {
			t.Fatalf("ParseStatus(%q) ok = %v, want %v", tc.in, ok, tc.wantOK)
		}
		if got != tc.want {
			t.Fatalf("ParseStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParsePartyKind(t *testing.T) {
	if k, ok := ParsePartyKind(" Provider "); !ok || k != PartyKindProvider {
		t.Fatalf("ParsePartyKind provider = %q, %v", k, ok)
	}
	if k, ok := ParsePartyKind("requester"); !ok || k != PartyKindRequester {
		t.Fatalf("ParsePartyKind requester = %q, %v", k, ok)
	}
	if _, ok := ParsePartyKind("doctor"); ok {
		t.Fatalf("expected unknown kind to fail")
	}
}
