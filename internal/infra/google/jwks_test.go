package google

import "testing"

func TestAudienceMatches(t *testing.T) {
	cases := []struct {
		name     string
		aud      any
		clientID string
		want     bool
	}{
		{name: "single audience", aud: "bj-web", clientID: "bj-web", want: true},
		{name: "single audience mismatch", aud: "bj-web", clientID: "bj-ios", want: false},
		{name: "audience list", aud: []any{"bj-ios", "bj-web"}, clientID: "bj-web", want: true},
		{name: "audience list without match", aud: []any{"bj-ios", 42}, clientID: "bj-web", want: false},
		{name: "string list", aud: []string{"bj-web"}, clientID: "bj-web", want: true},
		{name: "missing claim", aud: nil, clientID: "bj-web", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := audienceMatches(tc.aud, tc.clientID); got != tc.want {
				t.Fatalf("audienceMatches(%v, %q) = %v, want %v", tc.aud, tc.clientID, got, tc.want)
			}
		})
	}
}
