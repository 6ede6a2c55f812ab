package core

import "testing"

func TestDominantTrait(t *testing.T) {
	cases := []struct {
		name string
		p    Personality
		want string
	}{
		{"high openness", Personality{Openness: 90}, "openness"},
		{"high conscientiousness", Personality{Conscientiousness: 80}, "conscientiousness"},
		{"openness wins over conscientiousness", Personality{Openness: 75, Conscientiousness: 95}, "openness"},
		{"threshold is exclusive", Personality{Openness: 70, Conscientiousness: 70}, "balanced"},
		{"zero vector", Personality{}, "balanced"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.DominantTrait(); got != tc.want {
				t.Fatalf("DominantTrait() = %q, want %q", got, tc.want)
			}
		})
	}
}
