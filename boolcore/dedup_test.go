package boolcore

import (
	"testing"

	"github.com/go-polybool/polybool/geom"
	"github.com/go-polybool/polybool/polystore"
)

func TestDedupCollapsesMatchingPull(t *testing.T) {
	cfg := geom.DefaultConfig()

	cr := Crossings{
		P: []IntersectionRecord{
			{ID: 0, Face: 1, ArcLength: 1.0, EdgeBefore: 10, EdgeAfter: 20},
			{ID: 1, Face: 1, ArcLength: 1.0, EdgeBefore: 11, EdgeAfter: 21},
			{ID: 2, Face: 1, ArcLength: 2.0, EdgeBefore: 12, EdgeAfter: 22},
		},
		Q: []IntersectionRecord{
			{ID: 0, Face: 5, ArcLength: 1.0, EdgeBefore: 100, EdgeAfter: 200},
			{ID: 1, Face: 5, ArcLength: 1.0, EdgeBefore: 100, EdgeAfter: 200},
			{ID: 2, Face: 5, ArcLength: 2.0, EdgeBefore: 102, EdgeAfter: 202},
		},
	}

	sc := Sort(cr, cfg)
	out := Dedup(sc, cfg)

	if len(out.P) != 2 || len(out.Q) != 2 {
		t.Fatalf("expected the duplicate pull to collapse to 1 record (2 in all), got P=%d Q=%d", len(out.P), len(out.Q))
	}
	if out.P[0].EdgeBefore != polystore.EdgeID(10) || out.Q[0].EdgeBefore != polystore.EdgeID(100) ||
		out.P[1].EdgeBefore != polystore.EdgeID(12) || out.Q[1].EdgeBefore != polystore.EdgeID(102) {
		t.Errorf("the pull's first record and the distinct one should survive, got P=%+v Q=%+v", out.P, out.Q)
	}
}

func TestDedupNoopWhenNoDuplicates(t *testing.T) {
	cfg := geom.DefaultConfig()

	cr := Crossings{
		P: []IntersectionRecord{
			{ID: 0, Face: 1, ArcLength: 1.0, EdgeBefore: 10, EdgeAfter: 20},
			{ID: 1, Face: 1, ArcLength: 2.0, EdgeBefore: 11, EdgeAfter: 21},
		},
		Q: []IntersectionRecord{
			{ID: 0, Face: 5, ArcLength: 1.0, EdgeBefore: 100, EdgeAfter: 200},
			{ID: 1, Face: 5, ArcLength: 2.0, EdgeBefore: 101, EdgeAfter: 201},
		},
	}

	sc := Sort(cr, cfg)
	out := Dedup(sc, cfg)

	if len(out.P) != 2 || len(out.Q) != 2 {
		t.Errorf("no duplicates should leave both records intact, got P=%d Q=%d", len(out.P), len(out.Q))
	}
}
