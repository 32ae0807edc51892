package award

import (
	"io"
	"log/slog"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEngineCoversAllAwards(t *testing.T) {
	e := NewEngine(openRoster{}, fakeRoll{available: true}, Operator{}, testLogger())

	want := []string{
		"SKCC_CENTURION", "SKCC_TRIBUNE", "SKCC_SENATOR",
		"SKCC_RAG_CHEW", "SKCC_MARATHON", "SKCC_TRIPLE_KEY",
		"SKCC_CANADIAN_MAPLE", "SKCC_QRP_1X", "SKCC_QRP_2X",
		"SKCC_QRP_MPW", "SKCC_PFX", "SKCC_WAS", "SKCC_WAS_T", "SKCC_WAC",
	}
	if len(e.Awards()) != len(want) {
		t.Fatalf("engine has %d awards, want %d", len(e.Awards()), len(want))
	}
	for _, id := range want {
		if _, ok := e.Award(id); !ok {
			t.Errorf("missing award %s", id)
		}
	}
	if _, ok := e.Award("SKCC_BOGUS"); ok {
		t.Error("unknown program ID should not resolve")
	}
}

func TestEngineEvaluateReportsPerAward(t *testing.T) {
	e := NewEngine(openRoster{}, fakeRoll{available: true}, Operator{}, testLogger())

	reports := e.Evaluate(nil)
	if len(reports) != len(e.Awards()) {
		t.Fatalf("got %d reports, want %d", len(reports), len(e.Awards()))
	}
	for _, r := range reports {
		if r.Achieved {
			t.Errorf("%s achieved on an empty log", r.ProgramID)
		}
		if r.ProgramID == "" || r.Award == "" {
			t.Errorf("report missing identity: %+v", r)
		}
	}
}
