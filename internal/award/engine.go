package award

import (
	"log/slog"

	"github.com/garyPenhook/skcclog/internal/model"
)

// Engine evaluates the whole award family over one contact log. It is a pure
// function of its immutable inputs: evaluation never blocks, never mutates a
// contact, and never errors — malformed records simply don't contribute.
type Engine struct {
	awards []Award
	logger *slog.Logger
}

// NewEngine wires every award with the injected roster snapshot, award rolls,
// and operator identity. The roster and roll are immutable; refreshing them
// means building a new Engine against the new snapshot.
func NewEngine(roster Roster, roll Roll, op Operator, logger *slog.Logger) *Engine {
	if !roll.Available() {
		logger.Warn("award roster unavailable, Tribune/Senator status filter degraded to permissive")
	}
	return &Engine{
		awards: []Award{
			NewCenturion(roster, op),
			NewTribune(roster, roll, op),
			NewSenator(roster, roll, op),
			NewRagChew(roster, op),
			NewMarathon(roster, op),
			NewTripleKey(roster, op),
			NewMaple(roster, op),
			NewQRP1x(roster, op),
			NewQRP2x(roster, op),
			NewQRPMPW(roster, op),
			NewPFX(op),
			NewWAS(roster, op),
			NewWAST(roster, op),
			NewWAC(roster, op),
		},
		logger: logger,
	}
}

// Awards returns the award set in evaluation order.
func (e *Engine) Awards() []Award {
	return e.awards
}

// Award looks up one award by program ID.
func (e *Engine) Award(programID string) (Award, bool) {
	for _, a := range e.awards {
		if a.ProgramID() == programID {
			return a, true
		}
	}
	return nil, false
}

// Evaluate computes every award's progress over the contact slice. Input
// ordering is irrelevant: order-sensitive awards sort internally.
func (e *Engine) Evaluate(contacts []model.Contact) []model.Progress {
	reports := make([]model.Progress, 0, len(e.awards))
	for _, a := range e.awards {
		reports = append(reports, a.Progress(contacts))
	}
	return reports
}
