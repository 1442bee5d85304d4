// Package session runs the calculate action for one user session:
// validate, compute, classify, advise, and record the accepted weight.
package session

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bmi-tool/internal/bmi"
	"bmi-tool/internal/format"
	"bmi-tool/internal/history"
	"bmi-tool/internal/model"
)

// Outcome is the result of a successful calculation.
type Outcome struct {
	Record  model.Record
	Advice  string    // advisory text with the BMI header line
	Display string    // "Height: ... kg\n" + Advice
	History []float64 // weight history including this entry
}

// Session owns the weight history and record list for one run of the
// program. Nothing is persisted. Not safe for concurrent use.
type Session struct {
	id      string
	logger  *zap.Logger
	tracker *history.Tracker
	records []model.Record
	now     func() time.Time
}

// New creates an empty session. A nil logger disables logging.
func New(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		id:      id,
		logger:  logger.With(zap.String("session_id", id)),
		tracker: history.NewTracker(),
		now:     time.Now,
	}
}

// ID returns the session's random identifier.
func (s *Session) ID() string {
	return s.id
}

// Calculate validates the raw texts and, on success, appends the weight to
// the history. On failure the session is left unchanged and the error is
// either an *InputError or ErrCalculation.
func (s *Session) Calculate(heightText, weightText string) (*Outcome, error) {
	height, weight, err := ValidateInput(heightText, weightText)
	if err != nil {
		s.logger.Info("input rejected",
			zap.String("height", heightText),
			zap.String("weight", weightText),
			zap.Error(err))
		return nil, err
	}

	value, ok := bmi.Compute(heightText, weightText)
	if !ok {
		s.logger.Info("calculation failed",
			zap.String("height", heightText),
			zap.String("weight", weightText))
		return nil, ErrCalculation
	}

	category := bmi.Classify(value)
	advice := bmi.Advise(category, value)

	rec := model.Record{
		ID:         uuid.NewString(),
		SessionID:  s.id,
		Timestamp:  s.now(),
		HeightText: heightText,
		WeightText: weightText,
		HeightCm:   height,
		WeightKg:   weight,
		BMI:        value,
		Category:   category,
	}
	s.tracker.Append(weight)
	s.records = append(s.records, rec)

	s.logger.Debug("bmi calculated",
		zap.Float64("bmi", value),
		zap.Stringer("category", category),
		zap.Int("entries", s.tracker.Len()))

	return &Outcome{
		Record:  rec,
		Advice:  advice,
		Display: format.FormatDisplay(heightText, weightText, advice),
		History: s.tracker.Snapshot(),
	}, nil
}

// History returns the accepted weights in entry order.
func (s *Session) History() []float64 {
	return s.tracker.Snapshot()
}

// Records returns a copy of all accepted calculations.
func (s *Session) Records() []model.Record {
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}
