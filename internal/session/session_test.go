package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"bmi-tool/internal/bmi"
)

func newTestSession(t *testing.T) (*Session, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(zap.New(core))
	s.now = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }
	return s, logs
}

func TestCalculateEndToEnd(t *testing.T) {
	s, _ := newTestSession(t)

	out, err := s.Calculate("160", "50")
	require.NoError(t, err)

	assert.Equal(t, 19.53, out.Record.BMI)
	assert.Equal(t, bmi.Normal, out.Record.Category)
	assert.Equal(t, []float64{50}, out.History)
	assert.Equal(t, []float64{50}, s.History())

	assert.True(t, strings.HasPrefix(out.Display, "Height: 160 cm  Weight: 50 kg\nBMI 19.53: "))
	normal := bmi.AdviceFor(bmi.Normal)
	assert.Contains(t, out.Advice, normal.Diet)
	assert.Contains(t, out.Advice, normal.Exercise)
	assert.Contains(t, out.Advice, "See a doctor: No")
}

func TestCalculateRecord(t *testing.T) {
	s, _ := newTestSession(t)

	out, err := s.Calculate("170", "65")
	require.NoError(t, err)

	rec := out.Record
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, s.ID(), rec.SessionID)
	assert.Equal(t, "170", rec.HeightText)
	assert.Equal(t, 170.0, rec.HeightCm)
	assert.Equal(t, 65.0, rec.WeightKg)
	assert.Equal(t, 22.49, rec.BMI)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), rec.Timestamp)

	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, rec, records[0])
}

func TestCalculateAppendsInOrder(t *testing.T) {
	s, _ := newTestSession(t)

	for _, w := range []string{"60", "62", "61"} {
		_, err := s.Calculate("170", w)
		require.NoError(t, err)
	}

	assert.Equal(t, []float64{60, 62, 61}, s.History())
	assert.Len(t, s.Records(), 3)
}

func TestCalculateInputErrorLeavesStateUnchanged(t *testing.T) {
	s, logs := newTestSession(t)
	_, err := s.Calculate("170", "65")
	require.NoError(t, err)

	for _, in := range [][2]string{{"abc", "65"}, {"0", "65"}, {"170", "-2"}, {"", ""}} {
		out, err := s.Calculate(in[0], in[1])
		assert.Nil(t, out)
		assert.True(t, IsInputError(err), "input %q/%q: got %v", in[0], in[1], err)
	}

	assert.Equal(t, []float64{65}, s.History())
	assert.Len(t, s.Records(), 1)
	assert.Equal(t, 4, logs.FilterMessage("input rejected").Len())
}

func TestCalculateErrorKinds(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.Calculate("abc", "65")
	assert.ErrorIs(t, err, ErrNotNumber)

	_, err = s.Calculate("170", "0")
	assert.ErrorIs(t, err, ErrNotPositive)

	// Positive and finite but the squared height underflows to zero.
	_, err = s.Calculate("1e-200", "65")
	assert.ErrorIs(t, err, ErrCalculation)
	assert.False(t, IsInputError(err))

	assert.Empty(t, s.History())
}

func TestCalculateRetryAfterFailure(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.Calculate("abc", "70")
	require.Error(t, err)

	out, err := s.Calculate("175", "70")
	require.NoError(t, err)
	assert.Equal(t, 22.86, out.Record.BMI)
}

func TestCalculateLogsSuccess(t *testing.T) {
	s, logs := newTestSession(t)

	_, err := s.Calculate("180", "90")
	require.NoError(t, err)

	entries := logs.FilterMessage("bmi calculated").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, 27.78, fields["bmi"])
	assert.Equal(t, "Overweight", fields["category"])
	assert.Equal(t, s.ID(), fields["session_id"])
}

func TestOutcomeHistoryIsACopy(t *testing.T) {
	s, _ := newTestSession(t)

	out, err := s.Calculate("170", "65")
	require.NoError(t, err)
	out.History[0] = 0

	assert.Equal(t, []float64{65}, s.History())
}

func TestNewNilLogger(t *testing.T) {
	s := New(nil)
	_, err := s.Calculate("170", "65")
	assert.NoError(t, err)
}
