package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSample(t *testing.T) {
	doc, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 2025, doc.Year)
	assert.Equal(t, 224, doc.Summary.TotalSessions)
	assert.Len(t, doc.Charts.Monthly, 12)
	assert.Len(t, doc.Charts.DayOfWeek, 7)
	require.NotNil(t, doc.Highlights.BestGymMonth)
	assert.Equal(t, 2, doc.Highlights.BestGymMonth.Month)
	assert.Equal(t, []string{"Benböj", "Hantelpress", "Chins"}, doc.Highlights.TopExercises)
	assert.Empty(t, Check(doc))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrapped.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"year": 2024, "summary": {"total_gym": 3}}`), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2024, doc.Year)
	assert.Equal(t, 3, doc.Summary.TotalGym)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read document")
}

func TestParseMissingOptionalFields(t *testing.T) {
	doc, err := Parse([]byte(`{"year": 2025, "highlights": {"longest_streak": 4}, "unknown": true}`))
	require.NoError(t, err)

	assert.Nil(t, doc.Highlights.BestRunWeek)
	assert.Nil(t, doc.Highlights.BestGymMonth)
	assert.Empty(t, doc.Highlights.TopExercises)
	assert.Empty(t, doc.Charts.DayOfWeek)
	assert.Equal(t, 4, doc.Highlights.LongestStreak)
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"year": "soon"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode document")
}

func TestParseWrongTypedFieldKeepsRest(t *testing.T) {
	doc, err := Parse([]byte(`{
		"year": 2025,
		"summary": {"total_sessions": 12},
		"highlights": {"top_exercises": "Squat", "longest_streak": 9}
	}`))
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Empty(t, doc.Highlights.TopExercises)
	assert.Equal(t, 9, doc.Highlights.LongestStreak)
	assert.Equal(t, 12, doc.Summary.TotalSessions)
	assert.Equal(t, 2025, doc.Year)
	assert.Contains(t, doc.SkippedField(), "top_exercises")
}

func TestParseCleanDocumentSkipsNothing(t *testing.T) {
	doc, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, doc.SkippedField())
}

func TestParseLogs(t *testing.T) {
	doc, err := Parse([]byte(`{
		"gym_log": [{"date": "2025-01-02", "exercises": ["Chins"]}],
		"cardio_log": [{"date": "2025-01-03", "type": "Running", "distance_km": 5.2, "duration_sec": 1800}]
	}`))
	require.NoError(t, err)
	require.Len(t, doc.GymLog, 1)
	require.Len(t, doc.CardioLog, 1)
	assert.Equal(t, "Running", doc.CardioLog[0].Type)
	assert.InDelta(t, 1800, doc.CardioLog[0].DurationSec, 1e-9)
}

func TestSampleReturnsCopy(t *testing.T) {
	a := Sample()
	a[0] = 'x'
	assert.NotEqual(t, a[0], Sample()[0])
}
