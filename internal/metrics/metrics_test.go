package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokebot/internal/metrics"
)

func TestRecorderCounts(t *testing.T) {
	rec := metrics.New()
	rec.StepExecuted("menu", nil)
	rec.StepExecuted("menu", nil)
	rec.StepExecuted("writer", errors.New("boom"))
	rec.JokeReviewed("neutral", true)
	rec.JokeReviewed("chuck", false)
	rec.CategoryChanged("chuck")
	rec.InvalidInput("menu")
	rec.SessionFinished(1500*time.Millisecond, 7)

	count, err := testutil.GatherAndCount(rec.Gatherer(), "jokebot_workflow_steps_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "expected one series per step label")

	count, err = testutil.GatherAndCount(rec.Gatherer(), "jokebot_jokes_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(rec.Gatherer(), "jokebot_workflow_step_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *metrics.Recorder
	rec.StepExecuted("menu", nil)
	rec.JokeReviewed("neutral", true)
	rec.CategoryChanged("all")
	rec.InvalidInput("category")
	rec.SessionFinished(time.Second, 1)

	families, err := rec.Gatherer().Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
}

func TestWriteTextfile(t *testing.T) {
	rec := metrics.New()
	rec.JokeReviewed("neutral", true)

	path := filepath.Join(t.TempDir(), "jokebot.prom")
	require.NoError(t, rec.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `jokebot_jokes_total{category="neutral",verdict="approved"} 1`)
}
