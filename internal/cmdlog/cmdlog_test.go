package cmdlog

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"happyafrica/internal/metrics"
)

func TestRunCountsFailures(t *testing.T) {
	before := testutil.ToFloat64(metrics.CommandErrors.WithLabelValues("cmdlog_test"))
	err := Run("cmdlog_test", func() error { return errors.New("boom") })
	assert.EqualError(t, err, "boom")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CommandErrors.WithLabelValues("cmdlog_test")))

	runs := testutil.ToFloat64(metrics.CommandRuns.WithLabelValues("cmdlog_test"))
	assert.NoError(t, Run("cmdlog_test", func() error { return nil }))
	assert.Equal(t, runs+1, testutil.ToFloat64(metrics.CommandRuns.WithLabelValues("cmdlog_test")))
}
