package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSetBuildInfo(t *testing.T) {
	SetBuildInfo("1.2.3", "abc123", "2026-01-01")

	assert.Equal(t, 1.0, testutil.ToFloat64(BuildInfo.WithLabelValues("1.2.3", "abc123", "2026-01-01")))
}

func TestCounters_Increment(t *testing.T) {
	before := testutil.ToFloat64(PledgesCreated)
	PledgesCreated.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(PledgesCreated))
}
