package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAccumulate(t *testing.T) {
	before := testutil.ToFloat64(PairsComputed.WithLabelValues("test"))
	PairsComputed.WithLabelValues("test").Add(9)
	assert.Equal(t, before+9, testutil.ToFloat64(PairsComputed.WithLabelValues("test")))
}

func TestWriteTextfile(t *testing.T) {
	SamplesLoaded.Set(3)
	fn := filepath.Join(t.TempDir(), "cgmlst.prom")
	require.NoError(t, WriteTextfile(fn))

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Contains(t, string(b), "cgmlst_dists_samples_loaded 3")
}
