package enumprom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enumcore/pkg/enum"
)

type level struct{ enum.Base }

func TestRecorderCountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := New(reg)
	require.NoError(t, err)

	rec.ConstantsDiscovered("Level", 3)
	rec.InstanceConstructed("Level", "LOW")
	rec.InstanceConstructed("Level", "HIGH")
	rec.LookupFailed("Level", enum.KindInvalidName)

	assert.Equal(t, 3.0, testutil.ToFloat64(rec.constants.WithLabelValues("Level")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.constructed.WithLabelValues("Level")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.failures.WithLabelValues("Level", "invalid_name")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.failures.WithLabelValues("Level", "invalid_value")))
}

func TestNewRejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)
	_, err = New(reg)
	require.Error(t, err)
}

func TestInstallFeedsRegistryEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := Install(reg)
	require.NoError(t, err)
	t.Cleanup(func() { enum.SetMetrics(nil) })

	levels := enum.New[level](enum.Declare("EnumpromLevel",
		enum.Const("LOW", 1),
		enum.Const("HIGH", 2),
	))
	_ = levels.MustValueOf("LOW")
	_ = levels.MustValueOf("LOW")
	_, err = levels.ValueOf("MEDIUM")
	require.ErrorIs(t, err, enum.ErrInvalidName)
	_, err = levels.FromValue("2")
	require.ErrorIs(t, err, enum.ErrInvalidValue)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.constants.WithLabelValues("EnumpromLevel")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.constructed.WithLabelValues("EnumpromLevel")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.failures.WithLabelValues("EnumpromLevel", "invalid_name")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.failures.WithLabelValues("EnumpromLevel", "invalid_value")))

	count, err := testutil.GatherAndCount(reg, "enum_instances_constructed_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
