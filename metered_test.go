// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/vec"
)

func TestMeteredAllocatorAccountsVectorGrowth(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := vec.NewAllocatorMetrics("vec", "test")
	require.NoError(t, m.Register(reg))

	a := vec.NewMeteredAllocator[int64](nil, m)
	assert.True(t, a.Raw())

	v, err := vec.New(vec.WithAllocator[int64](a))
	require.NoError(t, err)
	for i := range 3 {
		require.NoError(t, v.PushBack(int64(i)))
	}

	// Blocks of 2 and 4 slots were handed out; the first went back.
	assert.Equal(t, float64(48), testutil.ToFloat64(m.AllocateBytes))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.AllocateBlocks))
	assert.Equal(t, float64(32), testutil.ToFloat64(m.InuseBytes))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.InuseBlocks))

	require.NoError(t, v.Free())
	assert.Equal(t, float64(0), testutil.ToFloat64(m.InuseBytes))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.InuseBlocks))
	assert.Equal(t, float64(48), testutil.ToFloat64(m.AllocateBytes))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestAllocatorMetricsRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := vec.NewAllocatorMetrics("vec", "twice")
	require.NoError(t, m.Register(reg))

	err := m.Register(reg)
	require.Error(t, err)
	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}

func TestMeteredAllocatorPartialMetrics(t *testing.T) {
	inuse := prometheus.NewGauge(prometheus.GaugeOpts{Name: "inuse_blocks"})
	a := vec.NewMeteredAllocator[byte](nil, &vec.AllocatorMetrics{InuseBlocks: inuse})

	block, err := a.Allocate(8)
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(inuse))

	assert.ErrorIs(t, a.Deallocate(block, 7), vec.ErrInvalidArgument)
	assert.Equal(t, float64(1), testutil.ToFloat64(inuse))

	require.NoError(t, a.Deallocate(block, 8))
	assert.Equal(t, float64(0), testutil.ToFloat64(inuse))
}

func TestMeteredAllocatorKeepsUpstreamKind(t *testing.T) {
	typed := vec.NewMeteredAllocator[int](vec.TypedAllocator[int]{}, nil)
	assert.False(t, typed.Raw())

	_, err := vec.New(vec.WithAllocator[int](typed))
	assert.ErrorIs(t, err, vec.ErrInvalidArgument)

	h, err := vec.NewHeap[int](4, typed)
	require.NoError(t, err)
	require.NoError(t, h.Release())
}

func TestMeteredAllocatorForwardsFailures(t *testing.T) {
	m := vec.NewAllocatorMetrics("vec", "fail")
	a := vec.NewMeteredAllocator[int64](nil, m)

	_, err := a.Allocate(-1)
	assert.ErrorIs(t, err, vec.ErrOutOfMemory)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.AllocateBlocks))
}
