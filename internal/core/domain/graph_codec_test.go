package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rmake/internal/core/domain"
)

func TestGraphEncodeDecodeRoundTrip(t *testing.T) {
	g, err := domain.BuildGraph(diamondRules(), []string{"all"})
	require.NoError(t, err)

	buf, err := g.Encode()
	require.NoError(t, err)

	got, err := domain.DecodeGraph(buf)
	require.NoError(t, err)

	assert.True(t, g.Equal(got))
}

func TestGraphEncodeDecodeEmptyGraph(t *testing.T) {
	g, err := domain.BuildGraph(nil, nil)
	require.NoError(t, err)

	buf, err := g.Encode()
	require.NoError(t, err)

	got, err := domain.DecodeGraph(buf)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Size())
}

func TestDecodeGraphEmptyBufferIsCacheEmpty(t *testing.T) {
	_, err := domain.DecodeGraph(nil)
	require.ErrorIs(t, err, domain.ErrCacheEmpty)
}

func TestDecodeGraphVersionMismatch(t *testing.T) {
	g, err := domain.BuildGraph(diamondRules(), []string{"all"})
	require.NoError(t, err)

	buf, err := g.Encode()
	require.NoError(t, err)

	buf[0] ^= 0xff // corrupt the low byte of the u32 version field

	_, err = domain.DecodeGraph(buf)
	require.ErrorIs(t, err, domain.ErrCacheVersionMismatch)
}

func TestDecodeGraphTrailingByteIsCorrupt(t *testing.T) {
	g, err := domain.BuildGraph(diamondRules(), []string{"all"})
	require.NoError(t, err)

	buf, err := g.Encode()
	require.NoError(t, err)

	buf = append(buf, 0x00)

	_, err = domain.DecodeGraph(buf)
	require.ErrorIs(t, err, domain.ErrCacheCorrupt)
}

func TestDecodeGraphTruncatedBufferIsCorrupt(t *testing.T) {
	g, err := domain.BuildGraph(diamondRules(), []string{"all"})
	require.NoError(t, err)

	buf, err := g.Encode()
	require.NoError(t, err)

	_, err = domain.DecodeGraph(buf[:len(buf)-1])
	require.ErrorIs(t, err, domain.ErrCacheCorrupt)
}
