package service

import (
	"context"
	"errors"
	"testing"

	"hexconv-service/internal/metrics"
	"hexconv-service/pkg/cache"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockResultCache struct {
	Entries  map[string]string
	GetError error
	SetError error

	GetCalls int
	SetCalls int
}

func newMockResultCache() *MockResultCache {
	return &MockResultCache{Entries: map[string]string{}}
}

func (m *MockResultCache) GetConversion(ctx context.Context, direction, input string) (string, error) {
	m.GetCalls++
	if m.GetError != nil {
		return "", m.GetError
	}
	v, ok := m.Entries[direction+":"+input]
	if !ok {
		return "", cache.ErrNotFound
	}
	return v, nil
}

func (m *MockResultCache) SetConversion(ctx context.Context, direction, input, output string) error {
	m.SetCalls++
	if m.SetError != nil {
		return m.SetError
	}
	m.Entries[direction+":"+input] = output
	return nil
}

func TestConversionService_WithoutCache(t *testing.T) {
	svc := NewConversionService(nil, nil, zap.NewNop())

	hex, err := svc.Hexify(context.Background(), "255")
	require.NoError(t, err)
	assert.Equal(t, "FF", hex)

	dec, err := svc.Decify(context.Background(), "FF")
	require.NoError(t, err)
	assert.Equal(t, "255", dec)

	_, err = svc.Hexify(context.Background(), "abc")
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestConversionService_CachesSuccessfulResults(t *testing.T) {
	rc := newMockResultCache()
	m := metrics.New()
	svc := NewConversionService(rc, m, zap.NewNop())

	got, err := svc.Hexify(context.Background(), "255")
	require.NoError(t, err)
	assert.Equal(t, "FF", got)
	assert.Equal(t, "FF", rc.Entries["hexify:255"])

	got, err = svc.Hexify(context.Background(), "255")
	require.NoError(t, err)
	assert.Equal(t, "FF", got)

	assert.Equal(t, 2, rc.GetCalls)
	assert.Equal(t, 1, rc.SetCalls, "a hit must not be written back")

	series, err := testutil.GatherAndCount(m.Registry(), "hexconv_cache_lookups_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series, "one miss series and one hit series")
}

func TestConversionService_DoesNotCacheParseErrors(t *testing.T) {
	rc := newMockResultCache()
	svc := NewConversionService(rc, nil, zap.NewNop())

	_, err := svc.Decify(context.Background(), "0xFF")
	require.Error(t, err)
	assert.Equal(t, 0, rc.SetCalls)
	assert.Empty(t, rc.Entries)
}

func TestConversionService_CacheFailuresAreIgnored(t *testing.T) {
	rc := newMockResultCache()
	rc.GetError = errors.New("connection refused")
	rc.SetError = errors.New("connection refused")
	svc := NewConversionService(rc, nil, zap.NewNop())

	got, err := svc.Decify(context.Background(), "-ff")
	require.NoError(t, err)
	assert.Equal(t, "-255", got)
	assert.Equal(t, 1, rc.SetCalls)
}

func TestConversionService_DirectionsAreSeparate(t *testing.T) {
	rc := newMockResultCache()
	svc := NewConversionService(rc, nil, zap.NewNop())

	_, err := svc.Hexify(context.Background(), "10")
	require.NoError(t, err)

	got, err := svc.Decify(context.Background(), "10")
	require.NoError(t, err)
	assert.Equal(t, "16", got)
}
