package service

import (
	"context"
	"errors"
	"time"

	"hexconv-service/internal/metrics"
	"hexconv-service/pkg/cache"

	"go.uber.org/zap"
)

const (
	DirectionHexify = "hexify"
	DirectionDecify = "decify"
)

// ConversionServiceInterface - interface for handlers and their tests.
type ConversionServiceInterface interface {
	Hexify(ctx context.Context, decValue string) (string, error)
	Decify(ctx context.Context, hexValue string) (string, error)
}

// ResultCache is the subset of cache.RedisClient the service needs.
type ResultCache interface {
	GetConversion(ctx context.Context, direction, input string) (string, error)
	SetConversion(ctx context.Context, direction, input, output string) error
}

type ConversionService struct {
	cache        ResultCache
	metrics      *metrics.Metrics
	logger       *zap.Logger
	cacheTimeout time.Duration
}

// NewConversionService builds the service. resultCache and m may be nil.
func NewConversionService(resultCache ResultCache, m *metrics.Metrics, logger *zap.Logger) *ConversionService {
	return &ConversionService{
		cache:        resultCache,
		metrics:      m,
		logger:       logger,
		cacheTimeout: 500 * time.Millisecond,
	}
}

func (s *ConversionService) Hexify(ctx context.Context, decValue string) (string, error) {
	return s.convert(ctx, DirectionHexify, decValue, DecimalToHex)
}

func (s *ConversionService) Decify(ctx context.Context, hexValue string) (string, error) {
	return s.convert(ctx, DirectionDecify, hexValue, HexToDecimal)
}

func (s *ConversionService) convert(ctx context.Context, direction, input string, fn func(string) (string, error)) (string, error) {
	if cached, ok := s.lookup(ctx, direction, input); ok {
		s.metrics.ObserveConversion(direction, "ok")
		return cached, nil
	}

	output, err := fn(input)
	if err != nil {
		s.metrics.ObserveConversion(direction, "parse_error")
		s.logger.Debug("Conversion rejected",
			zap.String("direction", direction),
			zap.String("input", input),
			zap.Error(err),
		)
		return "", err
	}
	s.metrics.ObserveConversion(direction, "ok")
	s.logger.Debug("Conversion completed",
		zap.String("direction", direction),
		zap.String("input", input),
		zap.String("output", output),
	)

	s.store(ctx, direction, input, output)
	return output, nil
}

// lookup never fails the request: cache errors count as a miss.
func (s *ConversionService) lookup(ctx context.Context, direction, input string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	ctx, cancel := context.WithTimeout(ctx, s.cacheTimeout)
	defer cancel()

	value, err := s.cache.GetConversion(ctx, direction, input)
	switch {
	case err == nil:
		s.metrics.ObserveCacheLookup("hit")
		s.logger.Debug("Cache hit", zap.String("direction", direction), zap.String("input", input))
		return value, true
	case errors.Is(err, cache.ErrNotFound):
		s.metrics.ObserveCacheLookup("miss")
	default:
		s.metrics.ObserveCacheLookup("error")
		s.logger.Warn("Cache lookup failed (will compute)",
			zap.String("direction", direction),
			zap.Error(err),
		)
	}
	return "", false
}

func (s *ConversionService) store(ctx context.Context, direction, input, output string) {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cacheTimeout)
	defer cancel()

	if err := s.cache.SetConversion(ctx, direction, input, output); err != nil {
		s.logger.Warn("Failed to cache conversion (non-critical)",
			zap.String("direction", direction),
			zap.Error(err),
		)
	}
}

var _ ConversionServiceInterface = (*ConversionService)(nil)
var _ ResultCache = (*cache.RedisClient)(nil)
