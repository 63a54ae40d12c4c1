// Package geo resolves US postal codes to places. The built-in seed table is
// consulted first, then a per-process cache of earlier remote answers, and
// only then the remote geocoding service.
package geo

import (
	"context"
	"errors"

	"fan-globe/internal/models"
	"fan-globe/internal/observability"

	"github.com/rs/zerolog"
)

// RemoteLookup resolves a postal code over the network.
type RemoteLookup interface {
	Lookup(ctx context.Context, zip string) (models.GeoPlace, error)
}

// Resolver layers the seed table and the session cache in front of a remote lookup.
type Resolver struct {
	remote  RemoteLookup
	cache   *placeCache
	metrics *observability.Metrics
	logger  zerolog.Logger
}

// NewResolver creates a resolver. A nil remote makes every seed miss a
// not-found result, which is useful offline.
func NewResolver(remote RemoteLookup, cacheSize int, metrics *observability.Metrics, logger zerolog.Logger) *Resolver {
	return &Resolver{
		remote:  remote,
		cache:   newPlaceCache(cacheSize),
		metrics: metrics,
		logger:  logger.With().Str("component", "geo").Logger(),
	}
}

// Resolve returns the place for zip. It fails with ErrNotFound when no
// record exists and with *LookupError when the remote service could not be
// reached or answered badly.
func (r *Resolver) Resolve(ctx context.Context, zip string) (models.GeoPlace, error) {
	if place, ok := LookupSeed(zip); ok {
		r.count("seed", "hit")
		return place, nil
	}
	if place, ok := r.cache.get(zip); ok {
		r.count("cache", "hit")
		return place, nil
	}
	if r.remote == nil {
		r.count("remote", "not_found")
		return models.GeoPlace{}, ErrNotFound
	}

	place, err := r.remote.Lookup(ctx, zip)
	switch {
	case err == nil:
		r.count("remote", "hit")
		r.cache.put(zip, place)
		return place, nil
	case errors.Is(err, ErrNotFound):
		r.count("remote", "not_found")
		r.logger.Debug().Str("zip", zip).Msg("postal code not found")
		return models.GeoPlace{}, err
	default:
		r.count("remote", "error")
		r.logger.Warn().Err(err).Str("zip", zip).Msg("postal code lookup failed")
		return models.GeoPlace{}, err
	}
}

func (r *Resolver) count(source, outcome string) {
	if r.metrics == nil {
		return
	}
	r.metrics.GeocodeLookups.WithLabelValues(source, outcome).Inc()
}
