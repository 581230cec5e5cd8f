package transport

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/sarops/medic-api/internal/model"
)

// Oracle reports whether a transport resource is currently free. It is a
// boolean function of vehicle type only.
type Oracle interface {
	Available(vehicle model.VehicleType) bool
}

// StaticOracle reports every vehicle as available. Stands in until a real
// scheduling resource is wired up.
type StaticOracle struct{}

func (StaticOracle) Available(model.VehicleType) bool {
	return true
}

// CachedOracle memoizes oracle answers for a TTL so repeated checks during a
// transport surge do not hammer the underlying resource.
type CachedOracle struct {
	inner Oracle
	cache *cache.Cache
}

func NewCachedOracle(inner Oracle, ttl time.Duration) *CachedOracle {
	return &CachedOracle{
		inner: inner,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (o *CachedOracle) Available(vehicle model.VehicleType) bool {
	key := string(vehicle)
	if v, ok := o.cache.Get(key); ok {
		return v.(bool)
	}
	available := o.inner.Available(vehicle)
	o.cache.Set(key, available, cache.DefaultExpiration)
	return available
}
