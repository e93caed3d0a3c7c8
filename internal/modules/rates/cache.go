// README: Redis cache for resolved rate profiles, keyed per vehicle/driver with a TTL.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"chauffeur/internal/types"
)

const (
	vehicleKeyPrefix  = "rates:vehicle:%s"
	defaultsKeyPrefix = "rates:driver:%s:defaults"
	// Profiles change rarely (admin edits); a short TTL keeps edits visible without
	// hitting Postgres on every keystroke of the quote form.
	cacheTTL = 5 * time.Minute
)

type Cache struct {
	redis *redis.Client
}

func NewCache(redis *redis.Client) *Cache {
	return &Cache{redis: redis}
}

func (c *Cache) GetVehicle(ctx context.Context, id types.ID) (*VehicleRateProfile, bool) {
	raw, err := c.redis.Get(ctx, vehicleKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var v VehicleRateProfile
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	return &v, true
}

func (c *Cache) SetVehicle(ctx context.Context, v *VehicleRateProfile) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, vehicleKey(v.ID), raw, cacheTTL).Err()
}

func (c *Cache) InvalidateVehicle(ctx context.Context, id types.ID) error {
	return c.redis.Del(ctx, vehicleKey(id)).Err()
}

func (c *Cache) GetDriverDefaults(ctx context.Context, driverID types.ID) (*DriverPricingDefaults, bool) {
	raw, err := c.redis.Get(ctx, defaultsKey(driverID)).Bytes()
	if err != nil {
		return nil, false
	}
	var d DriverPricingDefaults
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, false
	}
	return &d, true
}

func (c *Cache) SetDriverDefaults(ctx context.Context, d *DriverPricingDefaults) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, defaultsKey(d.DriverID), raw, cacheTTL).Err()
}

func vehicleKey(id types.ID) string {
	return fmt.Sprintf(vehicleKeyPrefix, string(id))
}

func defaultsKey(driverID types.ID) string {
	return fmt.Sprintf(defaultsKeyPrefix, string(driverID))
}
