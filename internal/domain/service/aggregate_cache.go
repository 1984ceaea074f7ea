package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Cache key formats for derived aggregates. Values are stored as plain
// strings; the services parse them back.
const (
	keyFarmSales    = "agg:farm_sales:%s"
	keyFarmRating   = "agg:farm_rating:%s"
	keyProductStock = "agg:product_stock:%s"
)

// TTLAggregate bounds how stale a cached aggregate may get. Writes do not
// invalidate; five minutes matches how fresh the dashboards need to be.
const TTLAggregate = 5 * time.Minute

// FarmSalesKey is the cache key for a farm's total sales.
func FarmSalesKey(farmID uuid.UUID) string {
	return fmt.Sprintf(keyFarmSales, farmID)
}

// FarmRatingKey is the cache key for a farm's average rating.
func FarmRatingKey(farmID uuid.UUID) string {
	return fmt.Sprintf(keyFarmRating, farmID)
}

// ProductStockKey is the cache key for a product's stock across farms.
func ProductStockKey(productID uuid.UUID) string {
	return fmt.Sprintf(keyProductStock, productID)
}

// AggregateCache defines the interface for a read-through cache over derived
// aggregates. A miss is not an error; implementations report it through the
// ok result.
type AggregateCache interface {
	// Get returns the cached value for key, with ok=false on a miss.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key for the given TTL.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
