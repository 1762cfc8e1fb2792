// Package cachekeys centralizes the structured cache keys shared by command
// handlers (which populate and evict single-entity entries) and query
// handlers (which read through paginated and aggregate entries). Keeping the
// builders in one place guarantees that writers and readers of the same
// logical entry always agree on the key.
package cachekeys

import (
	"strconv"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/ports"
)

// Truck returns the single-entity key for a truck.
func Truck(id kernel.UUID) ports.CacheKey {
	return ports.NewCacheKey("truck", id.String())
}

// Driver returns the single-entity key for a driver.
func Driver(id kernel.UUID) ports.CacheKey {
	return ports.NewCacheKey("driver", id.String())
}

// Delivery returns the single-entity key for a delivery.
func Delivery(id kernel.UUID) ports.CacheKey {
	return ports.NewCacheKey("delivery", id.String())
}

// TrucksPage returns the key for a page of the truck listing.
func TrucksPage(page kernel.PageRequest) ports.CacheKey {
	return ports.NewCacheKey("trucks:page", pageParts(page)...)
}

// DriversPage returns the key for a page of the driver listing.
func DriversPage(page kernel.PageRequest) ports.CacheKey {
	return ports.NewCacheKey("drivers:page", pageParts(page)...)
}

// DeliveriesPage returns the key for a page of the delivery listing.
func DeliveriesPage(page kernel.PageRequest) ports.CacheKey {
	return ports.NewCacheKey("deliveries:page", pageParts(page)...)
}

// DeliveriesPeriodPage returns the key for a page of the period-bounded
// delivery listing.
func DeliveriesPeriodPage(from, to time.Time, page kernel.PageRequest) ports.CacheKey {
	parts := append(
		[]string{from.Format(time.RFC3339), to.Format(time.RFC3339)},
		pageParts(page)...,
	)
	return ports.NewCacheKey("deliveries:period", parts...)
}

// TodayTotal returns the key for the daily total aggregate. The key carries
// the calendar date, so a value cached just before midnight is never served
// for the following day.
func TodayTotal(day time.Time) ports.CacheKey {
	return ports.NewCacheKey("deliveries:total", day.Format("2006-01-02"))
}

func pageParts(page kernel.PageRequest) []string {
	return []string{
		strconv.Itoa(page.Page()),
		strconv.Itoa(page.Size()),
		page.OrderClause(),
	}
}
