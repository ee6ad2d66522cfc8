// Package queries contains read-only operations of the restaurant service.
// Queries never open a transaction: they read through repositories bound to the
// shared connection pool, or run raw SQL when only an aggregate view is needed.
package queries
