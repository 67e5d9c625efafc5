// Package repository holds the per-entity data access layers. Each entity is
// served by a failover pair: the Supabase PostgREST store in front, a seeded
// in-memory table behind it. Store failures degrade to the memory table and
// never surface to callers; memory writes do not survive a restart.
package repository

import "errors"

// ErrNotFound is returned when an id (or slug) resolves to no record in
// either the primary store or the memory fallback.
var ErrNotFound = errors.New("record not found")
