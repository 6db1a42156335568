// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// StatusCachePrefix is the prefix for cached per-month availability status maps.
const StatusCachePrefix = "availability:statuses:"

// StatusCacheTTL is the time-to-live for cached status maps.
const StatusCacheTTL = 5 * time.Minute

// ReplicationResultPrefix is the prefix for stored async replication summaries.
const ReplicationResultPrefix = "availability:replication:"

// ReplicationResultTTL is how long an async replication summary is kept.
const ReplicationResultTTL = 24 * time.Hour
