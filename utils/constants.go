// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis identity-verification cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for identity-verification cache entries.
const AuthCacheTTL = 10 * time.Minute

// CartCachePrefix is the prefix used for Redis cart session keys.
const CartCachePrefix = "cart:"
