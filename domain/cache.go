// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/cache.go -package=mocks . ResultCache
package domain

import (
	"context"
	"time"
)

// ResultCache memoizes classification results keyed by the exact raw
// input text. Unavailability of the backing store is not an error: Get
// reports a miss, Put is a no-op. There is no negative caching and no
// single-flight protection; classification is idempotent, so concurrent
// misses that all reach the classifier are acceptable.
type ResultCache interface {
	Get(ctx context.Context, namespace, rawInput string) *ClassificationResult
	Put(ctx context.Context, namespace, rawInput string, result *ClassificationResult, ttl time.Duration)
}
