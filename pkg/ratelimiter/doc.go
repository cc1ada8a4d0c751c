// Package ratelimiter implements a token bucket rate limiter over a
// pluggable Store, with an in-memory store and an HTTP middleware.
//
// ThreadCraft uses it to throttle credential guessing on the login endpoint:
//
//	limiter, _ := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
//	    Capacity:       10,
//	    RefillRate:     1,
//	    RefillInterval: time.Minute,
//	})
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP)).Post("/login", loginHandler)
package ratelimiter
