// Package ratelimit protects quota-bound endpoints with a fixed-window,
// per-IP limiter. The search endpoint fans out to a metered external API, so
// the limiter sits in front of it rather than the whole router.
package ratelimit

import (
	"sync"
	"time"
)

// Clock abstracts time for testing.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Rule limits one method+path combination.
type Rule struct {
	Method string
	Path   string
	Limit  int
	Window time.Duration
}

// Result reports the window state after a check.
type Result struct {
	Limit     int
	Remaining int
	RetryIn   time.Duration
}

type window struct {
	ruleKey   string
	count     int
	startedAt time.Time
}

// Limiter counts requests per IP per rule within fixed windows.
type Limiter struct {
	mu      sync.Mutex
	rules   map[string]Rule // key: "METHOD:PATH"
	windows map[string]*window
	clock   Clock
}

// NewLimiter creates a Limiter with the given rules.
func NewLimiter(rules []Rule) *Limiter {
	ruleMap := make(map[string]Rule, len(rules))
	for _, r := range rules {
		ruleMap[r.Method+":"+r.Path] = r
	}
	return &Limiter{
		rules:   ruleMap,
		windows: make(map[string]*window),
		clock:   realClock{},
	}
}

// Allow checks whether a request from ip to method+path may proceed. Requests
// to paths with no rule are always allowed.
func (l *Limiter) Allow(ip, method, path string) (Result, bool) {
	ruleKey := method + ":" + path
	rule, ok := l.rules[ruleKey]
	if !ok {
		return Result{}, true
	}

	now := l.clock.Now()
	key := ip + ":" + ruleKey

	l.mu.Lock()
	defer l.mu.Unlock()

	w, exists := l.windows[key]
	if !exists || now.Sub(w.startedAt) >= rule.Window {
		l.windows[key] = &window{ruleKey: ruleKey, count: 1, startedAt: now}
		return Result{Limit: rule.Limit, Remaining: rule.Limit - 1}, true
	}

	if w.count >= rule.Limit {
		return Result{
			Limit:   rule.Limit,
			RetryIn: rule.Window - now.Sub(w.startedAt),
		}, false
	}

	w.count++
	return Result{Limit: rule.Limit, Remaining: rule.Limit - w.count}, true
}

// Cleanup drops windows that have elapsed. Call periodically to keep the map
// bounded.
func (l *Limiter) Cleanup() {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, w := range l.windows {
		rule, ok := l.rules[w.ruleKey]
		if !ok || now.Sub(w.startedAt) >= rule.Window {
			delete(l.windows, key)
		}
	}
}
