// SPDX-License-Identifier: MPL-2.0

package lockscreen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"
)

const (
	// MinSuffix and MaxSuffix bound the random part of a version number.
	MinSuffix = 100
	MaxSuffix = 998

	dateLayout = "20060102"
)

var errBadVersion = errors.New("malformed version number")

type (
	// Generator produces version numbers of the form YYYYMMDD followed by a
	// three-digit suffix in [MinSuffix, MaxSuffix]. It is safe for concurrent use.
	Generator struct {
		mu  sync.Mutex
		now func() time.Time
		rng *rand.Rand
	}

	// GeneratorOption configures a Generator.
	GeneratorOption func(*Generator)
)

// WithClock sets the time source used for the date part and the default seed.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// WithSeed fixes the random source.
func WithSeed(seed uint64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// NewGenerator returns a Generator seeded from the current Unix time unless
// WithSeed is given.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := uint64(g.now().Unix())
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
	return g
}

// Next returns a fresh version number for the current local date.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	suffix := MinSuffix + g.rng.IntN(MaxSuffix-MinSuffix+1)
	return g.now().Format(dateLayout) + strconv.Itoa(suffix)
}

// ParseVersion splits a version number into its date and suffix.
func ParseVersion(v string) (time.Time, int, error) {
	if len(v) != len(dateLayout)+3 {
		return time.Time{}, 0, fmt.Errorf("%w: %q", errBadVersion, v)
	}
	date, err := time.ParseInLocation(dateLayout, v[:len(dateLayout)], time.Local)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: %q: %w", errBadVersion, v, err)
	}
	suffix, err := strconv.Atoi(v[len(dateLayout):])
	if err != nil || suffix < MinSuffix || suffix > MaxSuffix {
		return time.Time{}, 0, fmt.Errorf("%w: %q: suffix out of range", errBadVersion, v)
	}
	return date, suffix, nil
}
