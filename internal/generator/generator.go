package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"schedsim/internal/requests"
)

var ErrInvalidProcessCount = errors.New("invalid number of processes")

// Config holds the inclusive ranges jobs are drawn from.
type Config struct {
	MinArrival  int
	MaxArrival  int
	MinBurst    int
	MaxBurst    int
	MinPriority int
	MaxPriority int
}

func DefaultConfig() Config {
	return Config{
		MinArrival:  0,
		MaxArrival:  10,
		MinBurst:    1,
		MaxBurst:    10,
		MinPriority: 1,
		MaxPriority: 5,
	}
}

func (c Config) Validate() error {
	switch {
	case c.MinArrival < 0 || c.MaxArrival < c.MinArrival:
		return fmt.Errorf("invalid arrival range [%d, %d]", c.MinArrival, c.MaxArrival)
	case c.MinBurst < 1 || c.MaxBurst < c.MinBurst:
		return fmt.Errorf("invalid burst range [%d, %d]", c.MinBurst, c.MaxBurst)
	case c.MinPriority < 1 || c.MaxPriority < c.MinPriority:
		return fmt.Errorf("invalid priority range [%d, %d]", c.MinPriority, c.MaxPriority)
	}
	return nil
}

type Generator struct {
	config Config
	rand   *rand.Rand
}

// New returns a generator drawing from config. A zero seed seeds from the
// current time.
func New(config Config, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
	}
}

// Generate returns count jobs with ids 1..count, each field drawn uniformly
// from its configured range.
func (g *Generator) Generate(count int) ([]requests.Job, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidProcessCount, count)
	}
	if err := g.config.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]requests.Job, count)
	for i := range jobs {
		jobs[i] = requests.Job{
			ProcessId:   i + 1,
			ArrivalTime: g.between(g.config.MinArrival, g.config.MaxArrival),
			BurstTime:   g.between(g.config.MinBurst, g.config.MaxBurst),
			Priority:    g.between(g.config.MinPriority, g.config.MaxPriority),
		}
	}
	return jobs, nil
}

func (g *Generator) between(lo, hi int) int {
	return lo + g.rand.Intn(hi-lo+1)
}
