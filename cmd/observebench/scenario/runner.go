package scenario

import (
	"context"
	"log"
	"time"

	"github.com/jamiealquiza/tachymeter"
)

type Result struct {
	Scenario      Scenario
	Metrics       *tachymeter.Metrics
	Notifications int64
	Checksum      uint64
}

// Run builds s and times every iteration. The graph is built outside the
// timed section.
func Run(ctx context.Context, s Scenario) (Result, error) {
	g, err := Build(s)
	if err != nil {
		return Result{}, err
	}

	tach := tachymeter.New(&tachymeter.Config{Size: s.Iterations})
	for i := 0; i < s.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		start := time.Now()
		g.Step(i)
		tach.AddTime(time.Since(start))
	}

	return Result{
		Scenario:      s,
		Metrics:       tach.Calc(),
		Notifications: g.Notifications(),
		Checksum:      g.Checksum(),
	}, nil
}

func RunAll(ctx context.Context, cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(cfg.Scenarios))
	for _, s := range cfg.Scenarios {
		log.Printf("Running '%s'", s.Name)
		r, err := Run(ctx, s)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
