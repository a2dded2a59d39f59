package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Kind string

const (
	KindFanout    Kind = "fanout"
	KindLinkChain Kind = "link-chain"
	KindAggregate Kind = "aggregate"
	KindGroup     Kind = "group"
)

var ErrInvalidScenario = errors.New("scenario: invalid")

// Scenario describes one benchmark graph. Width and Depth mean different
// things per kind:
//
//	fanout:     Depth chained events, Width listeners on each
//	link-chain: Width chains of Depth two-way linked values
//	aggregate:  Width member states under Depth nested aggregates
//	group:      Width states in one group, Depth unused
type Scenario struct {
	Name       string `yaml:"name"`
	Kind       Kind   `yaml:"kind"`
	Width      int    `yaml:"width"`
	Depth      int    `yaml:"depth"`
	Iterations int    `yaml:"iterations"`
}

type Config struct {
	Iterations int        `yaml:"iterations"`
	Scenarios  []Scenario `yaml:"scenarios"`
}

var (
	defaultWidths     = []int{1, 10, 100, 1_000}
	defaultDepths     = []int{1, 10, 100}
	defaultIterations = 100
)

// DefaultConfig is the width by depth grid for every kind.
func DefaultConfig() Config {
	cfg := Config{Iterations: defaultIterations}
	for _, kind := range []Kind{KindFanout, KindLinkChain, KindAggregate} {
		for _, w := range defaultWidths {
			for _, d := range defaultDepths {
				if kind == KindLinkChain && d < 2 {
					d = 2
				}
				cfg.Scenarios = append(cfg.Scenarios, Scenario{
					Name:  fmt.Sprintf("%s: %d * %d", kind, w, d),
					Kind:  kind,
					Width: w,
					Depth: d,
				})
			}
		}
	}
	for _, w := range defaultWidths[1:] {
		cfg.Scenarios = append(cfg.Scenarios, Scenario{
			Name:  fmt.Sprintf("%s: %d", KindGroup, w),
			Kind:  KindGroup,
			Width: w,
			Depth: 1,
		})
	}
	return cfg.withDefaults()
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error while reading scenario file: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error while parsing scenario file: %w", err)
	}
	if cfg.Iterations == 0 {
		cfg.Iterations = defaultIterations
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) withDefaults() Config {
	scenarios := make([]Scenario, len(c.Scenarios))
	for i, s := range c.Scenarios {
		if s.Iterations == 0 {
			s.Iterations = c.Iterations
		}
		if s.Depth == 0 {
			s.Depth = 1
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("%s: %d * %d", s.Kind, s.Width, s.Depth)
		}
		scenarios[i] = s
	}
	c.Scenarios = scenarios
	return c
}

func (c Config) Validate() error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalidScenario)
	}
	for _, s := range c.Scenarios {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s Scenario) Validate() error {
	switch s.Kind {
	case KindFanout, KindLinkChain, KindAggregate, KindGroup:
	default:
		return fmt.Errorf("%w: %q: unknown kind %q", ErrInvalidScenario, s.Name, s.Kind)
	}
	if s.Width <= 0 {
		return fmt.Errorf("%w: %q: width must be positive, got %d", ErrInvalidScenario, s.Name, s.Width)
	}
	if s.Depth <= 0 {
		return fmt.Errorf("%w: %q: depth must be positive, got %d", ErrInvalidScenario, s.Name, s.Depth)
	}
	if s.Iterations <= 0 {
		return fmt.Errorf("%w: %q: iterations must be positive, got %d", ErrInvalidScenario, s.Name, s.Iterations)
	}
	if s.Kind == KindLinkChain && s.Depth < 2 {
		return fmt.Errorf("%w: %q: a link chain needs depth of at least 2", ErrInvalidScenario, s.Name)
	}
	if s.Kind == KindGroup && s.Width < 2 {
		return fmt.Errorf("%w: %q: a group needs width of at least 2", ErrInvalidScenario, s.Name)
	}
	return nil
}
