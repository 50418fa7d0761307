package unit

import (
	"fmt"

	"recobench/pkg/core"
)

// Config describes how to launch one algorithm's experiment unit.
type Config struct {
	Command string   `mapstructure:"command" yaml:"command"`
	Args    []string `mapstructure:"args" yaml:"args"`
	Env     []string `mapstructure:"env" yaml:"env"`
}

// Build assembles the algorithm to experiment-unit map for a run.
// Provider "mock" yields canned units for every algorithm; "exec" requires
// a configured command per algorithm.
func Build(provider string, algorithms []string, configs map[string]Config) (map[string]core.ExperimentUnit, error) {
	units := make(map[string]core.ExperimentUnit, len(algorithms))
	for _, algo := range algorithms {
		switch provider {
		case "mock":
			units[algo] = MockUnit{Algorithm: algo}
		case "exec":
			cfg, ok := configs[algo]
			if !ok || cfg.Command == "" {
				return nil, fmt.Errorf("no unit command configured for algorithm %q", algo)
			}
			units[algo] = ExecUnit{
				Algorithm: algo,
				Command:   cfg.Command,
				Args:      cfg.Args,
				Env:       cfg.Env,
			}
		default:
			return nil, fmt.Errorf("unknown provider: %s", provider)
		}
	}
	return units, nil
}
