package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/delaneyj/observe/cmd/observebench/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := scenario.ParseConfig([]byte(`
iterations: 50
scenarios:
  - name: wide fanout
    kind: fanout
    width: 100
    depth: 2
  - kind: link-chain
    width: 3
    depth: 4
    iterations: 7
  - kind: group
    width: 5
`))
	require.NoError(t, err)
	require.Len(t, cfg.Scenarios, 3)

	assert.Equal(t, scenario.Scenario{
		Name: "wide fanout", Kind: scenario.KindFanout, Width: 100, Depth: 2, Iterations: 50,
	}, cfg.Scenarios[0])
	assert.Equal(t, "link-chain: 3 * 4", cfg.Scenarios[1].Name)
	assert.Equal(t, 7, cfg.Scenarios[1].Iterations)
	assert.Equal(t, 1, cfg.Scenarios[2].Depth)
}

func TestParseConfigDefaultIterations(t *testing.T) {
	cfg, err := scenario.ParseConfig([]byte(`
scenarios:
  - kind: aggregate
    width: 2
    depth: 2
`))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Scenarios[0].Iterations)
}

func TestParseConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"no scenarios":    `iterations: 5`,
		"unknown kind":    "scenarios:\n  - kind: nope\n    width: 1\n",
		"zero width":      "scenarios:\n  - kind: fanout\n    width: 0\n",
		"negative depth":  "scenarios:\n  - kind: fanout\n    width: 1\n    depth: -1\n",
		"negative iters":  "scenarios:\n  - kind: fanout\n    width: 1\n    iterations: -3\n",
		"short chain":     "scenarios:\n  - kind: link-chain\n    width: 1\n    depth: 1\n",
		"lonely group":    "scenarios:\n  - kind: group\n    width: 1\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := scenario.ParseConfig([]byte(doc))
			require.ErrorIs(t, err, scenario.ErrInvalidScenario)
		})
	}
}

func TestParseConfigMalformed(t *testing.T) {
	_, err := scenario.ParseConfig([]byte("scenarios: [\n"))
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios:\n  - kind: group\n    width: 3\n"), 0644))

	cfg, err := scenario.LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Scenarios, 1)
	assert.Equal(t, scenario.KindGroup, cfg.Scenarios[0].Kind)

	_, err = scenario.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := scenario.DefaultConfig()
	require.NoError(t, cfg.Validate())
	for _, s := range cfg.Scenarios {
		assert.Equal(t, 100, s.Iterations, s.Name)
	}
}
