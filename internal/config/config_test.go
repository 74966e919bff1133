package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blockscore "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestDefaultsMatchEngineRules(t *testing.T) {
	assert.Equal(t, blockscore.DefaultRules(), DefaultBlocksConfig().Rules())
	assert.NoError(t, DefaultBlocksConfig().Validate())
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decodeBlocks(defaultBlocksYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultBlocksConfig(), cfg)
}

func TestLoadBlocksFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadBlocks("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBlocksConfig(), cfg)
}

func TestLoadBlocksUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	writeFile(t, filepath.Join(home, ".blocks", "configs", "blocks.yaml"), "grid:\n  width: 12\n")

	cfg, err := LoadBlocks("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Grid.Width)
	assert.Equal(t, 20, cfg.Grid.Height, "keys missing from the file keep their defaults")
}

func TestLoadBlocksLocalDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, "configs", "blocks.yaml"), "scoring:\n  points_per_line: 40\n")

	cfg, err := LoadBlocks("")
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Scoring.PointsPerLine)
}

func TestLoadBlocksCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	writeFile(t, path, "timing:\n  base_interval_ms: 700\n")

	cfg, err := LoadBlocks(path)
	require.NoError(t, err)
	assert.Equal(t, 700*time.Millisecond, cfg.Rules().BaseInterval)
	assert.Equal(t, 80*time.Millisecond, cfg.Rules().MinInterval)
}

func TestLoadBlocksCustomPathErrors(t *testing.T) {
	_, err := LoadBlocks(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "grid: [1, 2\n")
	_, err = LoadBlocks(bad)
	assert.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	writeFile(t, invalid, "grid:\n  width: 2\n")
	_, err = LoadBlocks(invalid)
	assert.Error(t, err)
}

func TestLoadBlocksAppliesFilePreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hard.yaml")
	writeFile(t, path, "difficulty:\n  preset: Hard\n")

	cfg, err := LoadBlocks(path)
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, cfg.Difficulty.Preset)
	assert.Equal(t, 400, cfg.Timing.BaseIntervalMs)
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "NORMAL", " hard ", "Fixed"} {
		_, err := ParsePreset(name)
		assert.NoError(t, err, name)
	}
	_, err := ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestApplyBlocksPreset(t *testing.T) {
	easy := DefaultBlocksConfig()
	ApplyBlocksPreset(&easy, DifficultyEasy)
	hard := DefaultBlocksConfig()
	ApplyBlocksPreset(&hard, DifficultyHard)

	for level := 1; level <= 30; level++ {
		assert.Greater(t, easy.Rules().TickInterval(level), hard.Rules().TickInterval(level), "level %d", level)
	}

	fixed := DefaultBlocksConfig()
	ApplyBlocksPreset(&fixed, DifficultyFixed)
	rules := fixed.Rules()
	assert.Equal(t, rules.TickInterval(1), rules.TickInterval(40))
	assert.NoError(t, fixed.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := DefaultBlocksConfig()
	cfg.Randomizer.WeightedBias = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultBlocksConfig()
	cfg.Scoring.LevelDivisor = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultBlocksConfig()
	cfg.Difficulty.Preset = "brutal"
	assert.Error(t, cfg.Validate())
}

func TestYAMLReadsBack(t *testing.T) {
	cfg := DefaultBlocksConfig()
	cfg.Grid.Width = 14
	ApplyBlocksPreset(&cfg, DifficultyEasy)

	data, err := cfg.YAML()
	require.NoError(t, err)

	back, err := decodeBlocks(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
