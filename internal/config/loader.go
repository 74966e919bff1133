package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the search path.
const ConfigFileName = "blocks.yaml"

// LoadBlocks loads the blocks configuration.
// Search order: customPath -> ~/.blocks/configs/blocks.yaml ->
// ./configs/blocks.yaml -> embedded default -> DefaultBlocksConfig.
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A preset named in the file is applied to the timing section.
// Only a custom path that cannot be read or parsed is an error; broken
// files further down the search path are skipped.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	cfg, err := loadBlocksFile(customPath)
	if err != nil {
		return cfg, err
	}

	if cfg.Difficulty.Preset != "" {
		preset, err := ParsePreset(string(cfg.Difficulty.Preset))
		if err != nil {
			return cfg, err
		}
		ApplyBlocksPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadBlocksFile(customPath string) (BlocksConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBlocksConfig(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := decodeBlocks(data)
		if err != nil {
			return DefaultBlocksConfig(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeBlocks(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := decodeBlocks(defaultBlocksYAML); err == nil {
		return cfg, nil
	}
	return DefaultBlocksConfig(), nil
}

// decodeBlocks overlays YAML on top of the hardcoded defaults.
func decodeBlocks(data []byte) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultBlocksConfig(), err
	}
	return cfg, nil
}

// searchPaths returns the user and local config locations, in order.
func searchPaths() []string {
	var paths []string
	if dir := UserConfigDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, ConfigFileName))
	}
	return append(paths, filepath.Join("configs", ConfigFileName))
}

// UserConfigDir returns ~/.blocks/configs, or empty if home is unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blocks", "configs")
}
