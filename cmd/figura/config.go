package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// fileConfig mirrors the converter options for the optional TOML
// config file.
type fileConfig struct {
	MaxTitleLen    int     `toml:"max_title_len"`
	MaxGapParas    int     `toml:"max_gap_paras"`
	PageWidthRatio float64 `toml:"page_width_ratio"`
	AssetsDir      string  `toml:"assets_dir"`
	Debug          bool    `toml:"debug"`
}

// loadConfig reads and parses a TOML config file. Absent keys keep
// their zero value and are ignored by applyConfig.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &fileConfig{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// applyConfig overlays config file values onto option variables, but
// only where the corresponding flag was not set explicitly.
func applyConfig(cmd *cobra.Command, cfg *fileConfig, maxTitleLen, maxGapParas *int, pageWidthRatio *float64, assetsDir *string, debug *bool) {
	if cfg.MaxTitleLen > 0 && !cmd.Flags().Changed("max-title-len") {
		*maxTitleLen = cfg.MaxTitleLen
	}
	if cfg.MaxGapParas >= 0 && !cmd.Flags().Changed("max-gap-paras") {
		// Zero is a valid gap but also the TOML zero value; only apply
		// when the key is meaningfully present.
		if cfg.MaxGapParas > 0 {
			*maxGapParas = cfg.MaxGapParas
		}
	}
	if cfg.PageWidthRatio > 0 && !cmd.Flags().Changed("page-width-ratio") {
		*pageWidthRatio = cfg.PageWidthRatio
	}
	if cfg.AssetsDir != "" && !cmd.Flags().Changed("assets-dir") {
		*assetsDir = cfg.AssetsDir
	}
	if cfg.Debug && !cmd.Flags().Changed("debug") {
		*debug = true
	}
}
