package plotrender

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	OutputDir string `yaml:"outputDir" json:"outputDir"`

	CanvasWidth  int `yaml:"canvasWidth" json:"canvasWidth"`
	CanvasHeight int `yaml:"canvasHeight" json:"canvasHeight"`

	// display geometry used when a plot asks to be maximized
	DisplayWidth  int `yaml:"displayWidth" json:"displayWidth"`
	DisplayHeight int `yaml:"displayHeight" json:"displayHeight"`

	TitleFontSize float64 `yaml:"titleFontSize" json:"titleFontSize"`
	LabelFontSize float64 `yaml:"labelFontSize" json:"labelFontSize"`
	TickFontSize  float64 `yaml:"tickFontSize" json:"tickFontSize"`

	XLabel string `yaml:"xLabel" json:"xLabel"`
	YLabel string `yaml:"yLabel" json:"yLabel"`
}

func (cfg *Config) applyDefaults() {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./plots"
	}

	if cfg.CanvasWidth <= 0 {
		cfg.CanvasWidth = 640
	}

	if cfg.CanvasHeight <= 0 {
		cfg.CanvasHeight = 480
	}

	if cfg.DisplayWidth <= 0 {
		cfg.DisplayWidth = 1920
	}

	if cfg.DisplayHeight <= 0 {
		cfg.DisplayHeight = 1080
	}

	if cfg.TitleFontSize <= 0 {
		cfg.TitleFontSize = 36
	}

	if cfg.LabelFontSize <= 0 {
		cfg.LabelFontSize = 24
	}

	if cfg.TickFontSize <= 0 {
		cfg.TickFontSize = 20
	}
}

func LoadConfig(name string) (*Config, error) {
	d, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}

	err = yaml.Unmarshal(d, cfg)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}
