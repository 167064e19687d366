package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	ConfigEnvVar      = "FLOODLOSS_CONFIG"
	defaultConfigFile = "conf.toml"
)

type Config struct {
	Input      InputConfig      `toml:"input"`
	Output     OutputConfig     `toml:"output"`
	Evaluation EvaluationConfig `toml:"evaluation"`
	Db         *DbConfig        `toml:"db"`
}

type InputConfig struct {
	LossCurves LossCurvesConfig `toml:"loss_curves"`
	Assets     AssetsConfig     `toml:"assets"`
}

type LossCurvesConfig struct {
	Path            string  `toml:"path"`
	Extension       string  `toml:"extension"`
	IndexResolution float64 `toml:"index_resolution"`
	MaxIndex        float64 `toml:"max_index"`
}

type AssetsConfig struct {
	Path            string   `toml:"path"`
	MapName         string   `toml:"map_name"`
	ID              string   `toml:"id"`
	Value           string   `toml:"value"`
	LossCurve       string   `toml:"loss_curve"`
	Intensities     []string `toml:"intensities"`
	IntensitySuffix string   `toml:"intensity_suffix"`
	// optional goval expression applied to every raw depth, e.g.
	// "depth <= 0 ? 0 : depth"
	DepthExpression string `toml:"depth_expression"`
}

func (a AssetsConfig) MapPath() string {
	return filepath.Join(a.Path, a.MapName)
}

type OutputConfig struct {
	FileName        string `toml:"file_name"`
	MapExtension    string `toml:"map_extension"`
	StatsExtension  string `toml:"stats_extension"`
	PercLossSuffix  string `toml:"perc_loss_suffix"`
	LossValueSuffix string `toml:"loss_value_suffix"`
	DetailedStats   bool   `toml:"detailed_stats"`
}

func (o OutputConfig) MapPath() string {
	return o.FileName + o.MapExtension
}

func (o OutputConfig) StatsPath() string {
	return o.FileName + o.StatsExtension
}

type EvaluationConfig struct {
	Workers int `toml:"workers"`
}

type DbConfig struct {
	Host      string `toml:"host"`
	User      string `toml:"user"`
	Port      string `toml:"port"`
	Password  string `toml:"password"`
	Database  string `toml:"database"`
	EnableSsl bool   `toml:"enable_ssl"`
}

func (t DbConfig) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

// ConfigPath picks the explicit path if given, then the env var, then
// conf.toml in the working directory.
func ConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p
	}
	return defaultConfigFile
}

func LoadConfig(path string) (*Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	cfg, err := ParseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

func ParseConfig(b []byte) (*Config, error) {
	cfg := Config{}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	lc := &c.Input.LossCurves
	if lc.Extension == "" {
		lc.Extension = ".csv"
	}

	a := &c.Input.Assets
	if a.Value == "" {
		a.Value = "value"
	}
	if a.LossCurve == "" {
		a.LossCurve = "loss_curve"
	}

	o := &c.Output
	if o.FileName == "" {
		o.FileName = "losses"
	}
	if o.MapExtension == "" {
		o.MapExtension = ".csv"
	}
	if o.StatsExtension == "" {
		o.StatsExtension = ".json"
	}
	if o.PercLossSuffix == "" {
		o.PercLossSuffix = "_perc_loss"
	}
	if o.LossValueSuffix == "" {
		o.LossValueSuffix = "_loss_value"
	}

	if c.Evaluation.Workers <= 0 {
		c.Evaluation.Workers = 1
	}
}

func (c Config) Validate() error {
	lc := c.Input.LossCurves
	if lc.Path == "" {
		return fmt.Errorf("input.loss_curves.path is required")
	}
	if lc.IndexResolution <= 0 {
		return fmt.Errorf("input.loss_curves.index_resolution must be > 0, got %v", lc.IndexResolution)
	}
	if lc.MaxIndex < 0 {
		return fmt.Errorf("input.loss_curves.max_index must be >= 0, got %v", lc.MaxIndex)
	}
	if len(c.Input.Assets.Intensities) == 0 {
		return fmt.Errorf("input.assets.intensities cannot be empty")
	}
	seen := map[string]bool{}
	for _, i := range c.Input.Assets.Intensities {
		if i == "" {
			return fmt.Errorf("input.assets.intensities contains an empty name")
		}
		if seen[i] {
			return fmt.Errorf("input.assets.intensities contains %s twice", i)
		}
		seen[i] = true
	}
	if c.Output.PercLossSuffix == c.Output.LossValueSuffix {
		return fmt.Errorf("output.perc_loss_suffix and output.loss_value_suffix must differ")
	}
	return nil
}
