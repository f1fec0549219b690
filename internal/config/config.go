package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/luxerent/pricing-service/internal/models"
	"github.com/luxerent/pricing-service/internal/pricing"
)

// Config is the YAML-backed service configuration. The file path comes from
// PRICING_CONFIG; a missing file means defaults. Database credentials stay
// in the environment (see pkg/db).
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Cache   CacheConfig   `yaml:"cache"`
	Pricing PricingConfig `yaml:"pricing"`
}

type ServerConfig struct {
	Addr         string   `yaml:"addr"`
	ReadTimeout  Duration `yaml:"read_timeout"`
	WriteTimeout Duration `yaml:"write_timeout"`
	IdleTimeout  Duration `yaml:"idle_timeout"`
}

type CacheConfig struct {
	OfferingTTL Duration `yaml:"offering_ttl"`
}

// PricingConfig holds the per-category hourly minimums applied when an
// hourly booking has no usable window. Discount rates are deliberately not
// configurable; they are engine constants.
type PricingConfig struct {
	HourlyMinimums map[string]int64 `yaml:"hourly_minimums"`
}

// Duration wraps time.Duration for "10s" style YAML values.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the shipped configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  Duration(10 * time.Second),
			WriteTimeout: Duration(15 * time.Second),
			IdleTimeout:  Duration(60 * time.Second),
		},
		Cache: CacheConfig{
			OfferingTTL: Duration(5 * time.Minute),
		},
	}
}

// Load reads the YAML file at path, layering it over the defaults. An empty
// path or absent file yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Policy builds the engine policy from the configured minimums, falling back
// to the engine defaults for categories the file does not mention.
func (p PricingConfig) Policy() (pricing.Policy, error) {
	policy := pricing.DefaultPolicy()
	for raw, hours := range p.HourlyMinimums {
		cat, ok := models.ParseCategory(raw)
		if !ok {
			return pricing.Policy{}, fmt.Errorf("hourly_minimums: unknown category %q", raw)
		}
		if hours <= 0 {
			return pricing.Policy{}, fmt.Errorf("hourly_minimums: %s must be positive", raw)
		}
		policy.HourlyMinimums[cat] = hours
	}
	return policy, nil
}
