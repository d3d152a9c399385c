package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Studio holds the business settings that are not secrets.
type Studio struct {
	Name        string          `yaml:"name"`
	NotifyEmail string          `yaml:"notify_email"`
	Pricing     map[int]float64 `yaml:"pricing"`
}

func defaultStudio() *Studio {
	return &Studio{
		Name: "Studio",
		Pricing: map[int]float64{
			4:  100,
			6:  130,
			8:  160,
			12: 230,
			24: 400,
		},
	}
}

// LoadStudio reads the studio YAML file. An empty path yields the defaults.
// ${VAR} placeholders are expanded from the environment.
func LoadStudio(path string) (*Studio, error) {
	studio := defaultStudio()
	if path == "" {
		return studio, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read studio config: %w", err)
	}
	data = []byte(os.ExpandEnv(string(data)))

	var parsed Studio
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse studio config: %w", err)
	}

	if parsed.Name != "" {
		studio.Name = parsed.Name
	}
	studio.NotifyEmail = parsed.NotifyEmail
	if len(parsed.Pricing) > 0 {
		studio.Pricing = parsed.Pricing
	}
	return studio, nil
}

// PriceFor returns the package price for a booking of hours, zero when the
// duration has no listed price.
func (s *Studio) PriceFor(hours int) float64 {
	if s == nil {
		return 0
	}
	return s.Pricing[hours]
}
