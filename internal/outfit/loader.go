package outfit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/skyhold/outfitledger/internal/logger"
	"github.com/skyhold/outfitledger/internal/validation"
)

// Sentinel errors for the outfit loader
var (
	ErrDuplicateOutfit = errors.New("duplicate outfit name")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for outfits
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Outfits []Def `json:"outfits"`
}

// Def represents a single outfit definition in the JSON
type Def struct {
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	BaseCost   int64              `json:"base_cost"`
	Attributes map[string]float64 `json:"attributes,omitempty"`
}

// Loader handles loading and validating outfit configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	BuildRegistry(ctx context.Context, config *Config) (*Registry, error)
}

type outfitLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &outfitLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses an outfits JSON file
func (l *outfitLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaInvalid, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the config for structural problems the schema can't express
func (l *outfitLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if len(config.Outfits) == 0 {
		return fmt.Errorf("%w: no outfits defined", ErrInvalidConfig)
	}

	names := make(map[string]bool, len(config.Outfits))
	for i := range config.Outfits {
		if err := validateOutfitDef(i, &config.Outfits[i], names); err != nil {
			return err
		}
	}

	return nil
}

func validateOutfitDef(index int, def *Def, names map[string]bool) error {
	if def.Name == "" {
		return fmt.Errorf(ErrFmtOutfitAtIndexEmpty, ErrInvalidConfig, index)
	}

	if names[def.Name] {
		return fmt.Errorf(ErrFmtOutfitDuplicate, ErrDuplicateOutfit, def.Name)
	}
	names[def.Name] = true

	if def.Category == "" {
		return fmt.Errorf(ErrFmtOutfitEmptyCategory, ErrInvalidConfig, def.Name)
	}
	if def.BaseCost < 0 {
		return fmt.Errorf(ErrFmtOutfitNegativeCost, ErrInvalidConfig, def.Name)
	}
	for attr, value := range def.Attributes {
		// Mass, capacity and the like are magnitudes; flags are 0/1.
		if value < 0 {
			return fmt.Errorf(ErrFmtOutfitNegativeAttr, ErrInvalidConfig, def.Name, attr)
		}
	}

	return nil
}

// BuildRegistry validates the config and constructs the canonical registry
func (l *outfitLoader) BuildRegistry(ctx context.Context, config *Config) (*Registry, error) {
	if err := l.Validate(config); err != nil {
		return nil, err
	}

	registry := NewRegistry()
	for _, def := range config.Outfits {
		registry.add(New(def.Name, def.Category, def.BaseCost, def.Attributes))
	}

	logger.FromContext(ctx).Info(LogMsgRegistryLoaded,
		"version", config.Version,
		"outfits", registry.Len())

	return registry, nil
}
