package domain

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalogue.yaml
var defaultCatalogueYAML []byte

// Unclassified is reported when the GCR does not parse or falls below every band.
const Unclassified = "Unclassified"

// FieldSpec describes one numeric input of a feature field set.
type FieldSpec struct {
	ID          string `yaml:"id" validate:"required"`
	Label       string `yaml:"label" validate:"required"`
	SaveLabel   string `yaml:"save_label" validate:"required"`
	Placeholder string `yaml:"placeholder"`
	Step        string `yaml:"step" validate:"omitempty,numeric"` // empty: integers only
	Min         string `yaml:"min" validate:"omitempty,numeric"`
}

// Feature is the field set shown when a feature key is selected.
type Feature struct {
	Key    string      `yaml:"key" validate:"required"`
	Title  string      `yaml:"title" validate:"required"`
	Fields []FieldSpec `yaml:"fields" validate:"required,min=1,unique=ID,dive"`
}

// Condition is a selectable asset condition that can be rated 0-10.
type Condition struct {
	Key   string `yaml:"key" validate:"required"`
	Label string `yaml:"label" validate:"required"`
}

// IntakeField is echoed back verbatim with an optional unit suffix.
type IntakeField struct {
	ID     string `yaml:"id" validate:"required"`
	Label  string `yaml:"label" validate:"required"`
	Suffix string `yaml:"suffix"`
}

// IntakeSection groups intake fields under a heading.
type IntakeSection struct {
	Title  string        `yaml:"title" validate:"required"`
	Fields []IntakeField `yaml:"fields" validate:"required,min=1,unique=ID,dive"`
}

// Strategy is a rehabilitation strategy offered in the report form.
type Strategy struct {
	Key   string `yaml:"key" validate:"required"`
	Label string `yaml:"label" validate:"required"`
}

// ClassificationBand maps GCR values at or above Min to Label.
type ClassificationBand struct {
	Min   float64 `yaml:"min" validate:"gte=0,lte=10"`
	Label string  `yaml:"label" validate:"required"`
}

// Catalogue is the dispatch table behind every dynamic form section.
type Catalogue struct {
	Features        []Feature            `yaml:"features" validate:"required,min=1,unique=Key,dive"`
	Conditions      []Condition          `yaml:"conditions" validate:"required,min=1,unique=Key,dive"`
	Intake          []IntakeSection      `yaml:"intake" validate:"dive"`
	Strategies      []Strategy           `yaml:"strategies" validate:"unique=Key,dive"`
	Classifications []ClassificationBand `yaml:"classifications" validate:"dive"`
}

// LoadCatalogue reads the catalogue from path, or the embedded default when
// path is empty, and validates it.
func LoadCatalogue(path string) (*Catalogue, error) {
	data := defaultCatalogueYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalogue: %w", err)
		}
		data = b
	}

	cat, err := DecodeCatalogue(data)
	if err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// DefaultCatalogue returns the embedded catalogue. It panics if the embedded
// file is invalid, which the package tests rule out.
func DefaultCatalogue() *Catalogue {
	cat, err := LoadCatalogue("")
	if err != nil {
		panic(err)
	}
	return cat
}

// DecodeCatalogue parses catalogue YAML, rejecting unknown keys.
func DecodeCatalogue(data []byte) (*Catalogue, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cat Catalogue
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}
	return &cat, nil
}

// Validate checks struct constraints, field id uniqueness across features,
// and that classification bands are listed from highest to lowest.
func (c *Catalogue) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid catalogue: %w", err)
	}

	var errs []error
	seen := make(map[string]string)
	for _, f := range c.Features {
		for _, field := range f.Fields {
			if owner, dup := seen[field.ID]; dup {
				errs = append(errs, fmt.Errorf("field %q appears in both %s and %s", field.ID, owner, f.Key))
				continue
			}
			seen[field.ID] = f.Key
		}
	}
	for i := 1; i < len(c.Classifications); i++ {
		if c.Classifications[i].Min >= c.Classifications[i-1].Min {
			errs = append(errs, fmt.Errorf("classification %q must have a lower min than %q",
				c.Classifications[i].Label, c.Classifications[i-1].Label))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid catalogue: %w", errors.Join(errs...))
	}
	return nil
}

// CheckReadiness reports whether the catalogue can drive the form.
func (c *Catalogue) CheckReadiness(_ context.Context) error {
	if c == nil || len(c.Features) == 0 {
		return errors.New("catalogue has no features")
	}
	return nil
}

// FieldSet returns the field set for a feature key. ok is false for empty or
// unknown keys, in which case the builder clears its container and hides the
// save control.
func (c *Catalogue) FieldSet(key string) (Feature, bool) {
	for _, f := range c.Features {
		if f.Key == key {
			return f, true
		}
	}
	return Feature{}, false
}

// Condition looks up a condition by key.
func (c *Catalogue) Condition(key string) (Condition, bool) {
	for _, cond := range c.Conditions {
		if cond.Key == key {
			return cond, true
		}
	}
	return Condition{}, false
}

// StrategyLabels returns the labels of the selected strategy keys in
// catalogue order. Unknown keys are ignored.
func (c *Catalogue) StrategyLabels(selected []string) []string {
	want := make(map[string]bool, len(selected))
	for _, k := range selected {
		want[k] = true
	}

	var labels []string
	for _, s := range c.Strategies {
		if want[s.Key] {
			labels = append(labels, s.Label)
		}
	}
	return labels
}

// Classify maps a raw GCR value to its asset classification.
func (c *Catalogue) Classify(rawGCR string) string {
	gcr, ok := ParseNumber(rawGCR)
	if !ok {
		return Unclassified
	}
	for _, band := range c.Classifications {
		if gcr >= band.Min {
			return band.Label
		}
	}
	return Unclassified
}
