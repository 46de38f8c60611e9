// Command validate checks a field catalogue before it is deployed through
// CATALOGUE_PATH. It runs the checks in phases (schema, uniqueness, page ids,
// constraints) and exits non-zero if any phase fails.
//
// Usage:
//
//	go run ./cmd/validate -catalogue deploy/catalogue.yaml
//
// Without -catalogue the embedded default is checked.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/couchcryptid/stormwater-assessment/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	path := flag.String("catalogue", "", "path to a catalogue YAML file (default: embedded catalogue)")
	flag.Parse()

	os.Exit(run(*path))
}

func run(path string) int {
	fmt.Println("=== Catalogue Validation ===")
	fmt.Println()

	source := path
	if source == "" {
		source = "(embedded)"
	}
	fmt.Printf("Catalogue: %s\n\n", source)

	schema := &phase{name: "Phase 1: Schema"}
	cat, err := decode(path)
	if err != nil {
		schema.errorf("%v", err)
	}

	phases := []*phase{schema}
	if cat != nil {
		phases = append(phases,
			validateUniqueness(cat),
			validatePageIDs(cat),
			validateConstraints(cat),
		)
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	if cat != nil {
		fmt.Println()
		fmt.Printf("Catalogue: %d features, %d conditions, %d intake sections, %d strategies, %d bands\n",
			len(cat.Features), len(cat.Conditions), len(cat.Intake), len(cat.Strategies), len(cat.Classifications))
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func decode(path string) (*domain.Catalogue, error) {
	if path == "" {
		return domain.DefaultCatalogue(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}
	return domain.DecodeCatalogue(data)
}

// ── Phase 2: Uniqueness ──

func validateUniqueness(cat *domain.Catalogue) *phase {
	p := &phase{name: "Phase 2: Uniqueness"}

	checkKeys(p, "feature", keysOf(cat.Features, func(f domain.Feature) string { return f.Key }))
	checkKeys(p, "condition", keysOf(cat.Conditions, func(c domain.Condition) string { return c.Key }))
	checkKeys(p, "strategy", keysOf(cat.Strategies, func(s domain.Strategy) string { return s.Key }))

	labels := make(map[string]string)
	for _, f := range cat.Features {
		for _, field := range f.Fields {
			if owner, dup := labels[f.Key+"|"+field.SaveLabel]; dup {
				p.errorf("feature %s: save label %q used by %s and %s", f.Key, field.SaveLabel, owner, field.ID)
				continue
			}
			labels[f.Key+"|"+field.SaveLabel] = field.ID
		}
	}
	return p
}

func keysOf[T any](items []T, key func(T) string) []string {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = key(it)
	}
	return keys
}

func checkKeys(p *phase, kind string, keys []string) {
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			p.errorf("%s key %q appears more than once", kind, k)
		}
		seen[k] = true
	}
}

// ── Phase 3: Page ids ──

// validatePageIDs makes sure no catalogue input shares an element id with
// another input on the page, including the fixed indicator and hydrology
// fields and the report controls.
func validatePageIDs(cat *domain.Catalogue) *phase {
	p := &phase{name: "Phase 3: Page element ids"}

	owners := make(map[string]string)
	claim := func(id, owner string) {
		if prev, dup := owners[id]; dup {
			p.errorf("element id %q used by %s and %s", id, prev, owner)
			return
		}
		owners[id] = owner
	}

	for _, ind := range domain.Indicators {
		for _, src := range ind.Sources {
			claim(src, "indicator "+ind.Name)
		}
		claim(ind.OutputID, "indicator "+ind.Name)
	}
	for _, id := range []string{
		domain.FieldPrecipitation, domain.FieldEvapotranspiration, domain.FieldFlowPipe1,
		domain.FieldFlowPipe2, domain.FieldFloodEvents, domain.FieldTotalTime, domain.FieldInstantaneousFlow,
	} {
		claim(id, "hydrology")
	}
	for _, id := range []string{domain.FieldGCR, domain.FieldRehabilitationStrategy, domain.FieldPreservation, "osac-slider", "osac-value"} {
		claim(id, "report form")
	}

	for _, f := range cat.Features {
		for _, field := range f.Fields {
			claim(field.ID, "feature "+f.Key)
		}
	}
	for _, sec := range cat.Intake {
		for _, field := range sec.Fields {
			claim(field.ID, "intake "+sec.Title)
		}
	}
	return p
}

// ── Phase 4: Constraints ──

func validateConstraints(cat *domain.Catalogue) *phase {
	p := &phase{name: "Phase 4: Constraints"}

	err := cat.Validate()
	if err == nil {
		return p
	}

	// Validate joins independent problems; list each one.
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			p.errorf("%v", e)
		}
		return p
	}
	p.errorf("%v", err)
	return p
}
