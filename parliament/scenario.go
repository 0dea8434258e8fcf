package parliament

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario bundles a legislature, its seat table and the declared
// cooperation between parties.
type Scenario struct {
	// Name is a free-form label used in figure titles and logs.
	Name string `yaml:"name"`

	// Legislature is the total number of seats (0 ⇒ DefaultLegislature).
	Legislature int `yaml:"legislature,omitempty"`

	// Majority overrides the derived threshold (0 ⇒ Majority(Legislature)).
	Majority int `yaml:"majority,omitempty"`

	Seats    Seats    `yaml:"seats"`
	Partners Partners `yaml:"partners"`
}

// LoadScenario reads and decodes a YAML scenario file.
// The result is not validated; call Validate before use.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes a YAML scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}
	if sc.Seats == nil {
		sc.Seats = Seats{}
	}
	if sc.Partners == nil {
		sc.Partners = Partners{}
	}
	return &sc, nil
}

// Size returns the legislature size, applying the default when unset.
func (sc *Scenario) Size() int {
	if sc.Legislature <= 0 {
		return DefaultLegislature
	}
	return sc.Legislature
}

// Threshold returns the majority used for this scenario.
func (sc *Scenario) Threshold() int {
	if sc.Majority > 0 {
		return sc.Majority
	}
	return Majority(sc.Size())
}

// Validate checks the seat table, the partner mapping and the legislature
// bounds. All violations are joined into a single error.
func (sc *Scenario) Validate() error {
	var errs []error
	if sc.Legislature < 0 {
		errs = append(errs, fmt.Errorf("%w: legislature %d", ErrBadLegislature, sc.Legislature))
	}
	if sc.Majority < 0 || sc.Majority > sc.Size() {
		errs = append(errs, fmt.Errorf("%w: majority %d of %d", ErrBadLegislature, sc.Majority, sc.Size()))
	}
	if err := sc.Seats.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := sc.Partners.Validate(sc.Seats); err != nil {
		errs = append(errs, err)
	}
	if total := sc.Seats.Total(); total > sc.Size() {
		errs = append(errs, fmt.Errorf("%w: %d > %d", ErrSeatOverflow, total, sc.Size()))
	}
	return errors.Join(errs...)
}
