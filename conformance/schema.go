package conformance

import (
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"dataobject/types"
)

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Props       map[string]any `yaml:"props,omitempty"` // seeds every test's bag
	Tests       []TestCase     `yaml:"tests"`
}

// TestCase represents a single test within a suite
type TestCase struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Skip        any            `yaml:"skip,omitempty"` // bool or string
	Code        string         `yaml:"code"`
	Props       map[string]any `yaml:"props,omitempty"` // layered over the suite props
	Expect      Expectation    `yaml:"expect"`
}

// Expectation defines what result is expected from a test. Every field
// that is set must hold.
type Expectation struct {
	Value  yaml.Node      `yaml:"value,omitempty"`  // lenient equality; an explicit null is the null string
	Type   string         `yaml:"type,omitempty"`   // exact TypeName, e.g. "[Int32 from String]"
	String string         `yaml:"string,omitempty"` // exact rendering
	Error  string         `yaml:"error,omitempty"`  // E_TYPE, E_COMPARE, ...
	Bag    map[string]any `yaml:"bag,omitempty"`    // properties after the run
}

// HasValue reports whether a value is expected, including an explicit null
func (e *Expectation) HasValue() bool {
	return e.Value.Kind != 0
}

// ExpectedValue decodes the expected value into a YAML scalar
func (e *Expectation) ExpectedValue() (any, error) {
	var raw any
	if err := e.Value.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// IsEmpty reports whether no expectation is set
func (e *Expectation) IsEmpty() bool {
	return !e.HasValue() && e.Type == "" && e.String == "" && e.Error == "" && len(e.Bag) == 0
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}

// Validate reports every structural problem in the suite at once
func (s *TestSuite) Validate() error {
	var err error
	if s.Name == "" {
		err = multierr.Append(err, fmt.Errorf("suite has no name"))
	}
	if len(s.Tests) == 0 {
		err = multierr.Append(err, fmt.Errorf("suite %q has no tests", s.Name))
	}

	seen := make(map[string]bool, len(s.Tests))
	for i, tc := range s.Tests {
		label := tc.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
			err = multierr.Append(err, fmt.Errorf("test %s has no name", label))
		} else if seen[tc.Name] {
			err = multierr.Append(err, fmt.Errorf("duplicate test name %q", tc.Name))
		}
		seen[tc.Name] = true

		if tc.Code == "" {
			err = multierr.Append(err, fmt.Errorf("test %s has no code", label))
		}
		if tc.Expect.IsEmpty() {
			err = multierr.Append(err, fmt.Errorf("test %s has no expectation", label))
		}
		if tc.Expect.Error != "" {
			if _, ok := types.ErrorFromString(tc.Expect.Error); !ok {
				err = multierr.Append(err, fmt.Errorf("test %s: unknown error code %s", label, tc.Expect.Error))
			}
		}
		if err2 := checkProps(tc.Props); err2 != nil {
			err = multierr.Append(err, fmt.Errorf("test %s: %w", label, err2))
		}
	}

	return multierr.Append(err, checkProps(s.Props))
}

func checkProps(props map[string]any) error {
	if _, ok := props[""]; ok {
		return fmt.Errorf("props: %w", types.ErrInvalidKey)
	}
	return nil
}
