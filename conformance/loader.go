package conformance

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadedTest represents a test with its source file path
type LoadedTest struct {
	File  string
	Suite *TestSuite
	Test  TestCase
}

// Load loads every path in order. Directories are walked for *.yaml
// files; anything else is read as a single suite.
func Load(paths ...string) ([]LoadedTest, error) {
	var loaded []LoadedTest
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrap(err, "stat suite path")
		}

		var tests []LoadedTest
		if info.IsDir() {
			tests, err = LoadDir(p)
		} else {
			tests, err = LoadFile(p)
		}
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, tests...)
	}
	return loaded, nil
}

// LoadDir walks dir and loads all test cases from its YAML files, in
// lexical file order. File names are recorded relative to dir.
func LoadDir(dir string) ([]LoadedTest, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext == ".yaml" || ext == ".yml" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walk %s", dir)
	}
	sort.Strings(files)

	var loaded []LoadedTest
	for _, path := range files {
		tests, err := LoadFile(path)
		if err != nil {
			return nil, err
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		for i := range tests {
			tests[i].File = filepath.ToSlash(rel)
		}
		loaded = append(loaded, tests...)
	}
	return loaded, nil
}

// LoadFile parses a single YAML suite and returns its test cases
func LoadFile(path string) ([]LoadedTest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	suite, err := ParseSuite(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	tests := make([]LoadedTest, 0, len(suite.Tests))
	for _, tc := range suite.Tests {
		tests = append(tests, LoadedTest{
			File:  filepath.Base(path),
			Suite: suite,
			Test:  tc,
		})
	}
	return tests, nil
}

// ParseSuite decodes and validates one suite document
func ParseSuite(data []byte) (*TestSuite, error) {
	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}
	if err := suite.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid suite")
	}
	return &suite, nil
}
