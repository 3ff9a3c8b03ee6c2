package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadedSuite pairs a suite with the file it came from
type LoadedSuite struct {
	File  string
	Suite TestSuite
}

// LoadDir loads every .yaml suite under dir
func LoadDir(dir string) ([]LoadedSuite, error) {
	var loaded []LoadedSuite

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		suite, err := LoadSuite(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		rel, _ := filepath.Rel(dir, path)
		loaded = append(loaded, LoadedSuite{File: rel, Suite: suite})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loaded, nil
}

// LoadSuite parses a single YAML suite file
func LoadSuite(path string) (TestSuite, error) {
	var suite TestSuite

	data, err := os.ReadFile(path)
	if err != nil {
		return suite, err
	}
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return suite, err
	}
	if suite.Name == "" {
		return suite, fmt.Errorf("suite has no name")
	}
	for i, tc := range suite.Tests {
		if tc.Name == "" {
			return suite, fmt.Errorf("test #%d has no name", i)
		}
		if tc.Call.Function == "" {
			return suite, fmt.Errorf("test %q calls no function", tc.Name)
		}
	}
	return suite, nil
}
