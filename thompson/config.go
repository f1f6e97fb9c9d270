package main

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/mfroeh/thompson/regex"
)

// loadLimits reads recognizer limits from a YAML file such as
//
//	maxDfaStates: 512
//	maxNfaStates: 4096
//
// Fields missing from the file keep their defaults. An empty path means
// defaults only.
func loadLimits(path string) (regex.Limits, error) {
	limits := regex.DefaultLimits()
	if path == "" {
		return limits, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return regex.Limits{}, err
	}
	if err := yaml.UnmarshalStrict(content, &limits); err != nil {
		return regex.Limits{}, fmt.Errorf("failed to read limits from %s: %w", path, err)
	}
	return limits, nil
}
