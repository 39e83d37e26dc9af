package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kb2gnd/syncframe/syncconfig"
)

func loadSpec(path string) (syncconfig.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return syncconfig.Spec{}, err
	}

	var spec syncconfig.Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return syncconfig.Spec{}, err
	}
	return spec, nil
}
