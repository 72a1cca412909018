// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

// Config holds the file based defaults of the render command.
// Command line flags take precedence over every field.
type Config struct {
	Source      *string `yaml:"source,omitempty"`
	Destination *string `yaml:"destination,omitempty"`
	// Template is a path to a page template file
	Template *string `yaml:"template,omitempty"`
	Workers  *int    `yaml:"workers,omitempty"`
	FailFast *bool   `yaml:"failFast,omitempty"`
}

// Settings returns the configured values keyed by the names of
// the corresponding command line flags
func (c *Config) Settings() map[string]interface{} {
	s := map[string]interface{}{}
	if c == nil {
		return s
	}
	if c.Source != nil {
		s["source"] = *c.Source
	}
	if c.Destination != nil {
		s["destination"] = *c.Destination
	}
	if c.Template != nil {
		s["template"] = *c.Template
	}
	if c.Workers != nil {
		s["workers"] = *c.Workers
	}
	if c.FailFast != nil {
		s["fail-fast"] = *c.FailFast
	}
	return s
}
