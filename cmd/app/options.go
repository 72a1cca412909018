// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

// options are the render command parameters merged from
// flags, environment and configuration file
type options struct {
	SourcePath      string `mapstructure:"source"`
	DestinationPath string `mapstructure:"destination"`
	TemplatePath    string `mapstructure:"template"`
	WorkersCount    int    `mapstructure:"workers"`
	FailFast        bool   `mapstructure:"fail-fast"`
	DryRun          bool   `mapstructure:"dry-run"`
}

func (o *options) validate() error {
	var errs *multierror.Error
	if o.SourcePath == "" {
		errs = multierror.Append(errs, errors.New("source is required"))
	}
	if o.DestinationPath == "" && !o.DryRun {
		errs = multierror.Append(errs, errors.New("destination is required"))
	}
	if o.WorkersCount < 1 {
		errs = multierror.Append(errs, errors.New("workers must be positive"))
	}
	return errs.ErrorOrNil()
}
