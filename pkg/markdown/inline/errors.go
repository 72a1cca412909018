// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package inline

import "errors"

var (
	// ErrUnbalancedDelimiter is raised for a style delimiter that is
	// opened but never closed. It is an authoring error and fails
	// the whole render.
	ErrUnbalancedDelimiter = errors.New("closing delimiter not found")
	// ErrInvalidStyle is raised for a style value outside the
	// enumerated span styles
	ErrInvalidStyle = errors.New("invalid span style")
	// ErrEmptyDelimiter is raised when splitting on an empty delimiter
	ErrEmptyDelimiter = errors.New("delimiter must not be empty")
)
