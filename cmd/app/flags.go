// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func configureFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().StringP("source", "s", "",
		"Source directory with markdown (.md) files.")
	_ = vip.BindPFlag("source", command.Flags().Lookup("source"))

	command.Flags().StringP("destination", "d", "",
		"Destination directory. Every markdown file is written to the same relative path with .html extension.")
	_ = vip.BindPFlag("destination", command.Flags().Lookup("destination"))

	command.Flags().StringP("template", "t", "",
		"Page template file. Occurrences of {{ Title }} and {{ Content }} are replaced with the document title and HTML.")
	_ = vip.BindPFlag("template", command.Flags().Lookup("template"))

	command.Flags().Int("workers", 10,
		"Number of parallel workers for document rendering.")
	_ = vip.BindPFlag("workers", command.Flags().Lookup("workers"))

	command.Flags().Bool("fail-fast", false,
		"Fail-fast vs fault tolerant operation.")
	_ = vip.BindPFlag("fail-fast", command.Flags().Lookup("fail-fast"))

	command.Flags().Bool("dry-run", false,
		"Renders all documents but instead of writing files, it will output the projected file/folder hierarchy to the standard output.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))
}
