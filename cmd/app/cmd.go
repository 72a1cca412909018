// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"
	"io"
	"strings"

	"github.com/gardener/mdforge/cmd/configuration"
	"github.com/gardener/mdforge/cmd/gendocs"
	"github.com/gardener/mdforge/cmd/version"
	"github.com/gardener/mdforge/pkg/markdown/inline"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// EnvPrefix prefixes the environment variables overriding flag defaults
const EnvPrefix = "MDFORGE"

// NewCommand creates a new root command and propagates
// the context to the Run callback closures of its sub commands
func NewCommand(ctx context.Context) *cobra.Command {
	return newCommand(ctx, new(configuration.DefaultConfigurationLoader))
}

func newCommand(ctx context.Context, loader configuration.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdforge",
		Short: "Render markdown to HTML",
	}

	cmd.AddCommand(newRenderCmd(ctx, loader))
	cmd.AddCommand(newInlineCmd())
	cmd.AddCommand(newSpansCmd())
	cmd.AddCommand(version.NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	if flag.CommandLine.Lookup("v") == nil {
		klog.InitFlags(nil)
	}
	AddFlags(cmd)

	return cmd
}

func newRenderCmd(ctx context.Context, loader configuration.Loader) *cobra.Command {
	vip := viper.New()
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a directory of markdown files to HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			config, err := loader.Load()
			if err != nil {
				return err
			}
			if err = vip.MergeConfigMap(config.Settings()); err != nil {
				return err
			}
			return exec(ctx, vip, cmd.OutOrStdout())
		},
	}
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
	configureFlags(cmd, vip)
	return cmd
}

func newInlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inline [TEXT...]",
		Short: "Render inline markdown to HTML",
		Long: `Renders the arguments joined by a space, or the standard input when
no arguments are given, through the inline pipeline: images, links,
bold (**), italic (_) and code (` + "`" + `). Block structure is not recognized.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			text, err := inputText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			html, err := inline.RenderInline(text)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), html+"\n")
			return err
		},
	}
}

func newSpansCmd() *cobra.Command {
	var color bool
	cmd := &cobra.Command{
		Use:   "spans [TEXT...]",
		Short: "Print the spans of inline markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			text, err := inputText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			spans, err := inline.Parse(text)
			if err != nil {
				return err
			}
			pp.ColoringEnabled = color
			_, err = pp.Fprintln(cmd.OutOrStdout(), spans)
			return err
		},
	}
	cmd.Flags().BoolVar(&color, "color", false,
		"Colorize the printed spans.")
	return cmd
}

// inputText joins args or reads in when no args are given
func inputText(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}
