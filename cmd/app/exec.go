// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gardener/mdforge/pkg/osfakes/osshim"
	"github.com/gardener/mdforge/pkg/workers/document"
	"github.com/gardener/mdforge/pkg/writers"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// htmlExt replaces the markdown extension of written files
const htmlExt = "html"

func exec(ctx context.Context, vip *viper.Viper, out io.Writer) error {
	var options options
	if err := vip.Unmarshal(&options); err != nil {
		return err
	}
	if err := options.validate(); err != nil {
		return err
	}
	klog.Infof("Source dir: %s", options.SourcePath)
	klog.Infof("Output dir: %s", options.DestinationPath)

	sh := &osshim.OsShim{}
	var tmpl []byte
	if options.TemplatePath != "" {
		var err error
		if tmpl, err = sh.ReadFile(options.TemplatePath); err != nil {
			return fmt.Errorf("reading template %s failed: %w", options.TemplatePath, err)
		}
		if !strings.Contains(string(tmpl), "{{ Content }}") {
			klog.Warningf("template %s has no {{ Content }} placeholder", options.TemplatePath)
		}
	}

	var (
		writer       writers.Writer
		dryRunWriter writers.DryRunWriter
	)
	if options.DryRun {
		dryRunWriter = writers.NewDryRunWritersFactory(out)
		writer = writers.GetWriterWithExt(dryRunWriter, options.DestinationPath, htmlExt)
	} else {
		writer = &writers.FSWriter{
			Root: options.DestinationPath,
			Ext:  htmlExt,
		}
	}

	worker := document.NewDocumentWorker(options.SourcePath, tmpl, sh, writer)
	err := document.New(options.WorkersCount, options.FailFast, worker, sh).Render(ctx)
	if dryRunWriter != nil {
		if flushErr := dryRunWriter.Flush(); flushErr != nil {
			klog.Error(flushErr)
		}
	}
	return err
}
