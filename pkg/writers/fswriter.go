// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FSWriter is implementation of Writer interface for writing documents to the file system
type FSWriter struct {
	Root string
	// Ext replaces the extension of written file names, if set
	Ext string
}

func (f *FSWriter) Write(name, path string, content []byte) error {
	p := filepath.Join(f.Root, path)

	if len(content) == 0 {
		return nil
	}
	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return err
	}

	if len(f.Ext) > 0 {
		name = fmt.Sprintf("%s.%s", strings.TrimSuffix(name, filepath.Ext(name)), f.Ext)
	}

	filePath := filepath.Join(p, name)

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error writing %s: %v", filePath, err)
	}

	return nil
}
