// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package manifest

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/NVIDIA/appctl/pkg/defaults"
	"github.com/NVIDIA/appctl/pkg/errors"
)

// RawManifest is the unparsed content of one manifest file.
type RawManifest struct {
	// Source is the file name inside the application directory.
	Source string
	Data   []byte
}

// Store reads applications from a root directory.
type Store struct {
	root string
}

// NewStore returns a store rooted at the given directory.
func NewStore(root string) *Store {
	if root == "" {
		root = defaults.AppsDir
	}
	return &Store{root: root}
}

// Root returns the applications root directory.
func (s *Store) Root() string {
	return s.root
}

// ListApplications returns the names of all application directories under
// the root in lexical order. Files and hidden entries are ignored.
func (s *Store) ListApplications(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO,
			"failed to read applications root", err,
			map[string]any{"root": s.root})
	}

	apps := make([]string, 0, len(entries))
	for _, e := range entries {
		if isHidden(e.Name()) || !s.isDir(e) {
			continue
		}
		apps = append(apps, e.Name())
	}
	slices.Sort(apps)

	slog.Debug("listed applications", "root", s.root, "count", len(apps))
	return apps, nil
}

// HasApplication reports whether app is one of the listed applications.
func (s *Store) HasApplication(ctx context.Context, app string) (bool, error) {
	apps, err := s.ListApplications(ctx)
	if err != nil {
		return false, err
	}
	_, found := slices.BinarySearch(apps, app)
	return found, nil
}

// LoadManifests reads every manifest file of the application in lexical
// file name order. A missing application is a NOT_FOUND error; a file that
// cannot be read is an IO_ERROR and aborts the batch.
func (s *Store) LoadManifests(ctx context.Context, app string) ([]RawManifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if app == "" || app != filepath.Base(app) || isHidden(app) {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			"application not found", map[string]any{"application": app})
	}

	dir := filepath.Join(s.root, app)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewWithContext(errors.ErrCodeNotFound,
				"application not found", map[string]any{"application": app})
		}
		return nil, errors.WrapWithContext(errors.ErrCodeIO,
			"failed to stat application directory", err,
			map[string]any{"application": app})
	}
	if !info.IsDir() {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			"application not found", map[string]any{"application": app})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO,
			"failed to read application directory", err,
			map[string]any{"application": app})
	}

	// ReadDir returns entries sorted by file name.
	raws := make([]RawManifest, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if isHidden(name) || !hasManifestExtension(name) {
			continue
		}
		if e.IsDir() || !e.Type().IsRegular() && e.Type()&fs.ModeSymlink == 0 {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeIO,
				"failed to read manifest", err,
				map[string]any{"application": app, "file": name})
		}
		raws = append(raws, RawManifest{Source: name, Data: data})
	}

	slog.Debug("loaded manifests", "application", app, "count", len(raws))
	return raws, nil
}

func (s *Store) isDir(e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(s.root, e.Name()))
	return err == nil && info.IsDir()
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func hasManifestExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return slices.Contains(defaults.ManifestExtensions, ext)
}
