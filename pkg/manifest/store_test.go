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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/appctl/pkg/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newTestRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "web", "service.yaml"), "kind: Service")
	writeFile(t, filepath.Join(root, "web", "deployment.yaml"), "kind: Deployment")
	writeFile(t, filepath.Join(root, "web", "configmap.yml"), "kind: ConfigMap")
	writeFile(t, filepath.Join(root, "web", "extra.json"), "{}")
	writeFile(t, filepath.Join(root, "web", "README.md"), "# docs")
	writeFile(t, filepath.Join(root, "web", ".hidden.yaml"), "kind: Secret")
	writeFile(t, filepath.Join(root, "api", "pod.yaml"), "kind: Pod")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	writeFile(t, filepath.Join(root, "notes.txt"), "not an app")
	return root
}

func TestStore_ListApplications(t *testing.T) {
	s := NewStore(newTestRoot(t))

	apps, err := s.ListApplications(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"api", "empty", "web"}, apps)
}

func TestStore_ListApplications_MissingRoot(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope"))

	_, err := s.ListApplications(t.Context())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeIO, errors.CodeOf(err))
}

func TestStore_ListApplications_EmptyRoot(t *testing.T) {
	s := NewStore(t.TempDir())

	apps, err := s.ListApplications(t.Context())
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestStore_HasApplication(t *testing.T) {
	s := NewStore(newTestRoot(t))

	ok, err := s.HasApplication(t.Context(), "web")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.HasApplication(t.Context(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_LoadManifests(t *testing.T) {
	s := NewStore(newTestRoot(t))

	raws, err := s.LoadManifests(t.Context(), "web")
	require.NoError(t, err)

	names := make([]string, 0, len(raws))
	for _, r := range raws {
		names = append(names, r.Source)
	}
	assert.Equal(t, []string{"configmap.yml", "deployment.yaml", "extra.json", "service.yaml"}, names)
	assert.Equal(t, "kind: Deployment", string(raws[1].Data))
}

func TestStore_LoadManifests_Empty(t *testing.T) {
	s := NewStore(newTestRoot(t))

	raws, err := s.LoadManifests(t.Context(), "empty")
	require.NoError(t, err)
	assert.Empty(t, raws)
}

func TestStore_LoadManifests_NotFound(t *testing.T) {
	s := NewStore(newTestRoot(t))

	tests := []string{"missing", "", "../web", ".git", "notes.txt"}
	for _, app := range tests {
		t.Run(app, func(t *testing.T) {
			_, err := s.LoadManifests(t.Context(), app)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))
		})
	}
}

func TestStore_LoadManifests_Unreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	root := newTestRoot(t)
	path := filepath.Join(root, "web", "deployment.yaml")
	require.NoError(t, os.Chmod(path, 0o000))
	t.Cleanup(func() { _ = os.Chmod(path, 0o600) })

	_, err := NewStore(root).LoadManifests(t.Context(), "web")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeIO, errors.CodeOf(err))
}

func TestStore_CanceledContext(t *testing.T) {
	s := NewStore(newTestRoot(t))
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := s.ListApplications(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.LoadManifests(ctx, "web")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewStore_DefaultRoot(t *testing.T) {
	assert.Equal(t, "apps", NewStore("").Root())
}
