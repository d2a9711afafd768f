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

package prompt

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/NVIDIA/appctl/pkg/errors"
)

func TestList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, List(&out, []string{"api", "web"}))
	assert.Equal(t, "[1] api\n[2] web\n", out.String())
}

func TestSelect(t *testing.T) {
	items := []string{"api", "web", "worker"}

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"first", "1\n", 0, false},
		{"last", "3\n", 2, false},
		{"surrounding whitespace", "  2  \n", 1, false},
		{"no newline", "2", 1, false},
		{"zero", "0\n", -1, true},
		{"negative", "-1\n", -1, true},
		{"out of range", "4\n", -1, true},
		{"not a number", "web\n", -1, true},
		{"float", "1.5\n", -1, true},
		{"empty line", "\n", -1, true},
		{"eof", "", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Select(strings.NewReader(tt.input), &out, "Select application", items)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSelection)
				assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "[1] api\n[2] web\n[3] worker\nSelect application [1-3]: ", out.String())
		})
	}
}

func TestSelect_SharedReader(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("2\n1\n"))
	var out bytes.Buffer

	first, err := Select(in, &out, "Select application", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := Select(in, &out, "Select node", []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, 0, second)
}

func TestSelect_EmptyList(t *testing.T) {
	var out bytes.Buffer
	_, err := Select(strings.NewReader("1\n"), &out, "Select node", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.Empty(t, out.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty closed") }

func TestSelect_ReadError(t *testing.T) {
	_, err := Select(failingReader{}, &bytes.Buffer{}, "Select node", []string{"a"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeIO, apperrors.CodeOf(err))
	assert.NotErrorIs(t, err, ErrInvalidSelection)
}
