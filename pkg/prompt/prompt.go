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

// Package prompt implements numbered terminal menus.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/NVIDIA/appctl/pkg/errors"
)

// ErrInvalidSelection is returned when the reply is not a listed number.
var ErrInvalidSelection = errors.New(errors.ErrCodeInvalidRequest, "invalid selection")

// List prints items as a 1-based numbered list, one "[i] item" per line.
func List(out io.Writer, items []string) error {
	for i, item := range items {
		if _, err := fmt.Fprintf(out, "[%d] %s\n", i+1, item); err != nil {
			return err
		}
	}
	return nil
}

// Select prints the numbered items followed by question, reads one line from
// in and returns the 0-based index of the chosen item. Pass a *bufio.Reader
// to ask several questions on the same input. Anything other than an
// integer in [1, len(items)] yields ErrInvalidSelection.
func Select(in io.Reader, out io.Writer, question string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, fmt.Errorf("%w: nothing to choose from", ErrInvalidSelection)
	}

	if err := List(out, items); err != nil {
		return -1, err
	}
	if _, err := fmt.Fprintf(out, "%s [1-%d]: ", question, len(items)); err != nil {
		return -1, err
	}

	reply, err := readLine(in)
	if err != nil {
		return -1, err
	}

	n, err := strconv.Atoi(reply)
	if err != nil || n < 1 || n > len(items) {
		return -1, fmt.Errorf("%w: %q is not between 1 and %d", ErrInvalidSelection, reply, len(items))
	}
	return n - 1, nil
}

// readLine reads one line without consuming input past it when in is a
// *bufio.Reader, so several prompts can share one stream.
func readLine(in io.Reader) (string, error) {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}

	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(errors.ErrCodeIO, "failed to read selection", err)
	}
	return strings.TrimSpace(line), nil
}
