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

package apply

import (
	"fmt"
	"io"
)

// RenderText writes one line per outcome followed by the summary.
func (r *Report) RenderText(w io.Writer) error {
	for _, o := range r.Outcomes {
		line := fmt.Sprintf("[%s] %s", o.Status.DisplayName(), o.Resource())
		if o.Resource() != o.Source {
			line += fmt.Sprintf(" (%s)", o.Source)
		}
		if o.Error != "" {
			line += ": " + o.Error
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, r.String())
	return err
}

// TableHeader returns the column names of the outcome table.
func (r *Report) TableHeader() []string {
	return []string{"SOURCE", "KIND", "NAME", "NAMESPACE", "STATUS", "ERROR"}
}

// TableRows returns one row per outcome.
func (r *Report) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		rows = append(rows, []string{o.Source, o.Kind, o.Name, o.Namespace, string(o.Status), o.Error})
	}
	return rows
}
