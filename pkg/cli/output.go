/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/appctl/pkg/k8s/node"
	"github.com/NVIDIA/appctl/pkg/prompt"
	"github.com/NVIDIA/appctl/pkg/serializer"
)

// applicationList renders application names.
type applicationList []string

func (l applicationList) RenderText(w io.Writer) error {
	return prompt.List(w, l)
}

func (l applicationList) TableHeader() []string {
	return []string{"#", "APPLICATION"}
}

func (l applicationList) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for i, app := range l {
		rows = append(rows, []string{fmt.Sprint(i + 1), app})
	}
	return rows
}

// nodeList renders worker nodes.
type nodeList []node.WorkerNode

func (l nodeList) items() []string {
	items := make([]string, 0, len(l))
	for _, n := range l {
		items = append(items, "- Node: "+n.Name)
	}
	return items
}

func (l nodeList) RenderText(w io.Writer) error {
	return prompt.List(w, l.items())
}

func (l nodeList) TableHeader() []string {
	return []string{"#", "NAME", "ROLE", "IP", "AGE"}
}

func (l nodeList) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for i, n := range l {
		rows = append(rows, []string{fmt.Sprint(i + 1), n.Name, n.Role, n.IP, n.Age})
	}
	return rows
}

// writeResult serializes v in the selected format to --output or stdout.
func writeResult(ctx context.Context, rt *session, cmd *cli.Command, v any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	var w *serializer.Writer
	if path := cmd.String("output"); path != "" {
		if w, err = serializer.NewFileWriterOrStdout(outFormat, path); err != nil {
			return err
		}
	} else {
		w = serializer.NewWriter(outFormat, rt.out)
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := w.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	return nil
}

// promptOut returns where interactive menus are printed. Menus go to stderr
// when stdout carries machine-readable output.
func promptOut(rt *session, cmd *cli.Command) io.Writer {
	if f, err := parseOutputFormat(cmd); err == nil && f != serializer.FormatText && cmd.String("output") == "" {
		if rt.errOut != nil {
			return rt.errOut
		}
		return os.Stderr
	}
	return rt.out
}
