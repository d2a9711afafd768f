/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

func listCmd(rt *session) *cli.Command {
	return &cli.Command{
		Name:                  "list",
		EnableShellCompletion: true,
		Usage:                 "List available applications",
		Description: `List the applications found under the applications root, one per line,
numbered from 1. Only directories are applications; files and hidden entries
are ignored.

# Examples

  appctl list
  appctl --apps-dir ./deploy/apps list --format json`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			apps, err := rt.store(cmd).ListApplications(ctx)
			if err != nil {
				return err
			}
			return writeResult(ctx, rt, cmd, applicationList(apps))
		},
	}
}
