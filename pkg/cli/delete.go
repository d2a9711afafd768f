/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/appctl/pkg/apply"
)

func deleteCmd(rt *session) *cli.Command {
	return &cli.Command{
		Name:                  "delete",
		EnableShellCompletion: true,
		Usage:                 "Delete the resources of an application",
		ArgsUsage:             "[application]",
		Description: `Delete every resource named by the application's manifests.

When the application is not given it is chosen from a numbered list. Delete
does not check for existence first; a resource that is already gone is
reported as a cluster error. Dependents are removed in the background.

# Examples

  appctl delete
  appctl delete web
  appctl delete --fail-on-error web`,
		Flags: []cli.Flag{
			failOnErrorFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			store := rt.store(cmd)
			app, err := selectApplication(ctx, rt, cmd, "Select the application to delete")
			if err != nil {
				return err
			}

			gw, err := rt.gateway(ctx, cmd)
			if err != nil {
				return err
			}

			ctx, cancel := operationContext(ctx)
			defer cancel()

			remover := apply.NewRemover(store, gw, apply.WithConcurrency(cmd.Int("concurrency")))
			report, err := remover.Remove(ctx, app)
			if err != nil {
				return err
			}

			return finishReport(ctx, rt, cmd, report)
		},
	}
}
