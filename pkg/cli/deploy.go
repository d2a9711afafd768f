/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/appctl/pkg/apply"
	"github.com/NVIDIA/appctl/pkg/errors"
	"github.com/NVIDIA/appctl/pkg/prompt"
)

func deployCmd(rt *session) *cli.Command {
	return &cli.Command{
		Name:                  "deploy",
		EnableShellCompletion: true,
		Usage:                 "Create the resources of an application",
		ArgsUsage:             "[application]",
		Description: `Create every resource of an application that does not exist yet.

When the application is not given it is chosen from a numbered list. Unless
--node is set, the target node is chosen the same way. Workloads are pinned
to the node through spec.template.spec.nodeSelector (or the kind's pod spec
path) using the node's kubernetes.io/hostname label. Services and kinds that
do not run pods are submitted unchanged.

Resources that already exist are reported and left untouched. A resource
whose existence cannot be confirmed is reported as a cluster error and is
not created.

# Examples

  appctl deploy
  appctl deploy --node worker-2 web
  appctl deploy --fail-on-error --format json web`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "node",
				Usage: "Name of the node to pin workloads to (skips the node prompt)",
			},
			failOnErrorFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			store := rt.store(cmd)
			app, err := selectApplication(ctx, rt, cmd, "Select the application to deploy")
			if err != nil {
				return err
			}

			p, err := selectPlacement(ctx, rt, cmd)
			if err != nil {
				return err
			}

			gw, err := rt.gateway(ctx, cmd)
			if err != nil {
				return err
			}

			ctx, cancel := operationContext(ctx)
			defer cancel()

			deployer := apply.NewDeployer(store, gw, apply.WithConcurrency(cmd.Int("concurrency")))
			report, err := deployer.Deploy(ctx, app, p)
			if err != nil {
				return err
			}

			return finishReport(ctx, rt, cmd, report)
		},
	}
}

// selectApplication returns the application argument, or asks for one.
func selectApplication(ctx context.Context, rt *session, cmd *cli.Command, question string) (string, error) {
	if app := cmd.Args().First(); app != "" {
		if cmd.Args().Len() > 1 {
			return "", errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("expected at most one application, got %d", cmd.Args().Len()))
		}
		found, err := rt.store(cmd).HasApplication(ctx, app)
		if err != nil {
			return "", err
		}
		if !found {
			return "", errors.NewWithContext(errors.ErrCodeNotFound,
				fmt.Sprintf("application %q not found", app),
				map[string]any{"application": app})
		}
		return app, nil
	}

	apps, err := rt.store(cmd).ListApplications(ctx)
	if err != nil {
		return "", err
	}

	i, err := prompt.Select(rt.in, promptOut(rt, cmd), question, apps)
	if err != nil {
		return "", err
	}
	return apps[i], nil
}

// finishReport writes the report and applies --fail-on-error.
func finishReport(ctx context.Context, rt *session, cmd *cli.Command, report *apply.Report) error {
	if err := writeResult(ctx, rt, cmd, report); err != nil {
		return err
	}

	slog.Info("operation completed",
		"run_id", report.RunID,
		"operation", report.Operation,
		"application", report.Application,
		"failures", report.Failures(),
		"duration", report.Duration)

	if cmd.Bool("fail-on-error") && report.HasFailures() {
		return fmt.Errorf("%s failed: %d manifest(s) did not succeed", report.Operation, report.Failures())
	}
	return nil
}
