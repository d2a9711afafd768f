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

	"github.com/NVIDIA/appctl/pkg/errors"
	"github.com/NVIDIA/appctl/pkg/k8s/node"
	"github.com/NVIDIA/appctl/pkg/placement"
	"github.com/NVIDIA/appctl/pkg/prompt"
)

func workerListCmd(rt *session) *cli.Command {
	return &cli.Command{
		Name:                  "worker-list",
		EnableShellCompletion: true,
		Usage:                 "List cluster nodes available for placement",
		Description: `List the cluster's nodes ordered by name. The numbers match the choices
offered by the interactive node prompt of deploy.

# Examples

  appctl worker-list
  appctl worker-list --format table`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			gw, err := rt.gateway(ctx, cmd)
			if err != nil {
				return err
			}

			nodes, err := gw.ListNodes(ctx)
			if err != nil {
				return err
			}
			return writeResult(ctx, rt, cmd, nodeList(nodes))
		},
	}
}

// selectPlacement lists the nodes and returns the placement for the node
// named by --node, or for the node chosen interactively.
func selectPlacement(ctx context.Context, rt *session, cmd *cli.Command) (*placement.Placement, error) {
	gw, err := rt.gateway(ctx, cmd)
	if err != nil {
		return nil, err
	}

	nodes, err := gw.ListNodes(ctx)
	if err != nil {
		return nil, err
	}

	var chosen node.WorkerNode
	if nodeName := cmd.String("node"); nodeName != "" {
		n, ok := placement.FindNode(nodes, nodeName)
		if !ok {
			return nil, errors.NewWithContext(errors.ErrCodeNotFound,
				fmt.Sprintf("node %q not found", nodeName),
				map[string]any{"node": nodeName})
		}
		chosen = n
	} else {
		i, err := prompt.Select(rt.in, promptOut(rt, cmd), "Select the node to deploy to", nodeList(nodes).items())
		if err != nil {
			return nil, err
		}
		chosen = nodes[i]
	}

	p := placement.Resolve(chosen)
	slog.Info("node selected", "node", chosen.Name, "placement", p.String())
	return &p, nil
}
