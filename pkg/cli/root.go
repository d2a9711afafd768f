/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/appctl/pkg/cluster"
	"github.com/NVIDIA/appctl/pkg/defaults"
	"github.com/NVIDIA/appctl/pkg/errors"
	"github.com/NVIDIA/appctl/pkg/k8s/client"
	"github.com/NVIDIA/appctl/pkg/logging"
	"github.com/NVIDIA/appctl/pkg/manifest"
)

const (
	name           = "appctl"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// gatewayFactory builds the cluster gateway from the parsed flags.
type gatewayFactory func(ctx context.Context, cmd *cli.Command) (cluster.Gateway, error)

// session holds what the commands share during one invocation.
type session struct {
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
	newGateway gatewayFactory

	gw cluster.Gateway
}

// gateway returns the cluster gateway, building it on first use. Every
// command of a run shares the same client handle.
func (r *session) gateway(ctx context.Context, cmd *cli.Command) (cluster.Gateway, error) {
	if r.gw != nil {
		return r.gw, nil
	}
	gw, err := r.newGateway(ctx, cmd)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to connect to cluster", err)
	}
	r.gw = gw
	return gw, nil
}

func (r *session) store(cmd *cli.Command) *manifest.Store {
	return manifest.NewStore(cmd.String("apps-dir"))
}

// Execute runs the appctl command line and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt := &session{
		in:         bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		errOut:     os.Stderr,
		newGateway: newKubeGateway,
	}

	if err := newRootCmd(rt).Run(ctx, os.Args); err != nil {
		code := errorCode(err)
		slog.Debug("command failed", "code", code, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(exitStatus(code))
	}
}

func newRootCmd(rt *session) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Deploy and remove manifest-based applications on Kubernetes",
		Description: `appctl deploys or removes a named application, a directory of manifest
files under the applications root, and can pin its workloads to a worker node
through the kubernetes.io/hostname node selector.

Existing resources are never modified: deploy only creates what is missing,
delete removes every resource named by the application's manifests.`,
		Flags:                 globalFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			return writeMetrics(cmd.String("metrics-file"))
		},
		Commands: []*cli.Command{
			listCmd(rt),
			deployCmd(rt),
			deleteCmd(rt),
			workerListCmd(rt),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return errors.NewWithContext(errors.ErrCodeInvalidRequest,
					fmt.Sprintf("unknown command %q, run '%s --help' for usage", cmd.Args().First(), name),
					map[string]any{"command": cmd.Args().First()})
			}
			return errors.New(errors.ErrCodeInvalidRequest,
				"no command given, expected one of: list, deploy, delete, worker-list")
		},
	}
}

// newKubeGateway builds the single client handle used by a run.
func newKubeGateway(_ context.Context, cmd *cli.Command) (cluster.Gateway, error) {
	qps := cmd.Float("qps")
	burst := cmd.Int("burst")

	clients, err := client.New(client.Options{
		Kubeconfig: cmd.String("kubeconfig"),
		QPS:        float32(qps),
		Burst:      burst,
		UserAgent:  name + "/" + version,
	})
	if err != nil {
		return nil, err
	}

	return cluster.NewFromClients(clients,
		cluster.WithNamespace(cmd.String("namespace")),
		cluster.WithTimeout(cmd.Duration("timeout")),
		cluster.WithRateLimit(qps, burst),
	), nil
}

func writeMetrics(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return errors.Wrap(errors.ErrCodeIO, "failed to write metrics to "+path, err)
	}
	slog.Debug("metrics written", "path", path)
	return nil
}

func operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaults.CLIOperationTimeout)
}
