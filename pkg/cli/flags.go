/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/appctl/pkg/defaults"
	"github.com/NVIDIA/appctl/pkg/logging"
	"github.com/NVIDIA/appctl/pkg/serializer"
)

// globalFlags returns the flags shared by every command. Flags are built per
// command tree because urfave flags keep parse state.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		appsDirFlag(),
		kubeconfigFlag(),
		namespaceFlag(),
		timeoutFlag(),
		concurrencyFlag(),
		qpsFlag(),
		burstFlag(),
		logLevelFlag(),
		formatFlag(),
		outputFlag(),
		metricsFileFlag(),
	}
}

func appsDirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "apps-dir",
		Usage:   "Directory containing one sub-directory per application",
		Sources: cli.EnvVars("APPCTL_APPS_DIR"),
		Value:   defaults.AppsDir,
	}
}

func kubeconfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kubeconfig",
		Aliases: []string{"k"},
		Usage:   "Path to kubeconfig file (defaults to ~/.kube/config, then in-cluster config)",
		Sources: cli.EnvVars("KUBECONFIG"),
	}
}

func namespaceFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "namespace",
		Aliases: []string{"n"},
		Usage:   "Namespace for namespaced resources whose manifest does not set one",
		Sources: cli.EnvVars("APPCTL_NAMESPACE"),
		Value:   defaults.Namespace,
	}
}

func timeoutFlag() cli.Flag {
	return &cli.DurationFlag{
		Name:  "timeout",
		Usage: "Timeout for each individual cluster call",
		Value: defaults.K8sRequestTimeout,
	}
}

func concurrencyFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "concurrency",
		Usage: fmt.Sprintf("Number of manifests processed at once (max %d)", defaults.ApplyMaxConcurrency),
		Value: defaults.ApplyConcurrency,
	}
}

func qpsFlag() cli.Flag {
	return &cli.FloatFlag{
		Name:  "qps",
		Usage: "Maximum create/delete requests per second (0 disables throttling)",
		Value: defaults.K8sClientQPS,
	}
}

func burstFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "burst",
		Usage: "Burst allowed above --qps",
		Value: defaults.K8sClientBurst,
	}
}

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars(logging.EnvLogLevel),
		Value:   "info",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   fmt.Sprintf("Output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Value:   string(serializer.FormatText),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write results to this file instead of stdout",
	}
}

func metricsFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "metrics-file",
		Usage: "Write Prometheus metrics in text format to this file on exit",
	}
}

func failOnErrorFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "fail-on-error",
		Usage: "Exit with non-zero status if any manifest failed",
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}
