// Package cli implements the appctl command-line interface.
//
// # Overview
//
// appctl deploys and removes applications, where an application is a
// directory of Kubernetes manifests under the applications root (--apps-dir,
// default "apps").
//
// # Commands
//
// list - List applications:
//
//	appctl list
//
// deploy - Create missing resources, optionally pinned to a node:
//
//	appctl deploy [--node NAME] [--fail-on-error] [application]
//
// delete - Delete every resource of an application:
//
//	appctl delete [--fail-on-error] [application]
//
// worker-list - List cluster nodes:
//
//	appctl worker-list
//
// When deploy or delete is run without an application, or deploy without
// --node, the choice is read from stdin as a 1-based number. An invalid
// choice exits non-zero before any change is made to the cluster.
//
// # Global Flags
//
//	--apps-dir      Applications root (APPCTL_APPS_DIR)
//	--kubeconfig    Kubeconfig path (KUBECONFIG)
//	--namespace     Namespace for manifests without one (APPCTL_NAMESPACE)
//	--timeout       Per-call cluster timeout
//	--concurrency   Manifests processed at once
//	--qps, --burst  Create/delete throttle
//	--log-level     debug, info, warn, error (LOG_LEVEL)
//	--format        text, json, yaml, table
//	--output        Result file instead of stdout
//	--metrics-file  Prometheus text metrics written on exit
//
// Logs are structured JSON on stderr; results go to stdout or --output.
//
// A single cluster client is built per invocation and shared by all cluster
// calls of that run.
package cli
