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

package node

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	k8s "k8s.io/client-go/kubernetes"
)

// ListOptions contains the configuration options for listing nodes in a Kubernetes cluster.
type ListOptions struct {
	// LabelSelector is a selector to filter nodes based on labels.
	LabelSelector string
	// FieldSelector is a selector to filter nodes based on fields.
	FieldSelector string
	// Limit is the maximum number of nodes to return (0 means the absolute maximum).
	Limit int64
}

// WorkerNode is a read-only snapshot of a cluster node used for placement
// selection. It is never written back to the cluster.
type WorkerNode struct {
	// Name is the name of the node.
	Name string `json:"name" yaml:"name"`
	// Labels are the node labels at the time of listing.
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	// Role is the role of the node, derived from its labels.
	Role string `json:"role" yaml:"role"`
	// Age is the age of the node as a duration since its creation.
	Age string `json:"age" yaml:"age"`
	// IP is the primary internal IP address of the node.
	IP string `json:"ip,omitempty" yaml:"ip,omitempty"`
}

// Label returns the value of the given label and whether it was present.
func (n WorkerNode) Label(key string) (string, bool) {
	v, ok := n.Labels[key]
	return v, ok
}

// FromNode builds a WorkerNode snapshot from the API object. Labels are copied.
func FromNode(n *v1.Node) WorkerNode {
	labels := make(map[string]string, len(n.Labels))
	for k, v := range n.Labels {
		labels[k] = v
	}
	return WorkerNode{
		Name:   n.Name,
		Labels: labels,
		Role:   ParseNodeRole(n),
		Age:    FormatAge(n.CreationTimestamp.Time),
		IP:     getNodeIP(n, v1.NodeInternalIP),
	}
}

// Workers lists the cluster nodes and returns them as WorkerNode snapshots
// sorted by name, so that 1-based selection indexes are stable between runs.
func Workers(ctx context.Context, client k8s.Interface, opt ListOptions) ([]WorkerNode, error) {
	list, err := List(ctx, client, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	nodes := make([]WorkerNode, 0, len(list))
	for _, n := range list {
		nodes = append(nodes, FromNode(n))
	}

	sort.Slice(nodes, func(i, j int) bool {
		return strings.ToLower(nodes[i].Name) < strings.ToLower(nodes[j].Name)
	})

	return nodes, nil
}

const (
	MinuteDuration = time.Minute
	HourDuration   = time.Hour
	DayDuration    = 24 * HourDuration
)

// FormatAge formats the age of a node as a human-readable string.
// It calculates the duration since the node was created and formats it
// into a string that includes days, hours, and minutes.
// If the node was created less than a minute ago, it returns "0m".
func FormatAge(createdOn time.Time) string {
	d := metav1.Now().Sub(createdOn)

	if d < MinuteDuration {
		return "0m"
	}

	days := d / DayDuration
	d -= days * DayDuration

	hours := d / HourDuration
	d -= hours * HourDuration

	minutes := d / MinuteDuration

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d days", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hours", hours))
	}
	if minutes > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d minutes", minutes))
	}

	if len(parts) > 1 {
		return parts[0] + " " + parts[1]
	}
	return parts[0]
}

const (
	nodeListPageSizeDefault int64 = 500
	nodeListAbsoluteMax     int64 = 10000 // Hard cap to prevent memory exhaustion
)

// List returns the nodes in the cluster based on the provided options.
// It applies the label and field selectors and pages through the result
// so that large clusters are fetched in bounded chunks.
func List(ctx context.Context, client k8s.Interface, opt ListOptions) ([]*v1.Node, error) {
	if client == nil {
		return nil, fmt.Errorf("kubernetes client is required")
	}

	// Enforce absolute maximum to prevent memory exhaustion
	effectiveLimit := opt.Limit
	if effectiveLimit <= 0 || effectiveLimit > nodeListAbsoluteMax {
		effectiveLimit = nodeListAbsoluteMax
	}

	pageSize := nodeListPageSizeDefault
	if effectiveLimit < pageSize {
		pageSize = effectiveLimit
	}

	var allNodes []*v1.Node
	continueToken := ""
	totalFetched := int64(0)

	for {
		currentLimit := pageSize
		if totalFetched+currentLimit > effectiveLimit {
			currentLimit = effectiveLimit - totalFetched
		}

		lo := metav1.ListOptions{
			LabelSelector: opt.LabelSelector,
			FieldSelector: opt.FieldSelector,
			Limit:         currentLimit,
			Continue:      continueToken,
		}

		slog.Debug("fetching nodes",
			slog.Int64("limit", currentLimit),
			slog.Int64("totalSoFar", totalFetched),
			slog.Bool("hasContinueToken", continueToken != ""),
		)

		list, err := client.CoreV1().Nodes().List(ctx, lo)
		if err != nil {
			return nil, fmt.Errorf("failed to get nodes: %w", err)
		}

		for i := range list.Items {
			allNodes = append(allNodes, &list.Items[i])
		}
		totalFetched += int64(len(list.Items))

		continueToken = list.Continue
		if continueToken == "" || totalFetched >= effectiveLimit {
			break
		}

		if len(list.Items) == 0 {
			slog.Warn("received empty page with continue token, stopping pagination")
			break
		}
	}

	slog.Debug("node list complete",
		slog.Int("totalNodes", len(allNodes)),
		slog.Int64("requestedLimit", opt.Limit),
	)

	return allNodes, nil
}

const (
	NodeRoleLabelPrefix = "node-role.kubernetes.io/"
	NodeRoleLabel       = "nodeRole"
	NodeRoleUndefined   = "undefined"
)

// ParseNodeRole parses the node role from the node labels.
// It looks for labels that start with NodeRoleLabelPrefix and returns
// the role name, then falls back to the common nodeRole label.
// If no role is found, it returns NodeRoleUndefined.
func ParseNodeRole(n *v1.Node) string {
	for k := range n.Labels {
		if strings.HasPrefix(k, NodeRoleLabelPrefix) {
			role := strings.TrimPrefix(k, NodeRoleLabelPrefix)
			if role != "" {
				return role
			}
		}
	}

	for k, v := range n.Labels {
		if strings.EqualFold(k, NodeRoleLabel) {
			return v
		}
	}

	return NodeRoleUndefined
}

// getNodeIP retrieves the IP address of the node for the specified address type.
func getNodeIP(node *v1.Node, ipType v1.NodeAddressType) string {
	for _, addr := range node.Status.Addresses {
		if addr.Type == ipType {
			return addr.Address
		}
	}
	return ""
}
