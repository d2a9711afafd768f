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
	"context"

	"github.com/NVIDIA/appctl/pkg/cluster"
	"github.com/NVIDIA/appctl/pkg/manifest"
	"github.com/NVIDIA/appctl/pkg/placement"
)

// Deployer creates the resources of an application that do not exist yet.
type Deployer struct {
	engine
}

// NewDeployer returns a Deployer reading manifests from source.
func NewDeployer(source ManifestSource, gw cluster.Gateway, opts ...Option) *Deployer {
	return &Deployer{engine: newEngine(source, gw, opts...)}
}

// Deploy creates every resource of app that is not already present, pinning
// workloads to p when it is non-empty. Existing resources are left as they
// are.
func (d *Deployer) Deploy(ctx context.Context, app string, p *placement.Placement) (*Report, error) {
	var pl placement.Placement
	if p != nil {
		pl = *p
	}

	return d.run(ctx, app, p, step{
		op: OperationDeploy,
		prepare: func(doc *manifest.Document) error {
			_, err := doc.InjectNodeSelector(pl)
			return err
		},
		precondition: CheckExists{},
		action:       d.gateway.CreateResource,
		done:         StatusCreated,
	})
}
