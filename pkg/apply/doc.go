// Package apply deploys and removes applications on the cluster.
//
// Both operations load every manifest of an application, process the
// documents concurrently and wait for all of them before returning a Report
// with exactly one Outcome per manifest file, in file order.
//
// Deploy checks for existence before creating and never modifies a resource
// that already exists; a resource whose existence cannot be confirmed is
// reported as a cluster error and left alone. Delete issues the delete call
// directly. The difference is expressed by the Precondition each operation
// runs with:
//
//	deployer := apply.NewDeployer(store, gateway, apply.WithConcurrency(8))
//	report, err := deployer.Deploy(ctx, "web", &placement)
//	if err != nil {
//	    // application missing or unreadable; nothing was sent to the cluster
//	}
//	if report.HasFailures() {
//	    ...
//	}
package apply
