// Package manifest loads application manifests from disk and models each
// manifest file as a single Kubernetes document.
//
// An application is a directory under the applications root. Every regular
// file with a manifest extension inside it holds exactly one document:
//
//	apps/
//	  web/
//	    configmap.yaml
//	    deployment.yaml
//	    service.yaml
//
// Loading and parsing are separate steps. Store errors (unreadable root,
// unknown application, unreadable file) abort the whole batch, while Parse
// errors are local to one file:
//
//	store := manifest.NewStore("apps")
//	raws, err := store.LoadManifests(ctx, "web")
//	for _, raw := range raws {
//	    doc, err := manifest.Parse(raw)
//	    ...
//	}
//
// Documents are classified by kind so that node placement is only injected
// into resources that actually schedule pods.
package manifest
