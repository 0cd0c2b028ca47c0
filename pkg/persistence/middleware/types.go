package middleware

import "github.com/aretw0/firstrun/pkg/ports"

// Middleware allows wrapping an InstallMetadataStore to add behavior.
type Middleware func(ports.InstallMetadataStore) ports.InstallMetadataStore

// Chain wraps store with mws. The first middleware is the outermost.
func Chain(store ports.InstallMetadataStore, mws ...Middleware) ports.InstallMetadataStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
