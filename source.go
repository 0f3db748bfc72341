package docindex

import "context"

// ContainerSource reads raw documentation containers. A location is a file
// path for local dumps or a chapter name for generated API pages.
type ContainerSource interface {
	// ReadContainer returns the container's records in key order.
	ReadContainer(ctx context.Context, location string) ([]Record, error)
}

// ModuleSource lists and reads remote module manifests.
type ModuleSource interface {
	// ListModules returns module names in list order.
	ListModules(ctx context.Context) ([]string, error)

	// ReadModule returns the records of one module manifest in key order.
	ReadModule(ctx context.Context, name string) ([]Record, error)
}

// IndexStore persists the serialized index as a single artifact.
type IndexStore interface {
	// Write stores data atomically and returns its content digest.
	Write(ctx context.Context, data []byte) (digest string, err error)
}
