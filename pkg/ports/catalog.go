package ports

import (
	"context"

	"github.com/quernlab/quern/pkg/vessel"
)

// TransformFunc is the signature for a generic operation implementation.
// It receives the run's vessel and the operation's current argument values,
// and mutates the vessel in place.
type TransformFunc func(ctx context.Context, v *vessel.Vessel, args []any) error

// Catalog resolves generic operation names to their transforms.
// This allows the operation set (built-ins, host extensions) to be decoupled
// from the runtime.
type Catalog interface {
	// Transform returns the implementation for an operation name,
	// or false when the name is unknown.
	Transform(name string) (TransformFunc, bool)

	// Names returns all registered operation names, for validation and
	// introspection tools.
	Names() []string
}

// RegisterPublisher receives registers captured by a Register operation while
// execution is offloaded to a background context. absoluteIndex is the
// operation's position including accumulated fork offsets; countBefore is the
// global register count before this capture. Implementations must be
// fire-and-forget: never block, never fail.
type RegisterPublisher func(absoluteIndex int, countBefore int, values []string)
