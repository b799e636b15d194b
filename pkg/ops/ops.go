// Package ops provides the built-in generic operations shipped with quern.
// Flow-control primitives (Fork, Jump, Register, ...) are not here; they are
// part of the runtime itself.
package ops

import (
	"github.com/quernlab/quern/pkg/registry"
)

// RegisterBuiltins adds every built-in operation to the given registry.
func RegisterBuiltins(r *registry.Registry) {
	r.Register("To Upper Case", ToUpperCase)
	r.Register("To Lower Case", ToLowerCase)
	r.Register("Reverse", Reverse)
	r.Register("Head", Head)
	r.Register("Append", Append)
	r.Register("Find / Replace", FindReplace)
	r.Register("Base64 Encode", Base64Encode)
	r.Register("Base64 Decode", Base64Decode)
}

// Builtin returns a registry pre-loaded with all built-in operations.
func Builtin() *registry.Registry {
	r := registry.New()
	RegisterBuiltins(r)
	return r
}
