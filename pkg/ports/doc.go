/*
Package ports defines the driven ports (interfaces) for the quern engine.

These interfaces decouple the core runtime from external implementations,
allowing transforms, register publishing and diagnostics to be supplied by
the host.

# Key Interfaces

  - Catalog: Resolves generic operation names to their transforms.
  - RegisterPublisher: Receives registers captured during an offloaded run.
*/
package ports
