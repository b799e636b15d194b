/*
Package domain contains the core domain models for the quern engine.

It defines the fundamental entities of a recipe run: Operations, their
Ingredients, the Recipe that orders them, and the events and errors the
runtime emits. This package is kept pure and free of external dependencies
like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Operation: One typed, parameterized step of a recipe.
  - Ingredient: A single argument slot of an operation; mutable in place.
  - Recipe: An ordered operation list executed against a vessel.
  - OpError: A failure carrying the cursor at the point of failure, so an
    enclosing Fork can apply its error policy uniformly.
*/
package domain
