// Package domain contains the core entities of petdb: the Pet record and the
// bounded, ordered Store that owns every pet held in memory.
//
// This package has no dependencies on infrastructure concerns (files,
// logging, terminals). Everything here is synchronous and safe to test
// without fixtures.
//
// # Entities
//
//   - [Pet]: a named pet with an age in [MinAge, MaxAge]
//   - [Store]: an ordered collection of at most [Capacity] pets
//
// # Invariants
//
// A Pet is never observable with an out-of-range age. A Store never holds
// more than Capacity pets, positions are dense and zero-based, and a failing
// operation leaves the Store exactly as it was before the call.
package domain
