// Package uuidfn implements the UUID SQL function set for SQLite:
// value coercion between SQLite's dynamically typed scalars and 128-bit
// UUIDs, generation of random (v4) and time-ordered (v7) UUIDs, and the
// function table hosts register against a database engine.
//
// The package holds no state. Every function is pure except the two
// generators, which read the system clock and randomness source.
//
// Hosts integrate through the Registrar interface:
//
//	err := uuidfn.Register(myRegistrar)
//
// which installs the SQL surface: uuid(), uuid_str(X), uuid_blob(),
// uuid_blob(X), uuid7(), uuid7_blob() and uuid7_blob(X).
package uuidfn
