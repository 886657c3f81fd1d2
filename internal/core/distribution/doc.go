// Package distribution allocates contracted spots across the valid days of a
// campaign and keeps the resulting grid consistent while it is edited.
//
// Every function is pure: inputs are never mutated and a fresh
// domain.Distribution is returned. The package also owns the compact text
// encoding used to persist a distribution in a size limited record field.
package distribution
