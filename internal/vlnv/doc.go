/*
Package vlnv provides a structured, type-safe representation of the
vendor:library:name:version identity that every design document carries.

The canonical textual format is four colon-separated fields, e.g.
`acme:ip:uart:1.0`. The version field may be omitted (`acme:ip:uart`), in
which case the reference means "any version" and it is up to the repository
to choose one.

This package centralizes all parsing and formatting so that identifiers
built from a VLNV (memory item paths, cycle guard keys) are produced the same
way everywhere.
*/
package vlnv
