// Package repository defines the Library interface through which the
// builder fetches documents by VLNV, and a thread-safe in-memory
// implementation of it.
//
// References without a version resolve to the highest registered version
// of the same vendor:library:name, ordered with hashicorp/go-version.
// Versions that are not semantic versions sort below every semantic one
// and among themselves lexically.
package repository
