// Package testutil holds helpers shared by package tests: temporary HCL
// fixture trees, captured loggers and a loaded document library.
package testutil
