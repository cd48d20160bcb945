// Package version reports build metadata for the jdcr binary.
package version
