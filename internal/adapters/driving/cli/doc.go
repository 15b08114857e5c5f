// Package cli implements the arbor command line interface.
package cli
