// Package driving provides interfaces implemented by the core services
// and consumed by the CLI and HTTP adapters (primary/inbound ports).
package driving
