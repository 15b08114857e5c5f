// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): text extraction, embedding models, and
// abstractive summarisation.
package driven
