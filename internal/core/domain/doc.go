// Package domain contains the core types of the document intelligence
// engine: documents, derived metadata, search results, and corpus
// statistics. It has no dependencies outside the standard library.
package domain
