// Package extractors converts files of supported formats into raw text.
// Each sub-package handles one format; the Registry dispatches by file
// extension. Extraction failures are non-fatal: the indexer skips the
// file and carries on.
package extractors
