// Package services implements the core engine behind the driving ports:
// full index builds over a directory snapshot, hybrid BM25+semantic
// scoring with weighted fusion, and result enrichment.
package services
