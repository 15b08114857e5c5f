// Package text provides linguistic preprocessing shared by the lexical
// index, the semantic chunker, and the result enricher: tokenisation with
// multilingual stop-word removal and stemming, and sentence splitting.
package text
