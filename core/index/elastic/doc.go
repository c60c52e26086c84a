// Package elastic implements the index.Client contract on Elasticsearch.
//
// Batch operations are translated into single bulk requests; the full scan
// uses the scroll API so large indices are read in fixed-size pages. The
// index-side identifier (objectID) maps to the Elasticsearch document _id:
// it is stripped from the stored _source and restored from _id on reads.
package elastic
