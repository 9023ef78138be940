// Package storage provides the object storage client used for all pipeline
// artifacts (raw extracts, the cached dim_club table, curated outputs).
//
// It wraps a MinIO/S3-compatible client behind the Client interface so that
// stages and tests can substitute the mock in storage/mocks. Table helpers
// (PutTable, GetTable, ListCSVObjects) cover the CSV-shaped traffic between
// stages; IsNotFound distinguishes a missing object from a transport failure
// for cache rebuild decisions.
package storage
