// Package config loads the pipeline configuration from environment
// variables and an optional .env file.
//
// Defaults are declared as struct tags on the partial config types owned by
// each package (storage, database, server, logger) plus the Pipeline partial
// defined here, and are bound into Viper via reflection. Environment
// variables map onto nested keys with underscores, e.g. STORAGE_BUCKET sets
// storage.bucket and PIPELINE_SEASON sets pipeline.season.
package config
