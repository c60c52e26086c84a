// Package config provides configuration management for the content indexer.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Source: content delivery API credentials (host, space, token)
//   - Index: document index addresses, credentials, and name prefix
//   - Sync: locale specification and archive toggle
//   - Database: MySQL connection details for the sync-run history
//   - Storage: S3/MinIO credentials and archive bucket settings
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Index.Prefix)
package config
