// Package database handles the relational database connection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to
// properly configure MySQL connections based on the application's
// configuration. The database is optional: it only backs the sync-run
// history, and the indexing pipeline runs without it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Running without sync history", zap.Error(err))
//	}
package database
