// Package database manages the connection to the relational store.
//
// The store is a single sqlite file by default (the location is configurable,
// defaulting to db/unipick.db); a mysql driver is available for shared
// installations. Connections are opened through GORM with its own logging
// silenced, so all diagnostics flow through the application logger.
//
// Schema creation is owned by the features: each feature migrates and loads
// its own table (see feature/emoji and feature/unicode). This package only
// hands out connections and closes them.
package database
