// Package config loads the application configuration.
//
// Configuration comes from environment variables (optionally via a .env file)
// with defaults declared as struct tags on each partial config. Keys nest with
// underscores: DATABASE_PATH maps to database.path, SOURCE_CACHE_DIR to
// source.cache_dir, and so on.
//
// The historical fixed paths of the tool (db/emoji-test.txt, db/UnicodeData.txt,
// db/unipick.db) survive only as defaults here; the core packages receive the
// locations explicitly.
package config
