// Package server holds configuration for the optional HTTP browse surface.
package server
