// Package middleware groups the HTTP middleware used by the browse surface.
package middleware
