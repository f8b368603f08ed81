// Package service is the write entry point into a Library. It wraps the
// domain type with structured logging and is what binaries call; the
// domain package itself stays free of logging.
package service
