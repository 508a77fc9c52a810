// Package logger provides structured logging attribute helpers built on Go's
// standard slog package. It keeps attribute keys consistent across the
// application and uses the empty Attr pattern for nil safety, so helpers can
// be passed unconditionally without explicit nil or empty checks.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/dataview/core/logger"
//
//	log.Info("page loaded",
//		logger.Component("viewstore"),
//		logger.Page(2),
//		logger.Count("items", len(items)),
//		logger.Elapsed(start),
//	)
//
//	// Error returns an empty Attr for nil errors, so this is safe either way.
//	log.Debug("request finished",
//		logger.Method("GET"),
//		logger.Path("/products"),
//		logger.StatusCode(resp.StatusCode),
//		logger.Error(err),
//	)
//
// # Attribute Helpers
//
// The helpers cover the concerns this module logs about: HTTP traffic
// (Method, Path, StatusCode, RequestID), collection state (Query, Page,
// Category, Count, Seq), timing (Duration, Elapsed), and general structure
// (Group, Component, Error).
package logger
