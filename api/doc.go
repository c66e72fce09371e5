// Package api provides the HTTP bridge for the Bingefeed feed controller.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration, middleware chain and metrics endpoint
// - handlers/: feed, error slot and title detail handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging, rate limiting, feature flags and metrics
//
// # Routes
//
//	GET    /feeds/{category}            snapshot, optional ?q= filter and ?page=&per_page= window
//	POST   /feeds/{category}/refresh    replace the list with a merge of two page-1 fetches
//	POST   /feeds/{category}/more       append the next page
//	POST   /feeds/{category}/visible    prefetch when the visible item nears the end
//	POST   /feeds/{category}/variety    merge page 1 of another sort order
//	POST   /feeds/retry                 refresh whichever list needs it
//	GET    /errors/current              current failure notice
//	DELETE /errors/current              acknowledge it
//	GET    /titles/{id}                 title detail
//	GET    /metrics                     Prometheus exposition
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    Flags:      flags,
//	    Metrics:    metrics,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	api.RegisterHandlers(humaAPI, controller, details)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 format produced by Huma. Catalog failures map to
// 429 (rate limited), 503 (server or transport), 502 (invalid request or
// undecodable payload) and 500 (unknown). A load already in progress is 409.
package api
