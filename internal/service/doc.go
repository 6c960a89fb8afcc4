// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the store
// interfaces to fulfill application features.
//
// Services translate store-level sentinel errors into typed application
// errors (internal/apperr) so the API layer can map every expected failure
// to its HTTP status without inspecting store internals. Unexpected errors
// pass through untouched and surface as 500 at the API boundary.
package service
