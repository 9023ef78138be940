// Package middleware contains HTTP middleware for the Fiber application
// behind the serve command.
//
// # Components
//
//   - RayID: generates a unique request ID (ray ID) for every incoming
//     request, injecting it into the context and response headers so logs
//     can be correlated per request.
//   - Auth: optional API key protection for every route.
package middleware
