// Package requestid tags every HTTP request with a correlation identifier.
//
// The middleware keeps a well-formed inbound X-Request-ID so identifiers
// survive hops through proxies and gateways, and mints a UUID otherwise.
// The identifier travels in the request context and is echoed on the
// response, so a client error report can be matched to server logs.
//
// # Usage
//
//	r.Use(requestid.Middleware)
//
//	log := logger.New(
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
package requestid
