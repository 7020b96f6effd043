// Package httpserver runs an http.Server with graceful shutdown wired to
// context cancellation and OS signals.
//
// Run blocks for the lifetime of the server. SIGINT, SIGTERM or context
// cancellation all drain in-flight requests within the shutdown timeout
// before Run returns, so deployments rolling a pod never cut connections
// mid-response.
//
// # Usage
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("http server failed", logger.Error(err))
//	}
//
// The package also ships Liveness and Readiness probe handlers; readiness
// takes dependency check functions such as mongo.Healthcheck.
package httpserver
