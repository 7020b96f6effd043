// Package mongo wires the MongoDB driver into the service: environment-driven
// connection configuration, a retrying connect helper and a readiness probe.
//
// # Usage
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.Database(ctx, cfg)
//	if err != nil {
//		// the server never became reachable
//	}
//
// Connect verifies every attempt with a ping, so a returned client is known
// to have reached the server at least once. Transient per-operation failures
// after that are the driver's concern (RetryWrites/RetryReads).
package mongo
