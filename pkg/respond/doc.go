// Package respond writes JSON HTTP responses with a uniform error body.
//
// Successful responses carry whatever payload the handler passes in. Error
// responses always serialize as {"message": "..."} so clients parse one
// shape for every failure status.
package respond
