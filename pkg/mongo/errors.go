package mongo

import "errors"

var (
	ErrConnectionFailed  = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed = errors.New("mongo healthcheck failed")
)
