package server

import "errors"

var (
	errNoHTTPHandler    = errors.New("http handler is not configured")
	errEmptyHTTPAddress = errors.New("http listen address is empty")
)
