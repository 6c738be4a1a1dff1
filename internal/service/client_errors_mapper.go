// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-green-pledge/internal/adapter"
	"github.com/MKhiriev/go-green-pledge/internal/app"
	"github.com/MKhiriev/go-green-pledge/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case msg == app.MsgUsernameAlreadyExists:
			return store.ErrUsernameAlreadyExists
		case msg == app.MsgEmailAlreadyExists:
			return store.ErrEmailAlreadyExists
		case strings.HasPrefix(msg, app.MsgInvalidProjectData),
			strings.HasPrefix(msg, app.MsgInvalidPledgeData),
			strings.HasPrefix(msg, app.MsgInvalidRegistrationData):
			// keep the server's field details in the message
			return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			return ErrInvalidCredentials
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrForeignUserID

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgProjectNotFound {
			return store.ErrProjectNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgProjectHasPledges {
			return store.ErrProjectHasPledges
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
