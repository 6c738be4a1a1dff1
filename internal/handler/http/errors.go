// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrEmptyAuthorizationHeader is reported when a protected route is called
// without an "Authorization" header. A malformed header is reported with
// [utils.ErrInvalidAuthorizationHeader].
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
