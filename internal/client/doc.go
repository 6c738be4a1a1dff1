// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the command-line client runtime.
//
// [NewApp] loads the client configuration, opens the local cache and session
// storage, and wires the HTTP server adapter into the client services that the
// commands in package cli drive.
package client
