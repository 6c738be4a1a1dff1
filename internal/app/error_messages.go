// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// green-pledge server handlers and the client.
//
// All Msg* constants are the generic messages written into the "error" field
// of JSON error bodies. The client matches on them to restore the sentinel
// error the server started from, so the wording must stay in one place.
package app

const (
	// MsgFailedToFetchProjects is returned when the project list cannot be read.
	MsgFailedToFetchProjects = "Failed to fetch projects"

	// MsgFailedToFetchProject is returned when a single project cannot be read
	// for a reason other than it not existing.
	MsgFailedToFetchProject = "Failed to fetch project"

	// MsgProjectNotFound is returned for an unknown project id.
	MsgProjectNotFound = "Project not found"

	// MsgInvalidProjectData is returned when a create or update body fails
	// validation.
	MsgInvalidProjectData = "Invalid project data"

	// MsgFailedToCreateProject and MsgFailedToUpdateProject cover unexpected
	// storage failures while writing a project.
	MsgFailedToCreateProject = "Failed to create project"
	MsgFailedToUpdateProject = "Failed to update project"

	// MsgFailedToDeleteProject is returned when deletion fails unexpectedly.
	MsgFailedToDeleteProject = "Failed to delete project"

	// MsgProjectHasPledges is returned when a project cannot be deleted
	// because pledges still reference it.
	MsgProjectHasPledges = "Project has pledges"

	// MsgFailedToFetchPledges is returned when the pledge list cannot be read.
	MsgFailedToFetchPledges = "Failed to fetch pledges"

	// MsgInvalidPledgeData is returned when a pledge body fails validation or
	// references a project or user that does not exist.
	MsgInvalidPledgeData = "Invalid pledge data"

	// MsgForeignUserID is returned when a pledge names a user other than the caller.
	MsgForeignUserID = "Cannot pledge on behalf of another user"

	// MsgUsernameAlreadyExists and MsgEmailAlreadyExists are returned on
	// duplicate registration.
	MsgUsernameAlreadyExists = "Username already exists"
	MsgEmailAlreadyExists    = "Email already exists"

	// MsgInvalidRegistrationData is returned when a registration body fails validation.
	MsgInvalidRegistrationData = "Invalid registration data"

	// MsgRegistrationFailed is returned when registration fails unexpectedly.
	MsgRegistrationFailed = "Registration failed"

	// MsgInvalidCredentials is returned for an unknown username and for a
	// wrong password alike.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgLoginFailed is returned when login fails unexpectedly.
	MsgLoginFailed = "Login failed"

	// MsgAuthenticationRequired is returned when a protected route is called
	// without a bearer token.
	MsgAuthenticationRequired = "Authentication required"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified or its subject no longer exists.
	MsgTokenIsExpiredOrInvalid = "Token is expired or invalid"

	// MsgTooManyRequests is returned by the auth rate limiter.
	MsgTooManyRequests = "Too many requests"

	// MsgFailedToSeed is returned when seeding fails.
	MsgFailedToSeed = "Failed to seed database"

	// MsgInvalidJSON is returned when a request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON body"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
