// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sign desk session and its terminal front-end.
//
// All Msg* constants are human-readable message strings shown to the user as
// the notice of the last operation or written into log entries. Keeping them
// in one place ensures consistent wording across screens.
package app

const (
	// MsgConnecting is shown while the first connect attempt is in flight.
	MsgConnecting = "connecting to the datastore"

	// MsgConnected is shown once the datastore handle is established.
	MsgConnected = "connected to the datastore"

	// MsgConnectRetrying prefixes the notice shown while a failed connect is
	// waiting for its next attempt.
	MsgConnectRetrying = "datastore unreachable, retrying"

	// MsgConnectionLost is shown when the retry budget is exhausted or the
	// failure cannot be fixed by retrying. Only an explicit reconnect leaves
	// this state.
	MsgConnectionLost = "datastore connection lost, press r to reconnect"

	// MsgNoConnection is shown when a login or registration is submitted
	// while no datastore connection is available.
	MsgNoConnection = "no datastore connection"

	// MsgInvalidDataProvided is shown when the form fails validation (e.g.
	// missing required fields or an unparseable telephone).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidTelephoneSecret is shown for both an unknown telephone and a
	// wrong secret so that neither case can be told apart.
	MsgInvalidTelephoneSecret = "invalid telephone/secret"

	// MsgTelephoneAlreadyExists is shown when registration is rejected
	// because the telephone is already in use.
	MsgTelephoneAlreadyExists = "telephone already registered"

	// MsgDatastoreUnavailable is shown when the datastore failed while
	// serving a login or registration.
	MsgDatastoreUnavailable = "datastore unavailable, try again later"

	// MsgAlreadyRegistered is shown when a registration is submitted for a
	// draft that already carries an identifier. Signing out starts a new one.
	MsgAlreadyRegistered = "identity already registered, press o to sign out first"

	// MsgRegistrationFailed is shown when registration fails for a reason
	// none of the other messages describes.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is shown when login fails for a reason none of the
	// other messages describes.
	MsgLoginFailed = "login failed"

	// MsgRegistered is shown after a successful registration.
	MsgRegistered = "registration complete"

	// MsgLoggedIn is shown after a successful login.
	MsgLoggedIn = "signed in"

	// MsgLoggedOut is shown after logout.
	MsgLoggedOut = "signed out"
)
