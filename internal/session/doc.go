// Package session holds the state of the single sign desk session and the
// dispatcher that is the only code allowed to change it.
//
// Core concepts:
//   - State: what the session looks like right now. The draft identity,
//     the authenticated and connected flags, the datastore handle, which
//     form is visible and the last notice.
//   - Message: the closed set of events the session reacts to. User intents
//     (ShowLogin, FieldEdited, SubmitRegister, ...) and operation results
//     (ConnectResult, AuthResult, RegisterResult).
//   - Dispatcher: applies one Message to the State and returns at most one
//     tea.Cmd. The command runs on a Bubble Tea goroutine with values copied
//     at scheduling time and reports back with a result Message.
//
// Operation results carry the ticket they were started with: the connect
// attempt ticket or the DraftID. A result whose ticket no longer matches the
// state is dropped, so completions may arrive in any order.
//
// A failed connect is retried with capped exponential backoff while the
// error is retryable and the budget lasts. Afterwards the link is LinkLost
// until the next RequestConnect.
package session
