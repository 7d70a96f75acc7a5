package session

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-sign-desk/internal/store"
	"github.com/MKhiriev/go-sign-desk/models"
)

// Message is an event accepted by [Dispatcher.Dispatch]. The set is closed.
type Message interface {
	message()
}

// RequestConnect starts a fresh connect sequence with a full retry budget.
type RequestConnect struct{}

// ConnectResult is the outcome of one connect attempt. Err is nil on success.
type ConnectResult struct {
	Ticket uuid.UUID
	Handle *store.DB
	Err    error
}

type ShowLogin struct{}

type ShowRegister struct{}

type SwitchLoginToRegister struct{}

type SwitchRegisterToLogin struct{}

// FieldEdited carries the new value of one draft field.
type FieldEdited struct {
	Field Field
	Value string
}

type SubmitLogin struct{}

// AuthResult is the outcome of an authenticate started for the draft
// identified by Ticket.
type AuthResult struct {
	Ticket   uuid.UUID
	Identity models.Identity
	Err      error
}

type SubmitRegister struct{}

// RegisterResult is the outcome of a register started for the draft
// identified by Ticket.
type RegisterResult struct {
	Ticket uuid.UUID
	ID     int64
	Err    error
}

// Logout drops the authentication and starts a new draft.
type Logout struct{}

func (RequestConnect) message()        {}
func (ConnectResult) message()         {}
func (ShowLogin) message()             {}
func (ShowRegister) message()          {}
func (SwitchLoginToRegister) message() {}
func (SwitchRegisterToLogin) message() {}
func (FieldEdited) message()           {}
func (SubmitLogin) message()           {}
func (AuthResult) message()            {}
func (SubmitRegister) message()        {}
func (RegisterResult) message()        {}
func (Logout) message()                {}
