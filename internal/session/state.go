package session

import (
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-sign-desk/internal/store"
	"github.com/MKhiriev/go-sign-desk/models"
)

// Link is the connection status shown to the user.
type Link int

const (
	// LinkIdle: no connect has been requested yet.
	LinkIdle Link = iota
	// LinkConnecting: the first attempt of a connect is in flight.
	LinkConnecting
	// LinkRetrying: an attempt failed and the next one is scheduled.
	LinkRetrying
	// LinkEstablished: a handle is available.
	LinkEstablished
	// LinkLost: retrying stopped. Only RequestConnect leaves this state.
	LinkLost
)

func (l Link) String() string {
	switch l {
	case LinkConnecting:
		return "connecting"
	case LinkRetrying:
		return "retrying"
	case LinkEstablished:
		return "connected"
	case LinkLost:
		return "disconnected"
	default:
		return "idle"
	}
}

// Field names an editable field of the draft identity.
type Field int

const (
	FieldFirstName Field = iota
	FieldLastName
	FieldTelephone
	FieldSecret
)

// NoticeLevel tells the front-end how to render a [Notice].
type NoticeLevel int

const (
	NoticeNone NoticeLevel = iota
	NoticeInfo
	NoticeError
)

// Notice is the user-visible outcome of the last operation.
type Notice struct {
	Level NoticeLevel
	Text  string
}

// IsError reports whether the notice describes a failure.
func (n Notice) IsError() bool {
	return n.Level == NoticeError
}

// State is the single mutable record of the session.
//
// A State is owned by whoever runs the [Dispatcher]; only Dispatch writes to
// it. The front-end reads the exported fields for display. LoginVisible and
// RegisterVisible are never both true.
type State struct {
	// Draft is the identity being filled in, or the authenticated identity
	// once a login succeeds. Draft.ID is set only by a successful
	// registration.
	Draft models.Identity
	// DraftID changes every time the draft is reset. Results of operations
	// started for an older draft are dropped.
	DraftID uuid.UUID

	Authenticated bool
	Connected     bool
	// Handle is nil until the first successful connect.
	Handle *store.DB

	LoginVisible    bool
	RegisterVisible bool

	Link   Link
	Notice Notice

	conn connectAttempt
}

// connectAttempt tracks the connect sequence started by the latest
// RequestConnect.
type connectAttempt struct {
	ticket  uuid.UUID
	backoff retry.Backoff
	retries int
}

// NewState returns the initial session: nothing visible, not connected, not
// authenticated and an empty draft.
func NewState() *State {
	return &State{DraftID: uuid.New()}
}

// CanSubmit reports whether a login or registration would be sent to the
// datastore.
func (s *State) CanSubmit() bool {
	return s.Connected && s.Handle != nil
}

// Retries returns how many times the current connect has been retried.
func (s *State) Retries() int {
	return s.conn.retries
}

func (s *State) resetDraft() {
	s.Draft = models.Identity{}
	s.DraftID = uuid.New()
}

func (s *State) setField(f Field, value string) {
	switch f {
	case FieldFirstName:
		s.Draft.FirstName = value
	case FieldLastName:
		s.Draft.LastName = value
	case FieldTelephone:
		s.Draft.Telephone = value
	case FieldSecret:
		s.Draft.Secret = models.Secret(value)
	}
}

func (s *State) inform(text string) {
	s.Notice = Notice{Level: NoticeInfo, Text: text}
}

func (s *State) fail(text string) {
	s.Notice = Notice{Level: NoticeError, Text: text}
}
