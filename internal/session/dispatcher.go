package session

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-sign-desk/internal/app"
	"github.com/MKhiriev/go-sign-desk/internal/config"
	"github.com/MKhiriev/go-sign-desk/internal/logger"
	"github.com/MKhiriev/go-sign-desk/internal/service"
	"github.com/MKhiriev/go-sign-desk/internal/store"
)

// Dispatcher applies messages to a [State].
//
// Dispatch is synchronous and must only be called from the goroutine that owns
// the state (the Bubble Tea event loop). Asynchronous work is returned as a
// tea.Cmd; its result comes back as another Message. The Dispatcher itself is
// read-only after construction.
type Dispatcher struct {
	// ctx is the base context of every scheduled operation. It carries the
	// logger and is cancelled only at shutdown.
	ctx context.Context

	connector   store.Connector
	credentials service.CredentialService

	policy  config.ClientConnect
	timeout time.Duration

	// wait blocks for the retry delay or until ctx is done.
	wait func(ctx context.Context, d time.Duration) error

	logger *logger.Logger
}

// NewDispatcher wires a Dispatcher. ctx bounds the lifetime of every
// operation it schedules.
func NewDispatcher(
	ctx context.Context,
	connector store.Connector,
	credentials service.CredentialService,
	cfg config.ClientConfig,
	log *logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		ctx:         log.WithContext(ctx),
		connector:   connector,
		credentials: credentials,
		policy:      cfg.Connect,
		timeout:     cfg.App.OperationTimeout,
		wait:        sleep,
		logger:      log,
	}
}

// Dispatch applies msg to s and returns the single operation to run next, or
// nil. It never blocks.
func (d *Dispatcher) Dispatch(s *State, msg Message) tea.Cmd {
	switch m := msg.(type) {
	case RequestConnect:
		return d.requestConnect(s)
	case ConnectResult:
		return d.connectResult(s, m)

	case ShowLogin, SwitchRegisterToLogin:
		s.LoginVisible, s.RegisterVisible = true, false
	case ShowRegister, SwitchLoginToRegister:
		s.LoginVisible, s.RegisterVisible = false, true

	case FieldEdited:
		s.setField(m.Field, m.Value)

	case SubmitLogin:
		return d.submitLogin(s)
	case AuthResult:
		d.authResult(s, m)

	case SubmitRegister:
		return d.submitRegister(s)
	case RegisterResult:
		d.registerResult(s, m)

	case Logout:
		s.Authenticated = false
		s.resetDraft()
		s.inform(app.MsgLoggedOut)
		d.logger.Debug().Str("func", "*Dispatcher.Dispatch").Msg("logged out, draft reset")

	default:
		d.logger.Warn().Str("func", "*Dispatcher.Dispatch").Type("message", msg).Msg("unknown message ignored")
	}
	return nil
}

func (d *Dispatcher) requestConnect(s *State) tea.Cmd {
	s.Connected = false
	s.Link = LinkConnecting
	s.conn = connectAttempt{
		ticket:  uuid.New(),
		backoff: d.newBackoff(),
	}
	s.inform(app.MsgConnecting)

	d.logger.Debug().
		Str("func", "*Dispatcher.requestConnect").
		Stringer("ticket", s.conn.ticket).
		Msg("connect requested")

	return d.connect(s.conn.ticket, 0)
}

func (d *Dispatcher) connectResult(s *State, m ConnectResult) tea.Cmd {
	log := d.logger.With().
		Str("func", "*Dispatcher.connectResult").
		Stringer("ticket", m.Ticket).
		Logger()

	// Every connect shares the connector's single pool, so a success is
	// usable whichever attempt produced it.
	if m.Err == nil {
		s.Handle = m.Handle
		s.Connected = true
		s.Link = LinkEstablished
		s.inform(app.MsgConnected)
		log.Info().Msg("datastore connection established")
		return nil
	}

	if m.Ticket != s.conn.ticket || s.Connected {
		log.Debug().Err(m.Err).Msg("stale connect failure dropped")
		return nil
	}

	s.Connected = false

	if store.IsRetryable(m.Err) && s.conn.backoff != nil {
		if delay, stop := s.conn.backoff.Next(); !stop {
			s.conn.retries++
			s.Link = LinkRetrying
			s.fail(describeRetry(s.conn.retries, d.policy.MaxRetries, delay))
			log.Warn().Err(m.Err).
				Int("retry", s.conn.retries).
				Dur("delay", delay).
				Msg("connect failed, retry scheduled")
			return d.connect(s.conn.ticket, delay)
		}
	}

	s.Link = LinkLost
	s.fail(describeLost(m.Err))
	log.Error().Err(m.Err).Int("retries", s.conn.retries).Msg("connect abandoned")
	return nil
}

func (d *Dispatcher) submitLogin(s *State) tea.Cmd {
	if !s.LoginVisible {
		return nil
	}
	s.LoginVisible = false

	if !s.CanSubmit() {
		s.fail(app.MsgNoConnection)
		d.logger.Debug().Str("func", "*Dispatcher.submitLogin").Msg("login submitted without connection")
		return nil
	}

	return d.authenticate(s.DraftID, s.Draft.Telephone, s.Draft.Secret, s.Handle)
}

func (d *Dispatcher) authResult(s *State, m AuthResult) {
	if m.Ticket != s.DraftID {
		d.logger.Debug().Str("func", "*Dispatcher.authResult").Msg("stale authentication result dropped")
		return
	}
	s.Draft.Secret = ""

	if m.Err != nil {
		s.fail(describe(m.Err, app.MsgLoginFailed))
		return
	}

	s.Authenticated = true
	s.Draft = m.Identity.Public()
	s.inform(app.MsgLoggedIn)
}

func (d *Dispatcher) submitRegister(s *State) tea.Cmd {
	if !s.RegisterVisible {
		return nil
	}
	s.RegisterVisible = false

	if !s.CanSubmit() {
		s.fail(app.MsgNoConnection)
		d.logger.Debug().Str("func", "*Dispatcher.submitRegister").Msg("registration submitted without connection")
		return nil
	}

	if s.Draft.HasID() {
		s.fail(app.MsgAlreadyRegistered)
		d.logger.Debug().Str("func", "*Dispatcher.submitRegister").Msg("registration submitted for a persisted draft")
		return nil
	}

	return d.register(s.DraftID, s.Draft, s.Handle)
}

func (d *Dispatcher) registerResult(s *State, m RegisterResult) {
	if m.Ticket != s.DraftID {
		d.logger.Debug().Str("func", "*Dispatcher.registerResult").Msg("stale registration result dropped")
		return
	}
	s.Draft.Secret = ""

	if m.Err != nil {
		s.fail(describe(m.Err, app.MsgRegistrationFailed))
		return
	}

	// The identifier is assigned once.
	if s.Draft.HasID() {
		s.fail(app.MsgAlreadyRegistered)
		d.logger.Warn().Str("func", "*Dispatcher.registerResult").
			Int64("id", s.Draft.ID).Int64("ignored_id", m.ID).
			Msg("second identifier for a persisted draft")
		return
	}

	s.Draft.ID = m.ID
	s.inform(app.MsgRegistered)
}
