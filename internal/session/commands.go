package session

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-sign-desk/internal/store"
	"github.com/MKhiriev/go-sign-desk/models"
)

// newBackoff builds the retry budget of one connect sequence: exponential
// from InitialBackoff, capped at MaxBackoff, jittered, at most MaxRetries.
func (d *Dispatcher) newBackoff() retry.Backoff {
	b := retry.NewExponential(d.policy.InitialBackoff)
	b = retry.WithCappedDuration(d.policy.MaxBackoff, b)
	if d.policy.JitterPercent > 0 {
		b = retry.WithJitterPercent(d.policy.JitterPercent, b)
	}
	return retry.WithMaxRetries(d.policy.MaxRetries, b)
}

// connect waits delay and then asks the connector for the handle.
func (d *Dispatcher) connect(ticket uuid.UUID, delay time.Duration) tea.Cmd {
	ctx := d.ctx
	return func() tea.Msg {
		if delay > 0 {
			if err := d.wait(ctx, delay); err != nil {
				return ConnectResult{Ticket: ticket, Err: err}
			}
		}
		handle, err := d.connector.Connect(ctx)
		return ConnectResult{Ticket: ticket, Handle: handle, Err: err}
	}
}

func (d *Dispatcher) authenticate(ticket uuid.UUID, telephone string, secret models.Secret, handle *store.DB) tea.Cmd {
	ctx, timeout := d.ctx, d.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		identity, err := d.credentials.Authenticate(ctx, telephone, secret, handle)
		return AuthResult{Ticket: ticket, Identity: identity, Err: err}
	}
}

func (d *Dispatcher) register(ticket uuid.UUID, fields models.Identity, handle *store.DB) tea.Cmd {
	ctx, timeout := d.ctx, d.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		id, err := d.credentials.Register(ctx, fields, handle)
		return RegisterResult{Ticket: ticket, ID: id, Err: err}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
