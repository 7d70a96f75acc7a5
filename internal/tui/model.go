package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sign-desk/internal/session"
	"github.com/MKhiriev/go-sign-desk/models"
)

const statusTTL = 2 * time.Second

// Model is the root Bubble Tea model. It translates keys into session
// messages and renders the session state; it never changes the state itself.
//
// Screens follow the state: the login form while LoginVisible, the
// registration form while RegisterVisible, the dashboard otherwise.
type Model struct {
	dispatcher *session.Dispatcher
	state      *session.State
	buildInfo  models.AppBuildInfo

	login    *form
	register *form

	// status is a front-end only line (clipboard feedback).
	status        string
	showBuildInfo bool
}

// NewModel returns a Model over a fresh session state.
func NewModel(dispatcher *session.Dispatcher, buildInfo models.AppBuildInfo) *Model {
	return &Model{
		dispatcher: dispatcher,
		state:      session.NewState(),
		buildInfo:  buildInfo,
		login:      newForm("SIGN IN", session.FieldTelephone, session.FieldSecret),
		register: newForm("REGISTER",
			session.FieldFirstName,
			session.FieldLastName,
			session.FieldTelephone,
			session.FieldSecret,
		),
	}
}

// State exposes the session for read-only use.
func (m *Model) State() *session.State {
	return m.state
}

// Init implements [tea.Model]. Connecting starts with the program.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.dispatch(session.RequestConnect{}))
}

// Update implements [tea.Model]. Handled messages:
//   - session messages (operation results) go to the dispatcher.
//   - key presses are translated by the active screen.
//   - clipboard feedback updates the status line.
//
// Everything else (cursor blink) is forwarded to the active form.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case session.Message:
		return m, m.dispatch(msg)

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "identifier copied to clipboard"
		}
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if f := m.activeForm(); f != nil {
		return m, f.tick(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case m.state.LoginVisible:
		return m, m.formKey(msg, m.login, session.SubmitLogin{}, session.SwitchLoginToRegister{})
	case m.state.RegisterVisible:
		return m, m.formKey(msg, m.register, session.SubmitRegister{}, session.SwitchRegisterToLogin{})
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.login):
		return m, m.dispatch(session.ShowLogin{})
	case key.Matches(msg, keys.register):
		return m, m.dispatch(session.ShowRegister{})
	case key.Matches(msg, keys.reconnect):
		return m, m.dispatch(session.RequestConnect{})
	case key.Matches(msg, keys.logout):
		return m, m.dispatch(session.Logout{})
	case key.Matches(msg, keys.copy):
		if m.state.Draft.HasID() {
			return m, copyIdentifier(m.state.Draft.ID)
		}
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m *Model) formKey(msg tea.KeyMsg, f *form, submit, switchForm session.Message) tea.Cmd {
	switch {
	case key.Matches(msg, keys.enter):
		return m.dispatch(submit)
	case key.Matches(msg, keys.switchForm):
		return m.dispatch(switchForm)
	}

	edit, cmd := f.update(msg)
	if edit != nil {
		// Field edits never schedule work.
		m.dispatch(*edit)
	}
	return cmd
}

// dispatch runs msg through the dispatcher and loads a form from the draft
// when it becomes visible.
func (m *Model) dispatch(msg session.Message) tea.Cmd {
	wasLogin, wasRegister := m.state.LoginVisible, m.state.RegisterVisible

	cmd := m.dispatcher.Dispatch(m.state, msg)

	if m.state.LoginVisible && !wasLogin {
		m.login.load(m.state.Draft)
	}
	if m.state.RegisterVisible && !wasRegister {
		m.register.load(m.state.Draft)
	}
	return cmd
}

func (m *Model) activeForm() *form {
	switch {
	case m.state.LoginVisible:
		return m.login
	case m.state.RegisterVisible:
		return m.register
	}
	return nil
}

func copyIdentifier(id int64) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(strconv.FormatInt(id, 10))}
	}
}

// View implements [tea.Model].
func (m *Model) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	if f := m.activeForm(); f != nil {
		return renderPage(f.title, f.view()+m.footer(), "tab: next field │ ctrl+t: switch form │ enter: submit")
	}

	return renderPage("SIGN DESK", m.dashboard()+m.footer(),
		"l: sign in │ n: register │ r: reconnect │ o: sign out │ c: copy id │ v: version │ q: quit")
}

func (m *Model) dashboard() string {
	s := m.state

	var b strings.Builder
	b.WriteString(row("Datastore", labelWidth, s.Link.String()))
	b.WriteString("\n")

	who := "anonymous"
	if s.Authenticated {
		name := strings.TrimSpace(s.Draft.FirstName + " " + s.Draft.LastName)
		who = fmt.Sprintf("signed in as %s (%s)", fitText(valueOrDash(name), 40), s.Draft.Telephone)
	}
	b.WriteString(row("Session", labelWidth, who))
	b.WriteString("\n")

	identity := "-"
	if s.Draft.HasID() {
		identity = "#" + strconv.FormatInt(s.Draft.ID, 10)
	}
	b.WriteString(row("Identity", labelWidth, identity))

	return b.String()
}

func (m *Model) footer() string {
	var b strings.Builder

	switch notice := m.state.Notice; notice.Level {
	case session.NoticeError:
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + notice.Text))
	case session.NoticeInfo:
		b.WriteString("\n\n")
		b.WriteString(infoStyle.Render(notice.Text))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	return b.String()
}
