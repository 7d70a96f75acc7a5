package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sign-desk/internal/session"
	"github.com/MKhiriev/go-sign-desk/models"
)

const labelWidth = 10

var fieldLabels = map[session.Field]string{
	session.FieldFirstName: "First name",
	session.FieldLastName:  "Last name",
	session.FieldTelephone: "Telephone",
	session.FieldSecret:    "Secret",
}

var fieldPlaceholders = map[session.Field]string{
	session.FieldFirstName: "Ada",
	session.FieldLastName:  "Lovelace",
	session.FieldTelephone: "+1 415 555 2671",
	session.FieldSecret:    "at least 8 characters",
}

// form is a column of text inputs bound to draft fields. It owns no data:
// every edit is reported back as a session.FieldEdited.
type form struct {
	title  string
	fields []session.Field
	inputs []textinput.Model
	focus  int
}

func newForm(title string, fields ...session.Field) *form {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = fieldPlaceholders[f]
		inputs[i].Width = 40
		inputs[i].CharLimit = 128
		if f == session.FieldSecret {
			inputs[i].EchoMode = textinput.EchoPassword
			inputs[i].EchoCharacter = '*'
		}
	}

	return &form{title: title, fields: fields, inputs: inputs}
}

// load copies the draft into the inputs and focuses the first one.
func (f *form) load(draft models.Identity) {
	for i, field := range f.fields {
		f.inputs[i].SetValue(draftValue(draft, field))
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

// update feeds a key to the focused input. When the value changed the edit
// is returned for dispatch.
func (f *form) update(msg tea.KeyMsg) (*session.FieldEdited, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		f.move(1)
		return nil, nil
	case key.Matches(msg, keys.backtab):
		f.move(-1)
		return nil, nil
	}

	before := f.inputs[f.focus].Value()

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)

	after := f.inputs[f.focus].Value()
	if after == before {
		return nil, cmd
	}
	return &session.FieldEdited{Field: f.fields[f.focus], Value: after}, cmd
}

// tick forwards non-key messages (cursor blink) to the focused input.
func (f *form) tick(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) view() string {
	var b strings.Builder
	b.WriteString(row("Field", labelWidth, "Value"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", labelWidth+1))
	b.WriteString("┼")
	b.WriteString(strings.Repeat("─", 44))
	b.WriteString("\n")

	for i, field := range f.fields {
		b.WriteString(row(fieldLabels[field], labelWidth, "["+f.inputs[i].View()+"]"))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func draftValue(draft models.Identity, field session.Field) string {
	switch field {
	case session.FieldFirstName:
		return draft.FirstName
	case session.FieldLastName:
		return draft.LastName
	case session.FieldTelephone:
		return draft.Telephone
	case session.FieldSecret:
		return draft.Secret.Reveal()
	}
	return ""
}
