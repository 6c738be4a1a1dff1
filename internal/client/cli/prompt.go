// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var errPromptCanceled = errors.New("canceled")

// passwordModel is a one-field Bubble Tea form with masked echo. It quits on
// enter with a non-empty value, or on esc/ctrl+c with canceled set.
type passwordModel struct {
	label    string
	input    textinput.Model
	value    string
	canceled bool
	errMsg   string
}

func newPasswordModel(label string) passwordModel {
	input := textinput.New()
	input.Placeholder = "password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return passwordModel{label: label, input: input}
}

func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.input.Value() == "" {
				m.errMsg = "password is required"
				return m, nil
			}
			m.value = m.input.Value()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m passwordModel) View() string {
	if m.value != "" || m.canceled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.label))
	b.WriteString(" ")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: confirm │ esc: cancel"))
	b.WriteString("\n")

	return b.String()
}

// promptPassword reads a password on the command's terminal streams.
func promptPassword(cmd *cobra.Command, label string) (string, error) {
	program := tea.NewProgram(newPasswordModel(label),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	m, ok := final.(passwordModel)
	if !ok || m.canceled {
		return "", errPromptCanceled
	}
	return m.value, nil
}
