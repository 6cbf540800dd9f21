package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:3590"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type step int

const (
	stepEnteringServerURL step = iota
	stepCheckingStatus
	stepEnteringUsername
	stepEnteringEmail
	stepEnteringPassword
	stepConfirmingPassword
	stepSending
	stepComplete
)

type model struct {
	step         step
	serverURL    string
	username     string
	email        string
	password     string
	confirm      string
	currentInput string
	message      string
	quitting     bool
}

type statusMsg struct{ needsSetup bool }
type initSuccessMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{
		step:         stepEnteringServerURL,
		currentInput: defaultServerURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func checkStatus(serverURL string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		resp, err := client.Get(serverURL + "/api/setup/status")
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable at %s: %w", serverURL, err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("server returned %d", resp.StatusCode)}
		}

		var result struct {
			NeedsSetup bool `json:"needs_setup"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected response: %w", err)}
		}

		return statusMsg{needsSetup: result.NeedsSetup}
	}
}

func sendInit(serverURL, username, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 15 * time.Second}

		payload := map[string]string{
			"username": username,
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/api/setup/init", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("failed to reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			body, _ := io.ReadAll(resp.Body)
			var parsed struct {
				Error string `json:"error"`
			}
			if json.Unmarshal(body, &parsed) == nil && parsed.Error != "" {
				return errMsg{fmt.Errorf("server refused: %s", parsed.Error)}
			}
			return errMsg{fmt.Errorf("server returned %d", resp.StatusCode)}
		}

		return initSuccessMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step == stepComplete {
				m.quitting = true
				return m, tea.Quit
			}
			if len(msg.String()) == 1 {
				m.currentInput += msg.String()
			}
		}

	case statusMsg:
		if !msg.needsSetup {
			m.message = "Setup is already complete on this server."
			m.step = stepComplete
			return m, nil
		}
		m.step = stepEnteringUsername
		m.currentInput = ""

	case initSuccessMsg:
		m.message = fmt.Sprintf("Admin account %q created. You can now log in to the dashboard.", m.username)
		m.step = stepComplete

	case errMsg:
		m.message = msg.Error()
		// Go back to the first input so the run can be retried.
		m.step = stepEnteringServerURL
		m.currentInput = m.serverURL
	}

	return m, nil
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepEnteringServerURL:
		url := strings.TrimRight(strings.TrimSpace(m.currentInput), "/")
		if url == "" {
			url = defaultServerURL
		}
		m.serverURL = url
		m.message = ""
		m.step = stepCheckingStatus
		return m, checkStatus(url)

	case stepEnteringUsername:
		if strings.TrimSpace(m.currentInput) == "" {
			m.message = "username cannot be empty"
			return m, nil
		}
		m.username = strings.TrimSpace(m.currentInput)
		m.currentInput = ""
		m.message = ""
		m.step = stepEnteringEmail

	case stepEnteringEmail:
		m.email = strings.TrimSpace(m.currentInput)
		m.currentInput = ""
		m.step = stepEnteringPassword

	case stepEnteringPassword:
		if len(m.currentInput) < 8 {
			m.message = "password must be at least 8 characters"
			return m, nil
		}
		m.password = m.currentInput
		m.currentInput = ""
		m.message = ""
		m.step = stepConfirmingPassword

	case stepConfirmingPassword:
		if m.currentInput != m.password {
			m.message = "passwords do not match"
			m.currentInput = ""
			m.step = stepEnteringPassword
			return m, nil
		}
		m.confirm = m.currentInput
		m.currentInput = ""
		m.message = ""
		m.step = stepSending
		return m, sendInit(m.serverURL, m.username, m.email, m.password)

	case stepComplete:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("HelpDesk first-run setup"))
	b.WriteString("\n\n")

	if m.message != "" {
		style := errorStyle
		if m.step == stepComplete {
			style = successStyle
		}
		b.WriteString(style.Render(m.message))
		b.WriteString("\n\n")
	}

	switch m.step {
	case stepEnteringServerURL:
		b.WriteString(promptStyle.Render("Server URL: "))
		b.WriteString(inputStyle.Render(m.currentInput))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("enter to continue, ctrl+c to quit"))

	case stepCheckingStatus:
		b.WriteString("Checking server status...")

	case stepEnteringUsername:
		b.WriteString(promptStyle.Render("Admin username: "))
		b.WriteString(inputStyle.Render(m.currentInput))

	case stepEnteringEmail:
		b.WriteString(promptStyle.Render("Admin email (optional): "))
		b.WriteString(inputStyle.Render(m.currentInput))

	case stepEnteringPassword:
		b.WriteString(promptStyle.Render("Password: "))
		b.WriteString(inputStyle.Render(strings.Repeat("*", len(m.currentInput))))

	case stepConfirmingPassword:
		b.WriteString(promptStyle.Render("Confirm password: "))
		b.WriteString(inputStyle.Render(strings.Repeat("*", len(m.currentInput))))

	case stepSending:
		b.WriteString("Creating admin account...")

	case stepComplete:
		b.WriteString(hintStyle.Render("press any key to exit"))
	}

	b.WriteString("\n")
	return b.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "setup failed: %v\n", err)
		os.Exit(1)
	}
}
