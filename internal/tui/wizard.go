package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lak-git/VLSM-Calculator/internal/input"
	"github.com/lak-git/VLSM-Calculator/internal/ipv4"
	"github.com/lak-git/VLSM-Calculator/internal/vlsm"
)

// wizardStep identifies the current step.
type wizardStep int

const (
	stepBase wizardStep = iota
	stepRequirements
	stepConfirm
)

// wizardModel drives the interactive plan input.
type wizardModel struct {
	step wizardStep

	// Step 1: base network
	baseInput textinput.Model

	// Step 2: requirement entry loop
	reqInput textinput.Model

	// Inline validation message for the current step
	errMsg string

	// Collected values
	base         string
	requirements []vlsm.Requirement
}

// wizardStyles
var (
	wizardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginBottom(1)

	wizardLabelStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	wizardValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	wizardDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160"))
)

func newWizardModel() wizardModel {
	bi := textinput.New()
	bi.Placeholder = "192.168.1.0/24"
	bi.Focus()
	bi.CharLimit = 18
	bi.Width = 40

	ri := textinput.New()
	ri.Placeholder = "Sales|50"
	ri.CharLimit = 128
	ri.Width = 40

	return wizardModel{
		step:      stepBase,
		baseInput: bi,
		reqInput:  ri,
	}
}

func (w *wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes a message and returns (done, spec, cmd).
// done=true with non-nil spec means the wizard completed successfully.
// done=true with nil spec means the wizard was cancelled.
func (w *wizardModel) Update(msg tea.Msg) (bool, *input.Spec, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			return true, nil, nil
		case tea.KeyEsc:
			return w.handleBack()
		}
	}

	switch w.step {
	case stepBase:
		return w.updateBase(msg)
	case stepRequirements:
		return w.updateRequirements(msg)
	case stepConfirm:
		return w.updateConfirm(msg)
	}

	return false, nil, nil
}

func (w *wizardModel) handleBack() (bool, *input.Spec, tea.Cmd) {
	w.errMsg = ""
	switch w.step {
	case stepBase:
		// Esc at first step cancels wizard
		return true, nil, nil
	case stepRequirements:
		w.step = stepBase
		w.reqInput.Blur()
		w.baseInput.Focus()
		return false, nil, textinput.Blink
	case stepConfirm:
		w.step = stepRequirements
		w.reqInput.Focus()
		return false, nil, textinput.Blink
	}
	return false, nil, nil
}

func (w *wizardModel) updateBase(msg tea.Msg) (bool, *input.Spec, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		base := strings.TrimSpace(w.baseInput.Value())
		if base == "" {
			return false, nil, nil
		}
		if _, err := ipv4.ParseCIDR(base); err != nil {
			w.errMsg = err.Error()
			return false, nil, nil
		}
		w.errMsg = ""
		w.base = base
		w.step = stepRequirements
		w.baseInput.Blur()
		w.reqInput.Focus()
		return false, nil, textinput.Blink
	}

	var cmd tea.Cmd
	w.baseInput, cmd = w.baseInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateRequirements(msg tea.Msg) (bool, *input.Spec, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		line := strings.TrimSpace(w.reqInput.Value())
		if line == "" {
			return false, nil, nil
		}

		if strings.EqualFold(line, "x") {
			if len(w.requirements) == 0 {
				w.errMsg = "enter at least one requirement"
				return false, nil, nil
			}
			w.errMsg = ""
			w.step = stepConfirm
			w.reqInput.Blur()
			return false, nil, nil
		}

		req, err := parseEntry(line)
		if err != nil {
			w.errMsg = err.Error()
			return false, nil, nil
		}

		w.errMsg = ""
		w.requirements = append(w.requirements, req)
		w.reqInput.SetValue("")
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.reqInput, cmd = w.reqInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateConfirm(msg tea.Msg) (bool, *input.Spec, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil, nil
	}

	switch keyMsg.String() {
	case "enter", "y":
		return true, &input.Spec{
			Base:         w.base,
			Requirements: w.requirements,
		}, nil
	case "n", "q":
		return true, nil, nil
	}

	return false, nil, nil
}

// parseEntry parses a "Name|Number" wizard entry.
func parseEntry(line string) (vlsm.Requirement, error) {
	name, num, found := strings.Cut(line, "|")
	if !found {
		return vlsm.Requirement{}, fmt.Errorf("invalid format, use Name|Number")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return vlsm.Requirement{}, fmt.Errorf("name cannot be empty")
	}

	hosts, err := strconv.ParseUint(strings.TrimSpace(num), 10, 32)
	if err != nil {
		return vlsm.Requirement{}, fmt.Errorf("number must be an integer")
	}
	if hosts < 1 {
		return vlsm.Requirement{}, fmt.Errorf("number must be >= 1")
	}

	return vlsm.Requirement{Name: name, Hosts: uint32(hosts)}, nil
}

func (w *wizardModel) View() string {
	var b strings.Builder

	b.WriteString(wizardTitleStyle.Render("vlsmcalc — new allocation plan"))
	b.WriteString("\n")

	switch w.step {
	case stepBase:
		b.WriteString(wizardLabelStyle.Render("Base IPv4 network (CIDR)"))
		b.WriteString("\n")
		b.WriteString(w.baseInput.View())
	case stepRequirements:
		b.WriteString(wizardLabelStyle.Render("Requirements"))
		b.WriteString("\n")
		for _, req := range w.requirements {
			b.WriteString(fmt.Sprintf("  %s\n",
				wizardValueStyle.Render(fmt.Sprintf("%s — %d hosts", req.Name, req.Hosts))))
		}
		b.WriteString(w.reqInput.View())
		b.WriteString("\n")
		b.WriteString(wizardDimStyle.Render("Name|Number per entry, x to finish"))
	case stepConfirm:
		b.WriteString(wizardLabelStyle.Render("Confirm plan"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  Base: %s\n", wizardValueStyle.Render(w.base)))
		for _, req := range w.requirements {
			b.WriteString(fmt.Sprintf("  %s — %d hosts\n", req.Name, req.Hosts))
		}
		b.WriteString("\n")
		b.WriteString(wizardDimStyle.Render("enter/y to allocate, n to cancel"))
	}

	if w.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(wizardErrStyle.Render(w.errMsg))
	}

	b.WriteString("\n")
	b.WriteString(wizardDimStyle.Render("esc to go back, ctrl+c to quit"))
	b.WriteString("\n")

	return b.String()
}
