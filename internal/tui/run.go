package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lak-git/VLSM-Calculator/internal/errors"
	"github.com/lak-git/VLSM-Calculator/internal/input"
)

// runModel adapts wizardModel to the tea.Model interface.
type runModel struct {
	wizard wizardModel
	spec   *input.Spec
	done   bool
}

func (m runModel) Init() tea.Cmd {
	return m.wizard.Init()
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, spec, cmd := m.wizard.Update(msg)
	if done {
		m.done = true
		m.spec = spec
		return m, tea.Quit
	}
	return m, cmd
}

func (m runModel) View() string {
	if m.done {
		return ""
	}
	return m.wizard.View()
}

// Run drives the interactive wizard and returns the collected plan input.
// A cancelled session returns errors.Cancelled().
func Run() (*input.Spec, error) {
	p := tea.NewProgram(runModel{wizard: newWizardModel()})

	final, err := p.Run()
	if err != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, "interactive input failed", err)
	}

	m, ok := final.(runModel)
	if !ok || m.spec == nil {
		return nil, errors.Cancelled()
	}

	return m.spec, nil
}
