package render

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lak-git/VLSM-Calculator/internal/vlsm"
)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Headers returns the table column headers. The Wasted IPs column is
// only present when showWasted is set.
func Headers(showWasted bool) []string {
	headers := []string{"Name", "Network", "Broadcast", "Usable Range", "Subnet Mask", "Wildcard Mask"}
	if showWasted {
		headers = append(headers, "Wasted IPs")
	}
	return headers
}

// Row formats a single allocation as table cells.
func Row(a vlsm.Allocation, showWasted bool) []string {
	usable := "N/A"
	if first, last, ok := a.Network.UsableRange(); ok {
		usable = fmt.Sprintf("%s - %s", first, last)
	}

	row := []string{
		a.Name,
		a.Network.String(),
		a.Network.Broadcast().String(),
		usable,
		a.Network.Netmask().String(),
		a.Network.Wildcard().String(),
	}
	if showWasted {
		row = append(row, strconv.FormatUint(uint64(a.Wasted), 10))
	}
	return row
}

// Table renders the allocation plan as a bordered text table, one row per
// allocation, in the order the allocator produced them.
func Table(allocs []vlsm.Allocation, showWasted bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		}).
		Headers(Headers(showWasted)...)

	for _, a := range allocs {
		t.Row(Row(a, showWasted)...)
	}

	return t.String()
}
