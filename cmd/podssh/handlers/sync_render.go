package handlers

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/imamik/podssh/internal/inventory"
	"github.com/imamik/podssh/internal/reconcile"
)

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	greenStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	redStyle    = lipgloss.NewStyle().Foreground(colorRed)
	yellowStyle = lipgloss.NewStyle().Foreground(colorYellow)
)

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// syncRow is one line of the report table.
type syncRow struct {
	name     string
	endpoint string
	access   string
	status   string
}

func buildSyncRows(report *reconcile.Report) []syncRow {
	replaced := report.Replaced()
	next := 0

	var rows []syncRow
	for _, res := range report.Instances {
		switch res.Status() {
		case reconcile.StatusFound:
			for _, ep := range res.Endpoints {
				status := reconcile.StatusFound
				if replaced[next] {
					status = reconcile.StatusReplaced
				}
				next++
				rows = append(rows, syncRow{
					name:     res.Name,
					endpoint: ep.Address + ":" + strconv.Itoa(ep.Port),
					access:   endpointAccess(ep),
					status:   status,
				})
			}
		case reconcile.StatusFailed:
			rows = append(rows, syncRow{name: displayName(res), endpoint: "-", access: "-", status: res.Error})
		default:
			rows = append(rows, syncRow{name: displayName(res), endpoint: "-", access: "-", status: res.Status()})
		}
	}
	return rows
}

// endpointAccess renders reachability as "public" or "private", followed by
// the protocol when the provider reports one.
func endpointAccess(ep inventory.Endpoint) string {
	access := "private"
	if ep.Public {
		access = "public"
	}
	if ep.Protocol != "" {
		access += "/" + ep.Protocol
	}
	return access
}

func displayName(res reconcile.InstanceResult) string {
	if res.Name != "" {
		return res.Name
	}
	return res.ID
}

// renderSyncReport produces the instance table and summary. When styled
// is false the output uses ASCII borders and no colors.
func renderSyncReport(report *reconcile.Report, styled bool) string {
	var b strings.Builder

	title := fmt.Sprintf("podssh sync: %s", report.Provider)
	if styled {
		title = titleStyle.Render(title)
	}
	b.WriteString(title)
	b.WriteString("\n")

	rows := buildSyncRows(report)
	if len(rows) > 0 {
		b.WriteString(renderSyncTable(rows, styled))
		b.WriteString("\n")
	}

	hosts := 0
	if report.Document != nil {
		hosts = len(report.Document.Blocks)
	}

	summary := fmt.Sprintf("Found %d instances, %d hosts", report.InstanceCount, hosts)
	switch {
	case report.Written:
		summary += fmt.Sprintf(", wrote %s", report.Path)
	case report.DryRun:
		summary += ", dry run"
	default:
		summary += ", nothing written"
	}
	summaryStyle := dimStyle
	if report.Written {
		summaryStyle = greenStyle
	}
	b.WriteString(paint(styled, summaryStyle, summary))
	b.WriteString("\n")

	for _, c := range report.Collisions {
		line := fmt.Sprintf("Warning: host %s is used by more than one endpoint, kept %s:%d",
			c.Name, c.Current.Hostname, c.Current.Port)
		b.WriteString(paint(styled, yellowStyle, line))
		b.WriteString("\n")
	}

	if n := len(report.Failures()); n > 0 {
		b.WriteString(paint(styled, redStyle, fmt.Sprintf("%d instance(s) skipped", n)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderSyncTable(rows []syncRow, styled bool) string {
	t := table.New().
		Headers("Name", "IP:Port", "Access", "Status")

	if styled {
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(dimStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				if col == 3 && row >= 0 && row < len(rows) {
					switch rows[row].status {
					case reconcile.StatusFound:
						return cellStyle.Foreground(colorGreen)
					case reconcile.StatusReplaced:
						return cellStyle.Foreground(colorYellow)
					case reconcile.StatusNoEndpoint:
						return cellStyle.Foreground(colorDim)
					default:
						return cellStyle.Foreground(colorRed)
					}
				}
				return cellStyle
			})
	} else {
		t = t.Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(_, _ int) lipgloss.Style {
				return lipgloss.NewStyle().Padding(0, 1)
			})
	}

	for _, r := range rows {
		t = t.Row(r.name, r.endpoint, r.access, r.status)
	}
	return t.Render()
}

func paint(styled bool, style lipgloss.Style, s string) string {
	if !styled {
		return s
	}
	return style.Render(s)
}
