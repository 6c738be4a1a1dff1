package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-green-pledge/internal/adapter"
	"github.com/MKhiriev/go-green-pledge/internal/service"
	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(14)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		Render()
}

type field struct {
	label string
	value string
}

func renderCard(title string, fields []field) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	for _, f := range fields {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(f.label))
		b.WriteString(f.value)
	}
	return boxStyle.Render(b.String())
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error:"), humanizeError(err))
}

// humanizeError turns transport and session errors into a hint the user can act on.
func humanizeError(err error) string {
	switch {
	case errors.Is(err, service.ErrNotLoggedIn):
		return "not logged in, run `green-pledge login` first"
	case errors.Is(err, service.ErrSessionExpired):
		return "session expired, run `green-pledge login` again"
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "too many attempts, try again later"
	case errors.Is(err, adapter.ErrInvalidAddress):
		return err.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "server is unavailable or the network is down"
	}

	return err.Error()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func optional(s *string) string {
	if s == nil {
		return "-"
	}
	return orDash(*s)
}

func nullDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.String()
}

func pledgeUser(p models.Pledge) string {
	if p.UserID == nil {
		return "anonymous"
	}
	return *p.UserID
}
