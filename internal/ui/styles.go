package ui

import (
	"fmt"
	"strings"

	"github.com/limaJavier/lilmiss/pkg/model"
)

// ANSI256 color codes
const (
	colorIncluded = 74  // blue
	colorExcluded = 245 // medium gray
	colorWarning  = 173 // orange
)

type Renderer struct {
	color bool
}

func NewRenderer(color bool) Renderer {
	return Renderer{color: color}
}

func (renderer Renderer) paint(code int, s string) string {
	if !renderer.color {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", code, s)
}

func (renderer Renderer) Status(status model.Status) string {
	if status == model.MustInclude {
		return renderer.paint(colorIncluded, status.String())
	}
	return renderer.paint(colorExcluded, status.String())
}

// Statuses renders statuses[x][y] as rows of 1's and 0's
func (renderer Renderer) Statuses(statuses [][]model.Status) string {
	if len(statuses) == 0 {
		return ""
	}
	rows := make([]string, len(statuses[0]))
	for y := range rows {
		var builder strings.Builder
		for x := range statuses {
			builder.WriteString(renderer.Status(statuses[x][y]))
		}
		rows[y] = builder.String()
	}
	return strings.Join(rows, "\n")
}

func (renderer Renderer) Violation(violation model.Violation) string {
	return renderer.paint(colorWarning, violation.String())
}
