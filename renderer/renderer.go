// Package renderer turns engine results into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// RenderHolding renders the Holding view to a markdown string.
func RenderHolding(h *Holding) string {
	partials := map[string]string{
		"holding_title":     "holding_title.md",
		"holding_positions": "holding_positions.md",
		"holding_cash":      "holding_cash.md",
		"holding_flags":     "holding_flags.md",
	}
	return renderTemplate("holding", "holding.md", partials, h)
}

// RenderAllocation renders an Allocation view to a markdown string.
// The same template serves both symbol and sector breakdowns.
func RenderAllocation(a *Allocation) string {
	return renderTemplate("allocation", "allocation.md", nil, a)
}

// RenderPerformance renders the Performance view to a markdown string.
func RenderPerformance(p *Performance) string {
	return renderTemplate("performance", "performance.md", nil, p)
}

// RenderRisk renders the Risk view to a markdown string.
func RenderRisk(r *Risk) string {
	return renderTemplate("risk", "risk.md", nil, r)
}

// RenderOverlap renders the Overlap view to a markdown string.
func RenderOverlap(o *Overlap) string {
	return renderTemplate("overlap", "overlap.md", nil, o)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
