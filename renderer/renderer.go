// Package renderer turns fincalc results into markdown reports.
//
// Each report is a plain struct assembled from the calculation results,
// rendered through an embedded text/template. Numbers are carried with the
// exact types (Money, Percent) so the templates reuse their renderers.
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

// NPVMarkdown renders the NPV analysis report to a markdown string.
func NPVMarkdown(r *NPVReport) string {
	partials := map[string]string{
		"cashflow_table": "cashflow_table.md",
	}
	return renderTemplate("npv", "npv.md", partials, r)
}

// DCFMarkdown renders the DCF valuation report to a markdown string.
func DCFMarkdown(r *DCFReport) string {
	partials := map[string]string{
		"cashflow_table": "cashflow_table.md",
	}
	return renderTemplate("dcf", "dcf.md", partials, r)
}

// BondMarkdown renders the bond pricing report to a markdown string.
func BondMarkdown(r *BondReport) string {
	return renderTemplate("bond", "bond.md", nil, r)
}

// YTMMarkdown renders the yield to maturity report to a markdown string.
func YTMMarkdown(r *YTMReport) string {
	return renderTemplate("ytm", "ytm.md", nil, r)
}

// ProjectionMarkdown renders the cash flow projection report to a markdown string.
func ProjectionMarkdown(r *ProjectionReport) string {
	return renderTemplate("projection", "projection.md", nil, r)
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
