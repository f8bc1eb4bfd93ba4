package viz

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/forcelab/internal/experiment"
	"github.com/san-kum/forcelab/internal/force"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func RenderParams(params map[string]float64) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		fmt.Fprintf(&sb, "  %s %s\n", MetricLabel.Render(fmt.Sprintf("%-16s", name)), MetricValue.Render(formatFloat(params[name])))
	}
	return sb.String()
}

func RenderDiagnostics(diags []force.Diagnostic) string {
	var sb strings.Builder
	for _, d := range diags {
		value := fmt.Sprintf("%.2f", d.Value)
		if d.Unit == "" {
			value = formatFloat(d.Value)
		} else {
			value += " " + d.Unit
		}
		fmt.Fprintf(&sb, "  %s %s\n", MetricLabel.Render(fmt.Sprintf("%-18s", d.Name)), MetricValue.Render(value))
	}
	return sb.String()
}

func RenderSummary(sum force.Summary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  %s %s at %s\n", MetricLabel.Render(fmt.Sprintf("%-18s", "min")), MetricValue.Render(fmt.Sprintf("%.2f N", sum.Min)), formatFloat(sum.MinAt))
	fmt.Fprintf(&sb, "  %s %s at %s\n", MetricLabel.Render(fmt.Sprintf("%-18s", "max")), MetricValue.Render(fmt.Sprintf("%.2f N", sum.Max)), formatFloat(sum.MaxAt))
	fmt.Fprintf(&sb, "  %s %s\n", MetricLabel.Render(fmt.Sprintf("%-18s", "mean")), MetricValue.Render(fmt.Sprintf("%.2f N", sum.Mean)))
	for _, x := range sum.Crossings {
		fmt.Fprintf(&sb, "  %s %s\n", MetricLabel.Render(fmt.Sprintf("%-18s", "F = 0 at")), MetricValue.Render(formatFloat(x)))
	}
	return sb.String()
}

func RenderResult(r *experiment.Result, opts PlotOptions) string {
	var sb strings.Builder
	sb.WriteString(Title.Render(r.Curve) + "\n")
	if len(r.Params) > 0 {
		sb.WriteString(Subtle.Render("constants") + "\n")
		sb.WriteString(RenderParams(r.Params))
	}
	if len(r.Diagnostics) > 0 {
		sb.WriteString(Subtle.Render("diagnostics") + "\n")
		sb.WriteString(RenderDiagnostics(r.Diagnostics))
	}
	if r.Series != nil && r.Series.Len() > 0 {
		sb.WriteString(Subtle.Render("summary") + "\n")
		sb.WriteString(RenderSummary(r.Summary))
	}
	for _, w := range r.Warnings {
		sb.WriteString(Warning.Render("warning: "+w) + "\n")
	}
	if r.Series != nil {
		sb.WriteString("\n" + Plot(r.Series, opts) + "\n")
	}
	return sb.String()
}
