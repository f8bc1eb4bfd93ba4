package export

import (
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/forcelab/internal/experiment"
	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// SaveXLSX writes a Summary sheet listing every report's constants and
// diagnostics, then one sheet per report with its samples and a scatter
// chart of them.
func SaveXLSX(path string, reports []*experiment.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if err := writeSummary(f, reports); err != nil {
		return err
	}

	used := map[string]int{summarySheet: 1}
	for _, r := range reports {
		if err := writeSeriesSheet(f, sheetName(r.Curve, used), r); err != nil {
			return fmt.Errorf("%s: %w", r.Curve, err)
		}
	}

	return f.SaveAs(path)
}

// setRow writes values from column A. Non-finite floats are written as
// text, which is the only form a workbook can hold them in.
func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	for i, v := range values {
		if x, ok := v.(float64); ok && (math.IsNaN(x) || math.IsInf(x, 0)) {
			values[i] = strconv.FormatFloat(x, 'g', -1, 64)
		}
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeSummary(f *excelize.File, reports []*experiment.Result) error {
	row := 1
	if err := setRow(f, summarySheet, row, "Curve", "Kind", "Name", "Value", "Unit"); err != nil {
		return err
	}
	row++

	for _, r := range reports {
		for _, name := range sortedKeys(r.Params) {
			if err := setRow(f, summarySheet, row, r.Curve, "param", name, r.Params[name], ""); err != nil {
				return err
			}
			row++
		}
		for _, d := range r.Diagnostics {
			if err := setRow(f, summarySheet, row, r.Curve, "diagnostic", d.Name, d.Value, d.Unit); err != nil {
				return err
			}
			row++
		}
		stats := []struct {
			name  string
			value float64
		}{
			{"min", r.Summary.Min},
			{"min_at", r.Summary.MinAt},
			{"max", r.Summary.Max},
			{"max_at", r.Summary.MaxAt},
			{"mean", r.Summary.Mean},
		}
		for _, st := range stats {
			if err := setRow(f, summarySheet, row, r.Curve, "summary", st.name, st.value, ""); err != nil {
				return err
			}
			row++
		}
		for i, x := range r.Summary.Crossings {
			if err := setRow(f, summarySheet, row, r.Curve, "summary", fmt.Sprintf("zero_crossing_%d", i+1), x, ""); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

// sheetName truncates to Excel's 31 character limit and suffixes repeats
// until the name is unused.
func sheetName(curve string, used map[string]int) string {
	base := curve
	if len(base) > 28 {
		base = base[:28]
	}
	name := base
	for n := 2; used[name] > 0; n++ {
		name = fmt.Sprintf("%s_%d", base, n)
	}
	used[name]++
	return name
}

func writeSeriesSheet(f *excelize.File, sheet string, r *experiment.Result) error {
	s := r.Series
	if err := s.Validate(); err != nil {
		return err
	}

	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := setRow(f, sheet, 1, s.Chart.XLabel, s.Chart.YLabel); err != nil {
		return err
	}
	for i := range s.X {
		if err := setRow(f, sheet, i+2, s.X[i], s.Y[i]); err != nil {
			return err
		}
	}

	last := s.Len() + 1
	return f.AddChart(sheet, "D2", &excelize.Chart{
		Type: excelize.Scatter,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$1", sheet),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, last),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", sheet, last),
		}},
		Title: []excelize.RichTextRun{{Text: s.Chart.Title}},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: s.Chart.XLabel}}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: s.Chart.YLabel}}},
	})
}
