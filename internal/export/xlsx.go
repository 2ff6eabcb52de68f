package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/bizlens/bizlens/internal/domain"
	"github.com/bizlens/bizlens/internal/render"
)

const xlsxSheet = "Data"

// WriteXLSX writes a workbook with the chart's data in a Data sheet and a
// native spreadsheet chart anchored beside it.
func WriteXLSX(w io.Writer, c *render.Chart) error {
	f, err := buildWorkbook(c)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export xlsx: writing workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes the workbook to a file at path.
func SaveXLSX(path string, c *render.Chart) error {
	f, err := buildWorkbook(c)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export xlsx: saving workbook: %w", err)
	}
	return nil
}

func buildWorkbook(c *render.Chart) (*excelize.File, error) {
	if len(c.Series) == 0 {
		return nil, fmt.Errorf("export xlsx: chart has no series")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("export xlsx: naming sheet: %w", err)
	}

	if err := writeData(f, c); err != nil {
		f.Close()
		return nil, err
	}
	if err := addChart(f, c); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// writeData lays out labels in column A and one column per series.
func writeData(f *excelize.File, c *render.Chart) error {
	setCell := func(col, row int, value interface{}) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return fmt.Errorf("export xlsx: cell (%d,%d): %w", col, row, err)
		}
		if err := f.SetCellValue(xlsxSheet, cell, value); err != nil {
			return fmt.Errorf("export xlsx: setting %s: %w", cell, err)
		}
		return nil
	}

	if err := setCell(1, 1, c.XLabel); err != nil {
		return err
	}
	for i, s := range c.Series {
		if err := setCell(2+i, 1, s.Label); err != nil {
			return err
		}
	}
	for r, label := range c.Labels {
		if err := setCell(1, r+2, label); err != nil {
			return err
		}
		for i, s := range c.Series {
			if r >= len(s.Values) {
				continue
			}
			if err := setCell(2+i, r+2, s.Values[r]); err != nil {
				return err
			}
		}
	}
	return nil
}

func addChart(f *excelize.File, c *render.Chart) error {
	lastRow := len(c.Labels) + 1
	categories := fmt.Sprintf("%s!$A$2:$A$%d", xlsxSheet, lastRow)

	series := make([]excelize.ChartSeries, 0, len(c.Series))
	for i := range c.Series {
		col, err := excelize.ColumnNumberToName(2 + i)
		if err != nil {
			return fmt.Errorf("export xlsx: series column %d: %w", i, err)
		}
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", xlsxSheet, col),
			Categories: categories,
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", xlsxSheet, col, col, lastRow),
		})
	}

	varyColors := c.Type == domain.ChartPie
	spec := &excelize.Chart{
		Type:   xlsxChartType(c.Type),
		Series: series,
		Title:  []excelize.RichTextRun{{Text: c.Title}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: c.YLabel}}},
		Legend: excelize.ChartLegend{Position: "bottom"},
		Dimension: excelize.ChartDimension{
			Width:  640,
			Height: 360,
		},
		VaryColors: &varyColors,
	}

	anchor, err := excelize.CoordinatesToCellName(len(c.Series)+3, 2)
	if err != nil {
		return fmt.Errorf("export xlsx: chart anchor: %w", err)
	}
	if err := f.AddChart(xlsxSheet, anchor, spec); err != nil {
		return fmt.Errorf("export xlsx: adding chart: %w", err)
	}
	return nil
}

// xlsxChartType maps chart shapes onto spreadsheet chart types. Bars become
// clustered columns; a spreadsheet "bar" is horizontal.
func xlsxChartType(t domain.ChartType) excelize.ChartType {
	switch t {
	case domain.ChartBar:
		return excelize.Col
	case domain.ChartPie:
		return excelize.Pie
	case domain.ChartArea:
		return excelize.Area
	default:
		return excelize.Line
	}
}
