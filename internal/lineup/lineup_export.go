package lineup

import (
	"bytes"

	"github.com/DhavalSuthar-24/musclemyths/pkg/export"
)

var exportHeader = []string{"Order", "Bib", "Name", "Gender", "Category"}

func exportRow(it ItemView) []any {
	bib, name, gender := "", "", ""
	if it.Athlete != nil {
		bib, name, gender = it.Athlete.BibNumber, it.Athlete.Name, it.Athlete.Gender
	}
	return []any{it.Order, bib, name, gender, it.Category}
}

// Workbook lays the lineup out as an "All" sheet followed by one sheet per
// category. With category set, only that category's sheet is written.
func Workbook(v *View, category string) (*bytes.Buffer, error) {
	var all [][]any
	byCategory := map[string][][]any{}
	var order []string
	for _, it := range v.Items {
		row := exportRow(it)
		all = append(all, row)
		if _, ok := byCategory[it.Category]; !ok {
			order = append(order, it.Category)
		}
		byCategory[it.Category] = append(byCategory[it.Category], row)
	}

	if category != "" {
		return export.Workbook([]export.Sheet{{Name: category, Header: exportHeader, Rows: byCategory[category]}})
	}
	sheets := []export.Sheet{{Name: "All", Header: exportHeader, Rows: all}}
	for _, c := range order {
		sheets = append(sheets, export.Sheet{Name: c, Header: exportHeader, Rows: byCategory[c]})
	}
	return export.Workbook(sheets)
}
