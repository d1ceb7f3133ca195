// Package export writes tabular reports as .xlsx workbooks.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet is one worksheet: a header row followed by data rows.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}

// maxSheetName is Excel's worksheet name limit.
const maxSheetName = 31

var sheetNameReplacer = strings.NewReplacer(
	":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")",
)

// SheetName makes s usable as a worksheet name and unique among used.
func SheetName(s string, used map[string]bool) string {
	name := strings.TrimSpace(sheetNameReplacer.Replace(s))
	if name == "" {
		name = "Sheet"
	}
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	base := name
	for i := 2; used[strings.ToLower(name)]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		r := []rune(base)
		if len(r)+len(suffix) > maxSheetName {
			r = r[:maxSheetName-len(suffix)]
		}
		name = string(r) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

// Workbook renders sheets in order. The default sheet is replaced by the
// first one given.
func Workbook(sheets []Sheet) (*bytes.Buffer, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("export: no sheets")
	}
	f := excelize.NewFile()
	defer f.Close()

	used := map[string]bool{}
	for i, s := range sheets {
		name := SheetName(s.Name, used)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return nil, fmt.Errorf("export: rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("export: new sheet %q: %w", name, err)
		}
		if err := writeRows(f, name, s); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return &buf, nil
}

func writeRows(f *excelize.File, sheet string, s Sheet) error {
	header := make([]any, len(s.Header))
	for i, h := range s.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("export: header of %q: %w", sheet, err)
	}
	for idx, row := range s.Rows {
		axis, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return err
		}
		cells := row
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			return fmt.Errorf("export: row %d of %q: %w", idx+1, sheet, err)
		}
	}
	if len(s.Header) > 0 {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("export: freeze header of %q: %w", sheet, err)
		}
	}
	return nil
}

// Send writes the workbook as a download named filename.
func Send(c *gin.Context, filename string, buf *bytes.Buffer) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, ContentType, buf.Bytes())
}
