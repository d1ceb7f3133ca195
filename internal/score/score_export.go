package score

import (
	"bytes"
	"context"
	"fmt"

	"github.com/DhavalSuthar-24/musclemyths/internal/event"
	"github.com/DhavalSuthar-24/musclemyths/pkg/export"
)

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return ""
}

// judgeHeaders names judge columns after the event panel where it is known.
func judgeHeaders(judges []event.Judge, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Judge %d", i+1)
		if i < len(judges) && judges[i].Name != "" {
			out[i] += " (" + judges[i].Name + ")"
		}
	}
	return out
}

func standingsSheet(category string, rows []Standing, judges []event.Judge) export.Sheet {
	width := 0
	for _, r := range rows {
		width = max(width, len(r.JudgeScores))
	}
	header := append([]string{"Rank", "Bib", "Name"}, judgeHeaders(judges, width)...)
	header = append(header, "Total", "Champion", "Retired", "Tied")

	sheet := export.Sheet{Name: category, Header: header}
	for _, r := range rows {
		row := make([]any, 0, len(header))
		if r.Rank > 0 {
			row = append(row, r.Rank)
		} else {
			row = append(row, "")
		}
		if r.Athlete != nil {
			row = append(row, r.Athlete.BibNumber, r.Athlete.Name)
		} else {
			row = append(row, "", "")
		}
		for i := 0; i < width; i++ {
			if i < len(r.JudgeScores) {
				row = append(row, r.JudgeScores[i])
			} else {
				row = append(row, "")
			}
		}
		row = append(row, r.TotalScore, yesNo(r.IsChampion), yesNo(r.IsRetired), yesNo(r.IsTied))
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}

// Export writes the event's standings with one sheet per category.
func (s *ScoreService) Export(ctx context.Context, eventID uint, category string) (*bytes.Buffer, error) {
	ev, err := s.loadEvent(eventID)
	if err != nil {
		return nil, err
	}
	standings, err := s.Standings(ctx, eventID, category)
	if err != nil {
		return nil, err
	}

	var order []string
	byCategory := map[string][]Standing{}
	for _, st := range standings {
		if _, ok := byCategory[st.Category]; !ok {
			order = append(order, st.Category)
		}
		byCategory[st.Category] = append(byCategory[st.Category], st)
	}

	var sheets []export.Sheet
	for _, c := range order {
		sheets = append(sheets, standingsSheet(c, byCategory[c], ev.Judges))
	}
	if len(sheets) == 0 {
		sheets = append(sheets, standingsSheet("Scores", nil, ev.Judges))
	}
	return export.Workbook(sheets)
}
