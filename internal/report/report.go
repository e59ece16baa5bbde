// Package report renders the session history as a spreadsheet.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/mathcards/internal/i18n"
	"github.com/abhisek/mathcards/internal/stats"
)

// Sheet names.
const (
	SessionsSheet = "Sessions"
	SummarySheet  = "Summary"
)

// WriteWorkbook writes an xlsx workbook with one row per session and a
// summary sheet, labelled in the language of t.
func WriteWorkbook(w io.Writer, sessions []stats.Record, t *i18n.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), SessionsSheet)
	f.NewSheet(SummarySheet)

	if err := writeSessions(f, sessions, t); err != nil {
		return err
	}
	if err := writeSummary(f, stats.Aggregate(sessions), t); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSessions(f *excelize.File, sessions []stats.Record, t *i18n.Table) error {
	header := []any{
		"ID",
		"Timestamp",
		t.Settings.ModeLabel,
		t.Settings.DifficultyLabel,
		t.Settings.CountLabel,
		t.Summary.CardCorrect,
		t.Summary.CardWrong,
		t.Summary.CardScore + " (%)",
		t.Summary.CardDuration + " (s)",
	}
	if err := setRow(f, SessionsSheet, 1, header); err != nil {
		return err
	}

	for i, s := range sessions {
		row := []any{
			s.ID,
			s.Timestamp,
			modeLabel(t, s),
			difficulty(s),
			s.Total,
			s.Correct,
			s.Wrong,
			numberCell(s.Percentage, 1),
			numberCell(s.DurationMs, 1000),
		}
		if err := setRow(f, SessionsSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, sum stats.Summary, t *i18n.Table) error {
	lines := []string{
		t.Summary.StatsTitle,
		fmt.Sprintf(t.Summary.TotalSessions, sum.TotalSessions),
		fmt.Sprintf(t.Summary.BestScore, i18n.Score(sum.BestScore)),
		fmt.Sprintf(t.Summary.AverageScore, fmt.Sprint(sum.AverageScore)),
		i18n.Optional(t.Summary.AverageDuration, stats.FormatOptional(sum.AverageDurationSeconds, t.Duration)),
		i18n.Optional(t.Summary.BestDuration, stats.FormatOptional(sum.BestDurationSeconds, t.Duration)),
		i18n.Optional(t.Summary.LastDuration, stats.FormatOptional(sum.LastDurationSeconds, t.Duration)),
	}

	row := 1
	for _, l := range lines {
		if l == "" {
			continue
		}
		if err := setRow(f, SummarySheet, row, []any{l}); err != nil {
			return err
		}
		row++
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if v == nil {
			continue
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

// numberCell returns n divided by scale and rounded, or nil for an empty
// cell.
func numberCell(n stats.Number, scale float64) any {
	v, ok := n.Value()
	if !ok {
		return nil
	}
	if scale == 1 {
		return v
	}
	scaled, _ := stats.NewNumber(v / scale).Int()
	return scaled
}

func modeLabel(t *i18n.Table, s stats.Record) string {
	if l, ok := t.Settings.ModeOptions[s.Settings.Mode]; ok {
		return l
	}
	return string(s.Settings.Mode)
}

func difficulty(s stats.Record) any {
	if s.Settings.Difficulty == 0 {
		return nil
	}
	return s.Settings.Difficulty
}
