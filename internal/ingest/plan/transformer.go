package plan

import (
	"strings"

	"github.com/TagorPetrosian/my-weigh/internal/models"
)

// DefaultSessionColumns is the fixed set of session column labels, in session
// order. The coach's template allows up to seven sessions per week; sheets
// that use fewer simply never populate the trailing columns.
var DefaultSessionColumns = []string{
	"אימון 1",
	"אימון 2",
	"אימון 3",
	"אימון 4",
	"אימון 5",
	"אימון 6",
	"אימון 7",
}

// Transform walks one sheet's rows and assembles its week. Each session column
// is walked independently: a title cell opens a new exercise, set cells append
// to the most recently opened one. Anomalies degrade silently — a set with no
// preceding title in its column is dropped, a column that yields no exercises
// produces no session. The week itself is always produced, sessions or not.
func Transform(rows []models.Row, sheetName string, columns []string) models.Week {
	week := models.Week{
		WeekDate: sheetName,
		Sessions: []models.Session{},
	}

	for _, col := range columns {
		if !columnPresent(rows, col) {
			continue
		}

		exercises := []models.Exercise{}
		current := -1 // index of the exercise sets accumulate into

		for _, row := range rows {
			cell, ok := row[col]
			if !ok {
				continue
			}
			text := strings.TrimSpace(cell)

			switch Classify(text) {
			case KindTitle:
				exercises = append(exercises, models.Exercise{Title: text, Sets: []string{}})
				current = len(exercises) - 1
			case KindSetSpec:
				if current < 0 {
					continue // orphan set before any title
				}
				exercises[current].Sets = append(exercises[current].Sets, text)
			}
		}

		if len(exercises) > 0 {
			week.Sessions = append(week.Sessions, models.Session{
				SessionNumber: col,
				Exercises:     exercises,
			})
		}
	}

	return week
}

// BuildProgram transforms every sheet into its week, preserving sheet order.
func BuildProgram(sheets []models.Sheet, columns []string) models.Program {
	program := models.Program{Weeks: []models.Week{}}
	for _, sheet := range sheets {
		program.Weeks = append(program.Weeks, Transform(sheet.Rows, sheet.Name, columns))
	}
	return program
}

// columnPresent reports whether any row has the column at all. Sheets that
// don't use the maximal session count leave trailing columns entirely absent.
func columnPresent(rows []models.Row, col string) bool {
	for _, row := range rows {
		if _, ok := row[col]; ok {
			return true
		}
	}
	return false
}
