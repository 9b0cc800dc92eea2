package models

// Program is the final conversion artifact: one entry per input sheet, in sheet
// order. The JSON field names below are the persisted contract consumed by
// downstream tooling and must not change.
type Program struct {
	Weeks []Week `json:"weeks"`
}

// Week holds the sessions parsed from a single sheet. WeekDate is the sheet
// name verbatim (the coach names sheets by week start date).
type Week struct {
	WeekDate string    `json:"week_date"`
	Sessions []Session `json:"sessions"`
}

// Session holds the exercises parsed from one session column of a sheet.
// SessionNumber is the column label verbatim.
type Session struct {
	SessionNumber string     `json:"session_number"`
	Exercises     []Exercise `json:"exercises"`
}

// Exercise is a titled exercise and its prescribed sets. Each set is the
// trimmed cell text (e.g. "80%x5") — set strings are not parsed further.
type Exercise struct {
	Title string   `json:"title"`
	Sets  []string `json:"sets"`
}
