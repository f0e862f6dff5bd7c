package entity

// AvailabilityConflict and AssignmentConflict reference a slot by (date, time)
// only. They are lookup keys into the scheduling side, never foreign keys to a
// Timeslot row, so a renamed or removed slot leaves them orphaned.
type AvailabilityConflict struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

type AssignmentConflict struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

type ConflictReport struct {
	HasConflicts bool                    `json:"has_conflicts"`
	Availability []*AvailabilityConflict `json:"availability"`
	Assignments  []*AssignmentConflict   `json:"assignments"`
}
