package domain

import "github.com/diegoclair/shift-timeslots/internal/domain/entity"

// Day of week indexes as stored in template_slots and timeslots (Monday = 0)
const (
	Monday    = 0
	Tuesday   = 1
	Wednesday = 2
	Thursday  = 3
	Friday    = 4
	Saturday  = 5
	Sunday    = 6
)

// WeekdayNames maps day indexes to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// DateLayout is the storage and command format of calendar dates
const DateLayout = "2006-01-02"

// legacySlots is the fixed 4-slot day used before configurable timeslots existed
var legacySlots = []struct {
	time  string
	label string
}{
	{"8:00am", "Morning"},
	{"12:30pm", "Afternoon"},
	{"5:00pm", "Evening"},
	{"9:30pm", "Night"},
}

// LegacySchedule returns the fallback schedule: the same four slots on every
// day, none of them persisted. A fresh value is built on every call.
func LegacySchedule() entity.SlotsByDay {
	slots := entity.NewSlotsByDay()
	for day := Monday; day <= Sunday; day++ {
		for order, legacy := range legacySlots {
			slots[day] = append(slots[day], &entity.Timeslot{
				DayOfWeek: day,
				Time:      legacy.time,
				Label:     legacy.label,
				SlotOrder: order,
			})
		}
	}
	return slots
}
