package entity

import (
	"sort"
	"time"
)

// Configuration is the materialized schedule of exactly one calendar week.
type Configuration struct {
	ID        int64     `json:"id"`
	WeekStart time.Time `json:"week_start"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Timeslot is one slot of a configuration. ID and ConfigID are nil for slots
// that were never persisted (the legacy fallback schedule).
type Timeslot struct {
	ID        *int64 `json:"id"`
	ConfigID  *int64 `json:"config_id,omitempty"`
	DayOfWeek int    `json:"day_of_week"`
	Time      string `json:"time"`
	Label     string `json:"label"`
	SlotOrder int    `json:"slot_order"`
}

// SlotInput is the day/time/label/order shape every write path accepts.
type SlotInput struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	Time      string `json:"time" validate:"required"`
	Label     string `json:"label" validate:"required"`
	SlotOrder int    `json:"slot_order" validate:"min=0"`
}

// SlotsByDay always carries the seven keys 0..6, each ordered by SlotOrder.
type SlotsByDay map[int][]*Timeslot

func NewSlotsByDay() SlotsByDay {
	slots := make(SlotsByDay, 7)
	for day := 0; day < 7; day++ {
		slots[day] = []*Timeslot{}
	}
	return slots
}

// GroupTimeslots buckets slots by day and sorts each bucket by SlotOrder.
func GroupTimeslots(slots []*Timeslot) SlotsByDay {
	grouped := NewSlotsByDay()
	for _, slot := range slots {
		grouped[slot.DayOfWeek] = append(grouped[slot.DayOfWeek], slot)
	}
	for day := range grouped {
		sort.SliceStable(grouped[day], func(i, j int) bool {
			return grouped[day][i].SlotOrder < grouped[day][j].SlotOrder
		})
	}
	return grouped
}

// Flatten turns the grouped slots back into inputs, Monday first.
func (s SlotsByDay) Flatten() []SlotInput {
	var inputs []SlotInput
	for day := 0; day < 7; day++ {
		for _, slot := range s[day] {
			inputs = append(inputs, SlotInput{
				DayOfWeek: slot.DayOfWeek,
				Time:      slot.Time,
				Label:     slot.Label,
				SlotOrder: slot.SlotOrder,
			})
		}
	}
	return inputs
}

// WeekTimeslots is what a week resolves to. Config is nil when the slots are
// the non-persisted fallback.
type WeekTimeslots struct {
	Config *Configuration `json:"config"`
	Slots  SlotsByDay     `json:"slots_by_day"`
}
