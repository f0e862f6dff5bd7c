package entity

import "time"

// Template is a reusable, week-agnostic set of slots that can be stamped onto any mutable week.
type Template struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedBy   int64     `json:"created_by"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
}

type TemplateSlot struct {
	ID         int64  `json:"id"`
	TemplateID int64  `json:"template_id"`
	DayOfWeek  int    `json:"day_of_week"`
	Time       string `json:"time"`
	Label      string `json:"label"`
	SlotOrder  int    `json:"slot_order"`
}

// TemplateSlotsByDay groups a template's slots by day of week (0=Monday .. 6=Sunday).
type TemplateSlotsByDay map[int][]*TemplateSlot

type TemplateWithSlots struct {
	Template *Template         `json:"template"`
	Slots    TemplateSlotsByDay `json:"slots_by_day"`
}

// NewTemplate is the input used to create a template together with its slots.
type NewTemplate struct {
	Name        string
	Description string
	Slots       []SlotInput
	CreatedBy   int64
	IsDefault   bool
}
