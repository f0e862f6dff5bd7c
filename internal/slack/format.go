// Package slack renders timeslot data as Slack mrkdwn text.
package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/domain"
	"github.com/diegoclair/shift-timeslots/internal/domain/entity"
)

// FormatWeek lists the slots of every day of the week, Monday first.
func FormatWeek(weekStart time.Time, week *entity.WeekTimeslots) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Week of %s*", domain.FormatDate(weekStart))
	if week.Config == nil {
		b.WriteString(" _(default schedule, not saved)_")
	} else {
		fmt.Fprintf(&b, " _(configuration #%d)_", week.Config.ID)
	}
	b.WriteString("\n")

	for day := domain.Monday; day <= domain.Sunday; day++ {
		slots := week.Slots[day]
		date := weekStart.AddDate(0, 0, day).Format("Jan 2")

		fmt.Fprintf(&b, "• *%s* %s: ", domain.WeekdayNames[day], date)
		if len(slots) == 0 {
			b.WriteString("no slots\n")
			continue
		}

		labels := make([]string, 0, len(slots))
		for _, slot := range slots {
			labels = append(labels, fmt.Sprintf("%s (%s)", slot.Time, slot.Label))
		}
		b.WriteString(strings.Join(labels, ", "))
		b.WriteString("\n")
	}

	return b.String()
}

func FormatTemplates(templates []*entity.Template) string {
	if len(templates) == 0 {
		return "No templates yet."
	}

	var b strings.Builder
	b.WriteString("*Templates:*\n")
	for _, t := range templates {
		fmt.Fprintf(&b, "%d. %s", t.ID, t.Name)
		if t.IsDefault {
			b.WriteString(" ⭐ default")
		}
		if t.Description != "" {
			fmt.Fprintf(&b, " - %s", t.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func FormatTemplate(t *entity.TemplateWithSlots) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s* (#%d)", t.Template.Name, t.Template.ID)
	if t.Template.IsDefault {
		b.WriteString(" ⭐ default")
	}
	b.WriteString("\n")

	for day := domain.Monday; day <= domain.Sunday; day++ {
		slots := t.Slots[day]
		if len(slots) == 0 {
			continue
		}

		labels := make([]string, 0, len(slots))
		for _, slot := range slots {
			labels = append(labels, fmt.Sprintf("%s (%s)", slot.Time, slot.Label))
		}
		fmt.Fprintf(&b, "• *%s*: %s\n", domain.WeekdayNames[day], strings.Join(labels, ", "))
	}

	return b.String()
}

func FormatConflicts(weekStart time.Time, report *entity.ConflictReport) string {
	if !report.HasConflicts {
		return fmt.Sprintf("No availability or assignments recorded for the week of %s.", domain.FormatDate(weekStart))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Week of %s has recorded activity:*\n", domain.FormatDate(weekStart))

	if len(report.Availability) > 0 {
		fmt.Fprintf(&b, "*Availability (%d):*\n", len(report.Availability))
		for _, a := range report.Availability {
			fmt.Fprintf(&b, "• %s - %s %s\n", a.UserName, a.Date, a.Time)
		}
	}

	if len(report.Assignments) > 0 {
		fmt.Fprintf(&b, "*Assignments (%d):*\n", len(report.Assignments))
		for _, a := range report.Assignments {
			fmt.Fprintf(&b, "• %s - %s %s\n", a.UserName, a.Date, a.Time)
		}
	}

	return b.String()
}
