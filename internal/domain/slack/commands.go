package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdShow           CommandType = "show"
	CmdTemplates      CommandType = "templates"
	CmdTemplate       CommandType = "template"
	CmdDefault        CommandType = "default"
	CmdDeleteTemplate CommandType = "delete-template"
	CmdApply          CommandType = "apply"
	CmdCopy           CommandType = "copy"
	CmdConflicts      CommandType = "conflicts"
	CmdHelp           CommandType = "help"
)

// minArgs is the number of positional arguments each command needs
var minArgs = map[CommandType]int{
	CmdTemplate:       1,
	CmdDefault:        1,
	CmdDeleteTemplate: 1,
	CmdApply:          2,
	CmdCopy:           2,
	CmdConflicts:      1,
}

type Command struct {
	Type  CommandType
	Args  []string
	Force bool
	Raw   string
}

// ParseCommand splits the text of a /timeslots invocation. A trailing
// "force" (or "--force") is lifted into Force and not kept in Args.
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "show", "week":
		cmd.Type = CmdShow
	case "templates", "ls":
		cmd.Type = CmdTemplates
	case "template":
		cmd.Type = CmdTemplate
	case "default":
		cmd.Type = CmdDefault
	case "delete-template", "rm":
		cmd.Type = CmdDeleteTemplate
	case "apply":
		cmd.Type = CmdApply
	case "copy":
		cmd.Type = CmdCopy
	case "conflicts":
		cmd.Type = CmdConflicts
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	for _, arg := range parts[1:] {
		if arg == "force" || arg == "--force" {
			cmd.Force = true
			continue
		}
		cmd.Args = append(cmd.Args, arg)
	}

	if need := minArgs[cmd.Type]; len(cmd.Args) < need {
		return nil, fmt.Errorf("`%s` needs %d argument(s), see `/timeslots help`", cmd.Type, need)
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Weeks:*
• ` + "`/timeslots show [YYYY-MM-DD]`" + ` - Show the slots of the week containing the date (default: this week)
• ` + "`/timeslots apply YYYY-MM-DD TEMPLATE_ID [force]`" + ` - Apply a template to a week
• ` + "`/timeslots copy TARGET_DATE SOURCE_DATE [force]`" + ` - Copy the slots of one week onto another
• ` + "`/timeslots conflicts YYYY-MM-DD`" + ` - List availability and assignments recorded for a week

*Templates:*
• ` + "`/timeslots templates`" + ` - List templates, default first
• ` + "`/timeslots template ID`" + ` - Show a template by day
• ` + "`/timeslots default ID`" + ` - Make a template the default
• ` + "`/timeslots delete-template ID`" + ` - Delete a template (not the default)

Weeks that already have availability or assignments are not overwritten unless ` + "`force`" + ` is given.
Past weeks are read-only.`
}
