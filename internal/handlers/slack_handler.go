package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/domain"
	"github.com/diegoclair/shift-timeslots/internal/domain/contract"
	slackcmd "github.com/diegoclair/shift-timeslots/internal/domain/slack"
	slackmsg "github.com/diegoclair/shift-timeslots/internal/slack"
	"github.com/goccy/go-json"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	timeslotService contract.TimeslotService
	signingSecret   string
	adminUserID     int64
	log             *zap.Logger
	now             func() time.Time
}

// New builds the /timeslots slash command handler. Writes are recorded as
// made by adminUserID.
func New(timeslotService contract.TimeslotService, signingSecret string, adminUserID int64, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		timeslotService: timeslotService,
		signingSecret:   signingSecret,
		adminUserID:     adminUserID,
		log:             log,
		now:             time.Now,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		loggerFrom(r.Context(), h.log).Warn("rejected slack request with bad signature")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	loggerFrom(r.Context(), h.log).Info("slash command",
		zap.String("command", string(cmd.Type)),
		zap.String("slack_user", s.UserID),
		zap.Bool("force", cmd.Force),
	)

	h.respond(w, h.handleCommand(r.Context(), cmd))
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdShow:
		return h.handleShow(ctx, cmd)
	case slackcmd.CmdTemplates:
		return h.handleTemplates(ctx)
	case slackcmd.CmdTemplate:
		return h.handleTemplate(ctx, cmd)
	case slackcmd.CmdDefault:
		return h.handleDefault(ctx, cmd)
	case slackcmd.CmdDeleteTemplate:
		return h.handleDeleteTemplate(ctx, cmd)
	case slackcmd.CmdApply:
		return h.handleApply(ctx, cmd)
	case slackcmd.CmdCopy:
		return h.handleCopy(ctx, cmd)
	case slackcmd.CmdConflicts:
		return h.handleConflicts(ctx, cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse(http.StatusBadRequest, "Command not recognized")
	}
}

func (h *SlackHandler) handleShow(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	weekStart := domain.WeekStartOf(h.now())
	if len(cmd.Args) > 0 {
		var err error
		if weekStart, err = domain.ParseWeek(cmd.Args[0]); err != nil {
			return h.errorResponse(ctx, err)
		}
	}

	week, err := h.timeslotService.GetTimeslotsForWeek(ctx, weekStart)
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackmsg.FormatWeek(weekStart, week),
	}
}

func (h *SlackHandler) handleTemplates(ctx context.Context) *slack.Msg {
	templates, err := h.timeslotService.GetAllTemplates(ctx)
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackmsg.FormatTemplates(templates),
	}
}

func (h *SlackHandler) handleTemplate(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	templateID, err := parseID(cmd.Args[0])
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	template, err := h.timeslotService.GetTemplateWithSlots(ctx, templateID)
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackmsg.FormatTemplate(template),
	}
}

func (h *SlackHandler) handleDefault(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	templateID, err := parseID(cmd.Args[0])
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	if err := h.timeslotService.SetDefaultTemplate(ctx, templateID); err != nil {
		return h.errorResponse(ctx, err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Template #%d is now the default. Upcoming unconfigured weeks will use it.", templateID),
	}
}

func (h *SlackHandler) handleDeleteTemplate(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	templateID, err := parseID(cmd.Args[0])
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	if err := h.timeslotService.DeleteTemplate(ctx, templateID); err != nil {
		return h.errorResponse(ctx, err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Template #%d deleted.", templateID),
	}
}

func (h *SlackHandler) handleApply(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	weekStart, err := domain.ParseWeek(cmd.Args[0])
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	templateID, err := parseID(cmd.Args[1])
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	if msg := h.conflictGate(ctx, weekStart, cmd.Force); msg != nil {
		return msg
	}

	week, err := h.timeslotService.ApplyTemplate(ctx, weekStart, templateID, h.adminUserID)
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Template #%d applied.\n%s", templateID, slackmsg.FormatWeek(weekStart, week)),
	}
}

func (h *SlackHandler) handleCopy(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	target, err := domain.ParseWeek(cmd.Args[0])
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	source, err := domain.ParseWeek(cmd.Args[1])
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	if msg := h.conflictGate(ctx, target, cmd.Force); msg != nil {
		return msg
	}

	week, err := h.timeslotService.CopyFromPreviousWeek(ctx, target, source, h.adminUserID)
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("✅ Copied week of %s.\n%s",
			domain.FormatDate(source), slackmsg.FormatWeek(target, week)),
	}
}

// conflictGate returns a warning when the week already has availability or
// assignments and the caller did not force the write. A nil message lets the
// write go ahead.
func (h *SlackHandler) conflictGate(ctx context.Context, weekStart time.Time, force bool) *slack.Msg {
	if force {
		return nil
	}

	report, err := h.timeslotService.CheckForConflicts(ctx, weekStart)
	if err != nil {
		return h.errorResponse(ctx, err)
	}
	if !report.HasConflicts {
		return nil
	}

	return h.createErrorResponse(http.StatusConflict,
		slackmsg.FormatConflicts(weekStart, report)+"Repeat the command with `force` to overwrite anyway.")
}

func (h *SlackHandler) handleConflicts(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	weekStart, err := domain.ParseWeek(cmd.Args[0])
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	report, err := h.timeslotService.CheckForConflicts(ctx, weekStart)
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackmsg.FormatConflicts(weekStart, report),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) errorResponse(ctx context.Context, err error) *slack.Msg {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		loggerFrom(ctx, h.log).Error("slash command failed", zap.Error(err))
	}
	return h.createErrorResponse(status, publicMessage(err, status))
}

func (h *SlackHandler) createErrorResponse(status int, message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %d %s: %s", status, http.StatusText(status), message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		h.log.Error("failed to encode slack response", zap.Error(err))
	}
}

func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("invalid id %q", value)
	}
	return id, nil
}
