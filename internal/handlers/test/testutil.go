package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/config"
	"github.com/diegoclair/shift-timeslots/internal/handlers"
	"github.com/diegoclair/shift-timeslots/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	SigningSecret = "test-signing-secret"
	AdminUserID   = int64(1)
)

type ServiceMocks struct {
	TimeslotServiceMock *mocks.MockTimeslotService
}

// GetHandlerTest returns the full router (Slack endpoint and JSON API) backed
// by a mocked timeslot service.
func GetHandlerTest(t *testing.T) (m ServiceMocks, router http.Handler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		TimeslotServiceMock: mocks.NewMockTimeslotService(ctrl),
	}

	log := zap.NewNop()
	slackHandler := handlers.New(m.TimeslotServiceMock, SigningSecret, AdminUserID, log)
	api := handlers.NewAPI(m.TimeslotServiceMock, AdminUserID, log)
	router = handlers.NewRouter(slackHandler, api, config.HTTPConfig{MaxRequests: 1000, APIEnabled: true}, log)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, text, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {"C123456789"},
		"channel_name": {"scheduling"},
		"user_id":      {"U987654321"},
		"user_name":    {"test-user"},
		"command":      {"/timeslots"},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	// Set content type
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
