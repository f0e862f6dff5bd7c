package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/domain/contract"
	"github.com/diegoclair/shift-timeslots/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// testNow is a Wednesday; its week starts on 2025-03-10.
var testNow = time.Date(2025, time.March, 12, 10, 30, 0, 0, time.Local)

var (
	pastWeek    = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.Local)
	currentWeek = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	nextWeek    = time.Date(2025, time.March, 17, 0, 0, 0, 0, time.Local)
)

type allMocks struct {
	mockDataManager       *mocks.MockDataManager
	mockTemplateRepo      *mocks.MockTemplateRepo
	mockConfigurationRepo *mocks.MockConfigurationRepo
	mockShiftRepo         *mocks.MockShiftRepo
}

func newServiceTestMock(t *testing.T) (m allMocks, svc *timeslotService, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	templateRepo := mocks.NewMockTemplateRepo(ctrl)
	dm.EXPECT().Template().Return(templateRepo).AnyTimes()

	configurationRepo := mocks.NewMockConfigurationRepo(ctrl)
	dm.EXPECT().Configuration().Return(configurationRepo).AnyTimes()

	shiftRepo := mocks.NewMockShiftRepo(ctrl)
	dm.EXPECT().Shift().Return(shiftRepo).AnyTimes()

	// transactions run inline against the same mocked repositories
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:       dm,
		mockTemplateRepo:      templateRepo,
		mockConfigurationRepo: configurationRepo,
		mockShiftRepo:         shiftRepo,
	}

	// validate service creation
	svc = newTimeslot(dm, zap.NewNop())
	require.NotNil(t, svc)
	svc.now = func() time.Time { return testNow }

	return
}
