package service

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/shift-timeslots/internal/domain"
	"github.com/diegoclair/shift-timeslots/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_timeslotService_CreateTemplate(t *testing.T) {
	mondayMorning := entity.SlotInput{DayOfWeek: domain.Monday, Time: "8:00am", Label: "Morning", SlotOrder: 0}

	tests := []struct {
		name      string
		input     entity.NewTemplate
		buildMock func(mocks allMocks, input entity.NewTemplate)
		wantErr   error
	}{
		{
			name: "Should create template with its slots",
			input: entity.NewTemplate{
				Name:      "  Standard  ",
				Slots:     []entity.SlotInput{mondayMorning, {DayOfWeek: domain.Friday, Time: "5:00pm", Label: "Evening", SlotOrder: 0}},
				CreatedBy: 7,
			},
			buildMock: func(mocks allMocks, input entity.NewTemplate) {
				mocks.mockTemplateRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, template *entity.Template) error {
						require.Equal(t, "Standard", template.Name)
						require.Equal(t, int64(7), template.CreatedBy)
						require.False(t, template.IsDefault)
						template.ID = 3
						return nil
					}).Times(1)

				mocks.mockTemplateRepo.EXPECT().
					CreateSlot(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, slot *entity.TemplateSlot) error {
						require.Equal(t, int64(3), slot.TemplateID)
						return nil
					}).Times(2)
			},
		},
		{
			name: "Should clear previous default when creating a default template",
			input: entity.NewTemplate{
				Name:      "Holiday",
				Slots:     []entity.SlotInput{mondayMorning},
				IsDefault: true,
			},
			buildMock: func(mocks allMocks, input entity.NewTemplate) {
				gomock.InOrder(
					mocks.mockTemplateRepo.EXPECT().ClearDefault(gomock.Any()).Return(nil).Times(1),
					mocks.mockTemplateRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1),
					mocks.mockTemplateRepo.EXPECT().CreateSlot(gomock.Any(), gomock.Any()).Return(nil).Times(1),
				)
			},
		},
		{
			name:    "Should reject blank name",
			input:   entity.NewTemplate{Name: "   ", Slots: []entity.SlotInput{mondayMorning}},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "Should reject empty slot list",
			input:   entity.NewTemplate{Name: "Empty"},
			wantErr: domain.ErrValidation,
		},
		{
			name: "Should reject day of week out of range",
			input: entity.NewTemplate{
				Name:  "Bad day",
				Slots: []entity.SlotInput{{DayOfWeek: 7, Time: "8:00am", Label: "Morning"}},
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "Should reject slot without label",
			input: entity.NewTemplate{
				Name:  "No label",
				Slots: []entity.SlotInput{{DayOfWeek: domain.Monday, Time: "8:00am"}},
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "Should return error when slot insert fails",
			input: entity.NewTemplate{
				Name:  "Broken",
				Slots: []entity.SlotInput{mondayMorning},
			},
			buildMock: func(mocks allMocks, input entity.NewTemplate) {
				mocks.mockTemplateRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				mocks.mockTemplateRepo.EXPECT().
					CreateSlot(gomock.Any(), gomock.Any()).
					Return(errors.New("disk I/O error")).Times(1)
			},
			wantErr: errors.New("failed to create template slot: disk I/O error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, svc, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(mocks, tt.input)
			}

			template, err := svc.CreateTemplate(context.Background(), tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, template)
				if errors.Is(err, tt.wantErr) {
					return
				}
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}

			require.NoError(t, err)
			require.NotNil(t, template)
			assert.Equal(t, tt.input.IsDefault, template.IsDefault)
		})
	}
}

func Test_timeslotService_SetDefaultTemplate(t *testing.T) {
	tests := []struct {
		name       string
		templateID int64
		buildMock  func(mocks allMocks, templateID int64)
		wantErr    error
	}{
		{
			name:       "Should move the default flag",
			templateID: 2,
			buildMock: func(mocks allMocks, templateID int64) {
				gomock.InOrder(
					mocks.mockTemplateRepo.EXPECT().GetByID(gomock.Any(), templateID).
						Return(&entity.Template{ID: templateID, Name: "Summer"}, nil).Times(1),
					mocks.mockTemplateRepo.EXPECT().ClearDefault(gomock.Any()).Return(nil).Times(1),
					mocks.mockTemplateRepo.EXPECT().SetDefault(gomock.Any(), templateID).Return(nil).Times(1),
				)
			},
		},
		{
			name:       "Should return not found for unknown template",
			templateID: 99,
			buildMock: func(mocks allMocks, templateID int64) {
				mocks.mockTemplateRepo.EXPECT().GetByID(gomock.Any(), templateID).Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, svc, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(mocks, tt.templateID)

			err := svc.SetDefaultTemplate(context.Background(), tt.templateID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_timeslotService_DeleteTemplate(t *testing.T) {
	tests := []struct {
		name       string
		templateID int64
		buildMock  func(mocks allMocks, templateID int64)
		wantErr    error
	}{
		{
			name:       "Should delete a non-default template",
			templateID: 4,
			buildMock: func(mocks allMocks, templateID int64) {
				mocks.mockTemplateRepo.EXPECT().GetByID(gomock.Any(), templateID).
					Return(&entity.Template{ID: templateID}, nil).Times(1)
				mocks.mockTemplateRepo.EXPECT().Delete(gomock.Any(), templateID).Return(nil).Times(1)
			},
		},
		{
			name:       "Should refuse to delete the default template",
			templateID: 1,
			buildMock: func(mocks allMocks, templateID int64) {
				mocks.mockTemplateRepo.EXPECT().GetByID(gomock.Any(), templateID).
					Return(&entity.Template{ID: templateID, IsDefault: true}, nil).Times(1)
			},
			wantErr: domain.ErrInvariantViolation,
		},
		{
			name:       "Should return not found for unknown template",
			templateID: 42,
			buildMock: func(mocks allMocks, templateID int64) {
				mocks.mockTemplateRepo.EXPECT().GetByID(gomock.Any(), templateID).Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, svc, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(mocks, tt.templateID)

			err := svc.DeleteTemplate(context.Background(), tt.templateID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_timeslotService_GetTemplateWithSlots(t *testing.T) {
	t.Run("Should group slots into all seven days", func(t *testing.T) {
		mocks, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		mocks.mockTemplateRepo.EXPECT().GetByID(gomock.Any(), int64(5)).
			Return(&entity.Template{ID: 5, Name: "Weekend"}, nil).Times(1)
		mocks.mockTemplateRepo.EXPECT().GetSlots(gomock.Any(), int64(5)).
			Return([]*entity.TemplateSlot{
				{ID: 1, TemplateID: 5, DayOfWeek: domain.Saturday, Time: "10:00am", Label: "Brunch", SlotOrder: 0},
				{ID: 2, TemplateID: 5, DayOfWeek: domain.Sunday, Time: "10:00am", Label: "Brunch", SlotOrder: 0},
			}, nil).Times(1)

		result, err := svc.GetTemplateWithSlots(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, "Weekend", result.Template.Name)
		assert.Len(t, result.Slots, 7)
		assert.Empty(t, result.Slots[domain.Monday])
		assert.Len(t, result.Slots[domain.Saturday], 1)
		assert.Len(t, result.Slots[domain.Sunday], 1)
	})

	t.Run("Should return not found for unknown template", func(t *testing.T) {
		mocks, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		mocks.mockTemplateRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, nil).Times(1)

		_, err := svc.GetTemplateWithSlots(context.Background(), 5)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
