package service

import (
	"github.com/diegoclair/shift-timeslots/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Timeslot contract.TimeslotService
}

func NewInstance(dm contract.DataManager, log *zap.Logger) *Instance {
	return &Instance{
		Timeslot: newTimeslot(dm, log),
	}
}
