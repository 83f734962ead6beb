package service

import (
	"context"
	"errors"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
)

var (
	ErrInvalidActivity = errors.New("invalid activity")
	ErrUnknownKind     = errors.New("unknown activity kind")
)

// Kind names one family of field log.
type Kind string

const (
	Irrigation  Kind = "irrigation"
	Fertilizer  Kind = "fertilizer"
	Harvest     Kind = "harvest"
	PestDisease Kind = "pest-disease"
)

type ActivityService interface {
	LogIrrigation(ctx context.Context, l *entities.IrrigationLog) (*entities.IrrigationLog, error)
	LogFertilizer(ctx context.Context, l *entities.FertilizerLog) (*entities.FertilizerLog, error)
	LogHarvest(ctx context.Context, l *entities.HarvestLog) (*entities.HarvestLog, error)
	LogPestDisease(ctx context.Context, l *entities.PestDiseaseLog) (*entities.PestDiseaseLog, error)

	// Recent lists the logs of one kind from the last days days.
	Recent(ctx context.Context, uid string, kind Kind, days int) (any, error)
}
