package serviceImp

import (
	"context"
	"fmt"
	"time"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	repo "github.com/baobabstack-code/farm-management-system-sub000/pkg/activity/repository"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/activity/service"
)

type activitySvc struct {
	r   repo.ActivityRepository
	now func() time.Time
}

func NewActivityService(r repo.ActivityRepository) service.ActivityService {
	return &activitySvc{r: r, now: func() time.Time { return time.Now().UTC() }}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{service.ErrInvalidActivity}, args...)...)
}

// stamp checks the owner and stores the log time in UTC, defaulting to now.
func (s *activitySvc) stamp(uid string, t *time.Time) error {
	if uid == "" {
		return invalid("owner is required")
	}
	if t.IsZero() {
		*t = s.now().Truncate(time.Second)
	}
	*t = t.UTC()
	return nil
}

func (s *activitySvc) LogIrrigation(ctx context.Context, l *entities.IrrigationLog) (*entities.IrrigationLog, error) {
	if err := s.stamp(l.UserID, &l.Date); err != nil {
		return nil, err
	}
	if l.Duration < 0 || l.WaterAmount < 0 {
		return nil, invalid("duration and water_amount must not be negative")
	}
	if err := s.r.CreateIrrigation(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *activitySvc) LogFertilizer(ctx context.Context, l *entities.FertilizerLog) (*entities.FertilizerLog, error) {
	if err := s.stamp(l.UserID, &l.Date); err != nil {
		return nil, err
	}
	if l.FertilizerType == "" {
		return nil, invalid("fertilizer_type is required")
	}
	if l.Amount < 0 {
		return nil, invalid("amount must not be negative")
	}
	if err := s.r.CreateFertilizer(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *activitySvc) LogHarvest(ctx context.Context, l *entities.HarvestLog) (*entities.HarvestLog, error) {
	if err := s.stamp(l.UserID, &l.HarvestDate); err != nil {
		return nil, err
	}
	if l.CropID == "" {
		return nil, invalid("crop_id is required")
	}
	if l.Quantity < 0 {
		return nil, invalid("quantity must not be negative")
	}
	if err := s.r.CreateHarvest(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *activitySvc) LogPestDisease(ctx context.Context, l *entities.PestDiseaseLog) (*entities.PestDiseaseLog, error) {
	if err := s.stamp(l.UserID, &l.Date); err != nil {
		return nil, err
	}
	if l.Severity == "" {
		l.Severity = entities.SeverityLow
	}
	switch {
	case l.Type != entities.IncidentPest && l.Type != entities.IncidentDisease:
		return nil, invalid("type must be PEST or DISEASE")
	case l.Severity != entities.SeverityLow && l.Severity != entities.SeverityMedium && l.Severity != entities.SeverityHigh:
		return nil, invalid("unknown severity %q", l.Severity)
	case l.Name == "":
		return nil, invalid("name is required")
	}
	if err := s.r.CreatePestDisease(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *activitySvc) Recent(ctx context.Context, uid string, kind service.Kind, days int) (any, error) {
	since := s.now().AddDate(0, 0, -days)
	switch kind {
	case service.Irrigation:
		return s.r.RecentIrrigation(ctx, uid, since)
	case service.Fertilizer:
		return s.r.RecentFertilizer(ctx, uid, since)
	case service.Harvest:
		return s.r.RecentHarvest(ctx, uid, since)
	case service.PestDisease:
		return s.r.RecentPestDisease(ctx, uid, since)
	}
	return nil, fmt.Errorf("%w: %q", service.ErrUnknownKind, kind)
}
