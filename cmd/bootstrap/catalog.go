package bootstrap

import (
	"homefix-scheduling/internal/domain/schedule"
	"homefix-scheduling/internal/pkg/config"
	"homefix-scheduling/internal/pkg/errs"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewSlotCatalog,
	),
)

// NewSlotCatalog builds the day template once at startup. A template that
// does not divide evenly into slots aborts boot instead of serving a
// half-broken availability surface.
func NewSlotCatalog(cfg config.Config) (*schedule.Catalog, error) {
	catalog, err := schedule.NewCatalog(schedule.CatalogConfig{
		DayStart:    cfg.Schedule.DayStart,
		DayEnd:      cfg.Schedule.DayEnd,
		SlotMinutes: cfg.Schedule.SlotMinutes,
	})
	if err != nil {
		return nil, errs.Wrap(err, "invalid schedule configuration")
	}
	return catalog, nil
}
