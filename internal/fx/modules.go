package fx

import (
	"career-tracker/internal/campaign"
	"career-tracker/internal/confederation"
	"career-tracker/internal/config"
	"career-tracker/internal/database"
	"career-tracker/internal/db"
	"career-tracker/internal/feed"
	"career-tracker/internal/logger"
	"career-tracker/internal/repository"
	"career-tracker/internal/server"
	"career-tracker/internal/service"
	"context"
	"database/sql"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

// drainMilestones lets queued feed deliveries finish before the process exits.
func drainMilestones(lc fx.Lifecycle, career *service.Career) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			career.Drain()
			return nil
		},
	})
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	fx.Provide(confederation.New),
	fx.Provide(func(t *confederation.Table) campaign.Confederations { return t }),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewMatchRepository),
	fx.Provide(repository.NewCampaignHistoryRepository),
	fx.Provide(repository.NewCareerRepository),
	// feed client
	fx.Provide(feed.NewClient),
	fx.Provide(func(c *feed.Client) service.Publisher { return c }),
	// svc
	fx.Provide(campaign.NewEngine),
	fx.Provide(service.NewPlayerLocks),
	fx.Provide(service.NewCareer),
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewCampaignService),
	fx.Provide(service.NewAnalyticsService),
	fx.Invoke(drainMilestones),
	// server
	fx.Provide(server.NewCareerServer),
)
