//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"pincode-service/internal/handlers/rest/dashboard_get"
	"pincode-service/internal/handlers/rest/lookup_get"
	"pincode-service/internal/handlers/rest/rule_delete"
	"pincode-service/internal/handlers/rest/rule_post"
	"pincode-service/internal/handlers/rest/rules_get"
	"pincode-service/internal/handlers/rest/rules_import_post"
	"pincode-service/internal/handlers/tasks/stats_refresh"
	"pincode-service/internal/pkg/config"

	ruleRepo "pincode-service/internal/repository/rule"
	ingestService "pincode-service/internal/service/ingest"
	lookupService "pincode-service/internal/service/lookup"
	ruleService "pincode-service/internal/service/rule"

	"pincode-service/pkg/background"
	"pincode-service/pkg/logger"
	"pincode-service/pkg/querier"
	"pincode-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StatsRefreshInterval time.Duration
)

type Application struct {
	ServiceRule       ServiceRule
	ServiceImporter   ServiceImporter
	ServiceLookup     ServiceLookup
	BackgroundWorkers *background.Worker
}

type ServiceRule interface {
	rule_post.Service
	rule_delete.Service
	rules_get.Service
	dashboard_get.Service
}

type ServiceImporter interface {
	rules_import_post.Service
}

type ServiceLookup interface {
	lookup_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatsRefreshInterval,

		provideRuleRepository,

		provideServiceRule,
		provideServiceImporter,
		provideServiceLookup,

		provideStatsRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceRule), new(*ruleService.Rule)),
		wire.Bind(new(ServiceImporter), new(*ingestService.Importer)),
		wire.Bind(new(ServiceLookup), new(*lookupService.Lookup)),

		wire.Bind(new(ruleService.Repository), new(*ruleRepo.Repository)),
		wire.Bind(new(ingestService.Repository), new(*ruleRepo.Repository)),
		wire.Bind(new(lookupService.Repository), new(*ruleRepo.Repository)),

		wire.Bind(new(ingestService.TxManager), new(*tx.Manager)),

		wire.Bind(new(stats_refresh.Service), new(*ruleService.Rule)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideRuleRepository(querier *querier.Querier) *ruleRepo.Repository {
	return ruleRepo.New(querier)
}

func provideServiceRule(repository ruleService.Repository) *ruleService.Rule {
	return ruleService.New(repository)
}

func provideServiceImporter(
	repository ingestService.Repository,
	txManager ingestService.TxManager,
) *ingestService.Importer {
	return ingestService.New(repository, txManager)
}

func provideServiceLookup(repository lookupService.Repository) *lookupService.Lookup {
	return lookupService.New(repository)
}

func provideStatsRefreshInterval(cfg *config.Config) StatsRefreshInterval {
	return StatsRefreshInterval(cfg.Tasks.StatsRefreshInterval)
}

func provideStatsRefreshTask(
	ruleService stats_refresh.Service,
	interval StatsRefreshInterval,
) *stats_refresh.StatsRefresh {
	return stats_refresh.NewStatsRefresh(ruleService, time.Duration(interval))
}

func provideTaskList(
	statsRefreshTask *stats_refresh.StatsRefresh,
) []background.Task {
	return []background.Task{
		statsRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
