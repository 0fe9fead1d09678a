package app

import (
	"go-hrm/internal/config"
	"go-hrm/internal/leave"
	"go-hrm/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App owns the infrastructure clients opened by BuildApp.
type App struct {
	DB    *gorm.DB
	Redis *redis.Client
	Kafka *kafkago.Writer
}

// BuildApp connects to the store and the optional Redis and Kafka brokers,
// then mounts every module on router.
func BuildApp(router *gin.Engine, cfg *config.Config) (*App, error) {
	logger := zap.L().Named("app")
	dbCfg := cfg.Database

	gormDB, err := connection.ConnectGORMWithRetry(
		dbCfg.Host,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Name,
		dbCfg.Port,
		dbCfg.SSLMode,
		dbCfg.MaxRetries,
	)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if dbCfg.AutoMigrate {
		if err := Migrate(gormDB); err != nil {
			return nil, err
		}
		logger.Info("schema migrated")
	}

	a := &App{DB: gormDB}

	if cfg.Redis.Addr != "" {
		a.Redis, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, dbCfg.MaxRetries)
		if err != nil {
			return nil, err
		}
		logger.Info("redis connection established")
	} else {
		logger.Warn("REDIS_ADDR not set, idempotency guard disabled")
	}

	publisher := leave.NewNoopEventPublisher()
	if cfg.Kafka.Broker != "" {
		a.Kafka, err = connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, dbCfg.MaxRetries)
		if err != nil {
			return nil, err
		}
		publisher = leave.NewKafkaEventPublisher(a.Kafka)
		logger.Info("kafka writer ready", zap.String("broker", cfg.Kafka.Broker))
	} else {
		logger.Warn("KAFKA_BROKER not set, leave events are not published")
	}

	registerModules(router, gormDB, a.Redis, publisher, cfg.Server)
	return a, nil
}

func (a *App) Close() {
	logger := zap.L().Named("app")
	if a.Kafka != nil {
		if err := a.Kafka.Close(); err != nil {
			logger.Warn("kafka writer close failed", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Warn("redis close failed", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
