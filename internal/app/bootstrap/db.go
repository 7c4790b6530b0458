// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/campusconnect/mentorlink/internal/app/system/indexes"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection used by all stores.
//
// The client is verified with a ping before the app continues booting so a
// bad URI or unreachable server fails fast at startup instead of on the
// first request.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("MongoDB connect failed", zap.Error(err))
		return DBDeps{}, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Error("MongoDB ping failed", zap.Error(err))
		_ = client.Disconnect(ctx)
		return DBDeps{}, err
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MentorLinkMongoClient:   client,
		MentorLinkMongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema sets up indexes or schema as needed.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := indexes.EnsureAll(ctx, deps.MentorLinkMongoDatabase); err != nil {
		logger.Error("index creation failed", zap.Error(err))
		return err
	}
	return nil
}
