// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureAsks(ctx, db); err != nil {
		problems = append(problems, "asks: "+err.Error())
	}
	if err := ensureOffers(ctx, db); err != nil {
		problems = append(problems, "offers: "+err.Error())
	}
	if err := ensureConnections(ctx, db); err != nil {
		problems = append(problems, "connections: "+err.Error())
	}
	if err := ensureNotifications(ctx, db); err != nil {
		problems = append(problems, "notifications: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("users"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}, {Key: "full_name_ci", Value: 1}},
			Options: options.Index().SetName("role_name"),
		},
	})
}

func ensureAsks(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("asks"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "author_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("author_created"),
		},
		{
			Keys:    bson.D{{Key: "tags", Value: 1}},
			Options: options.Index().SetName("tags"),
		},
	})
}

func ensureOffers(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("offers"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "author_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("author_created"),
		},
		{
			Keys:    bson.D{{Key: "tags", Value: 1}},
			Options: options.Index().SetName("tags"),
		},
	})
}

func ensureConnections(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("connections"), []mongo.IndexModel{
		// Lookup index backing the pre-create duplicate check over the
		// (student, alum, ask, offer) tuple.
		{
			Keys: bson.D{
				{Key: "student_id", Value: 1},
				{Key: "alum_id", Value: 1},
				{Key: "ask_id", Value: 1},
				{Key: "offer_id", Value: 1},
			},
			Options: options.Index().SetName("pairing_tuple"),
		},
		{
			Keys:    bson.D{{Key: "alum_id", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("alum_status"),
		},
		{
			Keys:    bson.D{{Key: "student_id", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("student_status"),
		},
	})
}

func ensureNotifications(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("notifications"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("user_created"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "read", Value: 1}},
			Options: options.Index().SetName("user_read"),
		},
	})
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := false
	bv := false
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, desired []mongo.IndexModel) error {
	var errs []string

	for _, m := range desired {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			if m.Options.Unique != nil {
				desiredUnique = m.Options.Unique
			}
		}
		desiredSig := keySig(m.Keys.(bson.D))

		start := time.Now()
		zap.L().Info("ensuring index",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique))

		existing := map[string]existingIndex{} // sig -> index
		cur, err := coll.Indexes().List(ctx)
		if err == nil {
			for cur.Next(ctx) {
				var idx existingIndex
				if err := cur.Decode(&idx); err != nil {
					zap.L().Warn("failed to decode existing index",
						zap.String("collection", coll.Name()),
						zap.Error(err))
					continue
				}
				existing[keySig(idx.Key)] = idx
			}
			cur.Close(ctx)
		}

		if ex, ok := existing[desiredSig]; ok && sameBoolPtr(desiredUnique, ex.Unique) {
			zap.L().Info("reusing existing index",
				zap.String("collection", coll.Name()),
				zap.String("name", ex.Name),
				zap.String("keys", desiredSig))
			continue
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			zap.L().Warn("create index failed",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}

		zap.L().Info("index created",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
