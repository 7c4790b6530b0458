// internal/app/store/queries/tagstats/tagstats.go
package tagstats

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// topN is how many tags the admin gap report shows.
const topN = 10

// TagStat is one row of the supply/demand report: how many asks
// (demand) and offers (supply) carry the tag.
type TagStat struct {
	Tag    string `json:"tag"`
	Asks   int64  `json:"asks"`
	Offers int64  `json:"offers"`
	Gap    int64  `json:"gap"`
}

// Report is the admin tag analytics payload.
type Report struct {
	Tags        []TagStat `json:"tags"`
	TotalAsks   int64     `json:"totalAsks"`
	TotalOffers int64     `json:"totalOffers"`
}

type Queries struct {
	asks   *mongo.Collection
	offers *mongo.Collection
}

func New(db *mongo.Database) *Queries {
	return &Queries{
		asks:   db.Collection("asks"),
		offers: db.Collection("offers"),
	}
}

// TopTags aggregates tag frequencies across asks and offers, merges
// them, and returns the busiest tags by combined count along with the
// overall document totals.
func (q *Queries) TopTags(ctx context.Context) (Report, error) {
	askCounts, err := countTags(ctx, q.asks)
	if err != nil {
		return Report{}, err
	}
	offerCounts, err := countTags(ctx, q.offers)
	if err != nil {
		return Report{}, err
	}

	merged := make(map[string]TagStat, len(askCounts)+len(offerCounts))
	for tag, n := range askCounts {
		st := merged[tag]
		st.Tag = tag
		st.Asks = n
		merged[tag] = st
	}
	for tag, n := range offerCounts {
		st := merged[tag]
		st.Tag = tag
		st.Offers = n
		merged[tag] = st
	}

	stats := make([]TagStat, 0, len(merged))
	for _, st := range merged {
		st.Gap = st.Asks - st.Offers
		stats = append(stats, st)
	}
	sort.Slice(stats, func(i, j int) bool {
		ti, tj := stats[i].Asks+stats[i].Offers, stats[j].Asks+stats[j].Offers
		if ti != tj {
			return ti > tj
		}
		return stats[i].Tag < stats[j].Tag
	})
	if len(stats) > topN {
		stats = stats[:topN]
	}

	totalAsks, err := q.asks.CountDocuments(ctx, bson.M{})
	if err != nil {
		return Report{}, err
	}
	totalOffers, err := q.offers.CountDocuments(ctx, bson.M{})
	if err != nil {
		return Report{}, err
	}

	return Report{Tags: stats, TotalAsks: totalAsks, TotalOffers: totalOffers}, nil
}

func countTags(ctx context.Context, c *mongo.Collection) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$tags"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$tags",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cur, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Tag   string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Tag] = row.Count
	}
	return counts, nil
}
