package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"placement-dashboard/app/models"
)

type mongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository reads every document of a collection as one row.
func NewMongoRepository(db *mongo.Database, collection string) PlacementRepository {
	return &mongoRepository{collection: db.Collection(collection)}
}

func (r *mongoRepository) Source() string {
	return "mongodb:" + r.collection.Database().Name() + "." + r.collection.Name()
}

func (r *mongoRepository) Load(ctx context.Context) (*models.PlacementTable, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, &models.LoadError{Source: r.Source(), Err: err}
	}
	defer cursor.Close(ctx)

	var docs []bson.D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &models.LoadError{Source: r.Source(), Err: err}
	}

	table, err := DocumentsToTable(docs)
	if err != nil {
		return nil, &models.LoadError{Source: r.Source(), Err: err}
	}
	return table, nil
}

// DocumentsToTable flattens documents into rows. Columns follow the order in
// which keys first appear; documents missing a key get an empty cell.
func DocumentsToTable(docs []bson.D) (*models.PlacementTable, error) {
	var columns []string
	pos := make(map[string]int)
	for _, doc := range docs {
		for _, e := range doc {
			if e.Key == "_id" {
				continue
			}
			if _, ok := pos[e.Key]; !ok {
				pos[e.Key] = len(columns)
				columns = append(columns, e.Key)
			}
		}
	}
	if len(docs) == 0 {
		columns = append(columns, models.RequiredColumns...)
	}

	rows := make([][]string, 0, len(docs))
	for _, doc := range docs {
		row := make([]string, len(columns))
		for _, e := range doc {
			if i, ok := pos[e.Key]; ok {
				row[i] = formatValue(e.Value)
			}
		}
		rows = append(rows, row)
	}

	return models.NewPlacementTable(columns, rows)
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case primitive.DateTime:
		return val.Time().UTC().Format(time.RFC3339)
	case primitive.ObjectID:
		return val.Hex()
	case float64:
		// 2021.0 comes back from JSON imports; keep it comparable with "2021".
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprint(val)
	}
}
