package repository

import (
	"context"
	"sort"
	"time"

	"jeopardai/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ClueRepo is the clue store contract. The judging engine treats it as a
// read-only collaborator; InsertMany exists for the seed loader.
type ClueRepo interface {
	GetByID(ctx context.Context, id string) (*model.Clue, error)

	// Board support
	RandomCategories(ctx context.Context, round, n int) ([]string, error)
	CategoryExists(ctx context.Context, category string) (bool, error)
	AirDates(ctx context.Context, category string, round int) ([]time.Time, error)
	BoardColumn(ctx context.Context, category string, round int, airDate time.Time) ([]*model.Clue, error)

	// Data loading
	InsertMany(ctx context.Context, clues []*model.Clue) error
}

type clueRepo struct {
	collection *mongo.Collection
}

// NewClueRepo creates a mongo-backed clue repository.
func NewClueRepo(db *mongo.Database) ClueRepo {
	return &clueRepo{
		collection: db.Collection("clues"),
	}
}

func (r *clueRepo) GetByID(ctx context.Context, id string) (*model.Clue, error) {
	// IDs are stored as ObjectID hex strings (assigned by InsertMany), so
	// lookups match on the string form directly.
	var clue model.Clue
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&clue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &clue, nil
}

// RandomCategories samples n distinct categories carrying clues in the
// given round.
func (r *clueRepo) RandomCategories(ctx context.Context, round, n int) ([]string, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"round": round}}},
		{{Key: "$group", Value: bson.M{"_id": "$category"}}},
		{{Key: "$sample", Value: bson.M{"size": n}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Category string `bson:"_id"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.Category)
	}
	return categories, nil
}

func (r *clueRepo) CategoryExists(ctx context.Context, category string) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"category": category}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// AirDates returns the distinct air dates for a category and round, newest
// first.
func (r *clueRepo) AirDates(ctx context.Context, category string, round int) ([]time.Time, error) {
	raw, err := r.collection.Distinct(ctx, "airDate", bson.M{"category": category, "round": round})
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(raw))
	for _, v := range raw {
		if dt, ok := v.(primitive.DateTime); ok {
			dates = append(dates, dt.Time().UTC())
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates, nil
}

// BoardColumn returns one clue per value for a category, round, and air
// date, sorted ascending by value. Ties on value resolve to the lowest id.
func (r *clueRepo) BoardColumn(ctx context.Context, category string, round int, airDate time.Time) ([]*model.Clue, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"category": category, "round": round, "airDate": airDate}}},
		{{Key: "$sort", Value: bson.D{{Key: "value", Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$group", Value: bson.M{"_id": "$value", "doc": bson.M{"$first": "$$ROOT"}}}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$doc"}}},
		{{Key: "$sort", Value: bson.D{{Key: "value", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clues []*model.Clue
	if err = cursor.All(ctx, &clues); err != nil {
		return nil, err
	}
	return clues, nil
}

func (r *clueRepo) InsertMany(ctx context.Context, clues []*model.Clue) error {
	docs := make([]interface{}, 0, len(clues))
	for _, clue := range clues {
		if clue.ID == "" {
			clue.ID = primitive.NewObjectID().Hex()
		}
		docs = append(docs, clue)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
