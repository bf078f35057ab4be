package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"jeopardai/internal/config"
	"jeopardai/internal/model"
	"jeopardai/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const batchSize = 1000

// Loads the season archive TSV (round, clue_value, daily_double_value,
// category, comments, answer, question, air_date, notes) into the clues
// collection. The archive's "answer" column is the clue shown to players
// and "question" is what they must respond with.
func main() {
	path := flag.String("data", "combined_season1-40.tsv", "path to the season archive TSV")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewClueRepo(client.Database(cfg.MongoDB))

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("Data file not found at %s: %v", *path, err)
	}
	defer f.Close()

	log.Printf("Loading data from %s", *path)

	reader := csv.NewReader(f)
	reader.Comma = '\t'
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		log.Fatalf("Failed to read header: %v", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"round", "clue_value", "daily_double_value", "category", "answer", "question", "air_date"} {
		if _, ok := col[required]; !ok {
			log.Fatalf("Data file missing column %q", required)
		}
	}

	var batch []*model.Clue
	total := 0
	skipped := 0

	flush := func() {
		if len(batch) == 0 {
			return
		}
		insertCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := repo.InsertMany(insertCtx, batch); err != nil {
			log.Fatalf("Failed to insert batch: %v", err)
		}
		total += len(batch)
		batch = batch[:0]
		if total%10000 == 0 {
			log.Printf("Processed %d rows...", total)
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Skipping unreadable row: %v", err)
			skipped++
			continue
		}

		clue, err := parseRow(row, col)
		if err != nil {
			log.Printf("Skipping row: %v", err)
			skipped++
			continue
		}

		batch = append(batch, clue)
		if len(batch) == batchSize {
			flush()
		}
	}
	flush()

	log.Printf("Successfully loaded %d rows (%d skipped)", total, skipped)
}

func parseRow(row []string, col map[string]int) (*model.Clue, error) {
	get := func(name string) string {
		if i, ok := col[name]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	round, err := strconv.Atoi(get("round"))
	if err != nil {
		return nil, err
	}
	value, err := strconv.Atoi(get("clue_value"))
	if err != nil {
		return nil, err
	}
	ddValue, err := strconv.Atoi(get("daily_double_value"))
	if err != nil {
		return nil, err
	}
	airDate, err := time.Parse("2006-01-02", get("air_date"))
	if err != nil {
		return nil, err
	}

	return &model.Clue{
		Round:         round,
		Value:         value,
		IsDailyDouble: ddValue != 0,
		Category:      get("category"),
		Comments:      get("comments"),
		ClueText:      get("answer"),
		CorrectAnswer: get("question"),
		AirDate:       airDate.UTC(),
		Notes:         get("notes"),
	}, nil
}
