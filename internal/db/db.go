package db

import (
	"context"
	"log"
	"os"
	"time"

	"gamedevforum/internal/models"
	"gamedevforum/internal/store"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var Mongo *mongo.Database

func Init() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		// Fallback for local dev if not set
		uri = "mongodb://localhost:27017"
	}
	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "GameDevForum"
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Database connection established")

	Mongo = client.Database(name)

	if err := ensureIndexes(ctx, Mongo); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	seedSections(ctx, Mongo)
}

// ensureIndexes creates the unique logical-id indexes and the parent-ref
// indexes the listing and cascade queries depend on.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	collections := map[string][]mongo.IndexModel{
		"sections": {
			{Keys: bson.D{{Key: "section_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "title", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"categories": {
			{Keys: bson.D{{Key: "category_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "section_id", Value: 1}}},
		},
		"threads": {
			{Keys: bson.D{{Key: "thread_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "category_id", Value: 1}}},
		},
		"posts": {
			{Keys: bson.D{{Key: "post_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "thread_id", Value: 1}}},
			{Keys: bson.D{{Key: "author_id", Value: 1}}},
		},
		"users": {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for name, indexes := range collections {
		db.CreateCollection(ctx, name)
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return err
		}
	}
	return nil
}

// seedSections provisions the two fixed sections and the single news
// category. Sections are never created through the API, only here.
func seedSections(ctx context.Context, db *mongo.Database) {
	count, err := db.Collection("sections").CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to count sections: %v", err)
	}
	if count > 0 {
		log.Println("Sections already seeded, skipping")
		return
	}

	newsCategoryID := store.NewID()
	sections := []models.Section{
		{SectionID: store.NewID(), Title: "news", Categories: []string{newsCategoryID}},
		{SectionID: store.NewID(), Title: "forum", Categories: []string{}},
	}
	for _, section := range sections {
		if _, err := db.Collection("sections").InsertOne(ctx, section); err != nil {
			log.Printf("Failed to seed section %s: %v", section.Title, err)
		}
	}

	newsCategory := models.Category{
		CategoryID: newsCategoryID,
		Title:      "News",
		SectionID:  sections[0].SectionID,
		Threads:    []string{},
	}
	if _, err := db.Collection("categories").InsertOne(ctx, newsCategory); err != nil {
		log.Printf("Failed to seed news category: %v", err)
	}
	log.Println("Initial sections created successfully")
}
