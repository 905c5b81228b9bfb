package models

import (
	"context"
	"slices"

	"github.com/AsmaaWasel/Dashboard/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultSearchLenLimit = 10

type IndexSpec struct {
	Name   string
	Keys   bson.D
	Unique bool
}

// EnsureCollection creates the collection with a strict $jsonSchema validator, or
// updates the validator of an existing one.
func EnsureCollection(ctx context.Context, conn *mongodb.MongoDBConn, collectionName string, schema bson.M) (*mongo.Collection, error) {

	db := conn.GetDatabase()

	collectionNameList, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	validator := bson.D{{Key: "$jsonSchema", Value: schema}}

	if slices.Contains(collectionNameList, collectionName) {

		cmd := bson.D{
			{Key: "collMod", Value: collectionName},
			{Key: "validator", Value: validator},
			{Key: "validationLevel", Value: "strict"},
		}

		if err := db.RunCommand(ctx, cmd, options.RunCmd()).Err(); err != nil {
			return nil, err
		}

		return conn.GetCollection(collectionName), nil
	}

	collectionOptions := options.CreateCollection()
	collectionOptions.SetValidator(validator)
	collectionOptions.SetValidationLevel("strict")

	if err := db.CreateCollection(ctx, collectionName, collectionOptions); err != nil {
		return nil, err
	}

	return conn.GetCollection(collectionName), nil
}

// EnsureIndexes creates the missing indexes, matched by name.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection, specs ...IndexSpec) error {

	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return err
	}

	var indexes []bson.M
	if err := cur.All(ctx, &indexes); err != nil {
		return err
	}

	for _, spec := range specs {

		contains := slices.ContainsFunc(indexes, func(m primitive.M) bool {
			return m["name"] == spec.Name
		})

		if contains {
			continue
		}

		indexModel := mongo.IndexModel{
			Keys:    spec.Keys,
			Options: options.Index().SetName(spec.Name).SetUnique(spec.Unique),
		}

		if _, err := coll.Indexes().CreateOne(ctx, indexModel); err != nil {
			return err
		}
	}

	return nil
}

// StringProperty is a required non-empty string in a $jsonSchema.
func StringProperty(description string) bson.M {
	return bson.M{"bsonType": "string", "minLength": 1, "description": description}
}
