package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 5 * time.Second

type MongoDBConn struct {
	Client       *mongo.Client
	opts         *options.ClientOptions
	databaseName string
}

func (db *MongoDBConn) Connect() error {

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, db.opts)
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return err
	}

	db.Client = client

	return nil
}

func (db *MongoDBConn) Disconnect() error {

	if db.Client == nil {
		return nil
	}

	return db.Client.Disconnect(context.Background())
}

func (db *MongoDBConn) GetDatabase() *mongo.Database {
	return db.Client.Database(db.databaseName)
}

func (db *MongoDBConn) GetCollection(collectionName string) *mongo.Collection {
	return db.GetDatabase().Collection(collectionName)
}

func New(uri string, databaseName string) MongoDBConn {

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetServerSelectionTimeout(connectTimeout)

	return MongoDBConn{
		opts:         opts,
		databaseName: databaseName,
	}
}

func InitConnection(uri string, databaseName string) (*MongoDBConn, error) {

	mongodbConn := New(uri, databaseName)
	if err := mongodbConn.Connect(); err != nil {
		return nil, err
	}

	return &mongodbConn, nil
}
