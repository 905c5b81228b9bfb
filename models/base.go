package models

import (
	"context"
	"errors"

	serverError "github.com/AsmaaWasel/Dashboard/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Item interface {
	GetID() string
}

type PaginationData[Data Item] struct {
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	Count      int    `json:"count"`
	Data       []Data `json:"data"`
}

type BaseSearchOptions struct {
	CurrentPage int
	Pipeline    mongo.Pipeline
}

type BaseModel[T Item] struct {
	SearchLenLimit int

	Coll      *mongo.Collection
	ItemIDKey string
}

func (m *BaseModel[T]) Inject(coll *mongo.Collection, searchLenLimit int, itemIDKey string) error {

	if searchLenLimit < 1 {
		return errors.New("PaginateSize value can be only positive integer")
	}

	m.Coll = coll
	m.SearchLenLimit = searchLenLimit
	m.ItemIDKey = itemIDKey

	return nil
}

func (m BaseModel[T]) Insert(ctx context.Context, item T) error {

	_, err := m.Coll.InsertOne(ctx, item)
	if err != nil {

		if mongo.IsDuplicateKeyError(err) {
			return serverError.DuplicatedObjectIDError.New(item.GetID())
		}

		return err
	}

	return nil
}

func (m BaseModel[T]) GetByID(ctx context.Context, itemID string) (item T, err error) {

	result := m.Coll.FindOne(ctx, bson.D{{Key: m.ItemIDKey, Value: itemID}})

	err = result.Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = serverError.ObjectIDNotFoundError.New(itemID)
		return
	}

	return
}

// Find returns every item matching filter in insertion order.
func (m BaseModel[T]) Find(ctx context.Context, filter bson.D) ([]T, error) {

	if filter == nil {
		filter = bson.D{}
	}

	option := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := m.Coll.Find(ctx, filter, option)
	if err != nil {
		return nil, err
	}

	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (m BaseModel[T]) Search(ctx context.Context, opt BaseSearchOptions) (paginationData PaginationData[T], paginateErr error) {

	var currentPage = opt.CurrentPage
	if currentPage < 1 {
		paginateErr = serverError.CurrentPageInvalidError.New()
		return
	}

	var cur *mongo.Cursor
	cur, paginateErr = m.Coll.Aggregate(ctx, opt.Pipeline)
	if paginateErr != nil {
		return
	}

	var aggResultList []AggregatedResult[T]
	paginateErr = cur.All(ctx, &aggResultList)
	if paginateErr != nil {
		return
	}

	var aggResult AggregatedResult[T]
	if len(aggResultList) > 0 {
		aggResult = aggResultList[0]
	}

	if aggResult.Data == nil {
		aggResult.Data = []T{}
	}

	totalPages := aggResult.Total / m.SearchLenLimit
	if aggResult.Total%m.SearchLenLimit > 0 {
		totalPages++
	}

	paginationData = PaginationData[T]{
		Page:       currentPage,
		TotalPages: totalPages,
		Count:      aggResult.Total,
		Data:       aggResult.Data,
	}

	return
}

// Update sets every non-empty field of item except its id.
func (m BaseModel[T]) Update(ctx context.Context, item T) error {

	filter, err := CreateMatchBson(m.ItemIDKey, item.GetID(), EqualMatchType)
	if err != nil {
		return err
	}

	b, err := bson.Marshal(item)
	if err != nil {
		return err
	}

	var parsedBson bson.D
	err = bson.Unmarshal(b, &parsedBson)
	if err != nil {
		return err
	}

	var updateBson bson.D
	for _, keyValue := range parsedBson {

		if keyValue.Key != m.ItemIDKey {
			updateBson = append(updateBson, keyValue)
		}
	}

	if len(updateBson) == 0 {
		_, err := m.GetByID(ctx, item.GetID())
		return err
	}

	result := m.Coll.FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: updateBson}})
	if err := result.Err(); err != nil {

		if errors.Is(err, mongo.ErrNoDocuments) {
			return serverError.ObjectIDNotFoundError.New(item.GetID())
		}

		if mongo.IsDuplicateKeyError(err) {
			return serverError.DataAlreadyInUsedError.New()
		}

		return err
	}

	return nil
}

func (m BaseModel[T]) Delete(ctx context.Context, itemID string) error {

	filter := bson.D{{Key: m.ItemIDKey, Value: itemID}}

	result := m.Coll.FindOneAndDelete(ctx, filter)
	if err := result.Err(); err != nil {

		if errors.Is(err, mongo.ErrNoDocuments) {
			return serverError.ObjectIDNotFoundError.New(itemID)
		}

		return err
	}

	return nil
}
