package models

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/AsmaaWasel/Dashboard/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AggregatedResult[T any] struct {
	Count int `bson:"count"`
	Total int `bson:"total"`
	Data  []T `bson:"data"`
}

type MatchType uint8

const (
	EqualMatchType     MatchType = 0
	PartialMatchType   MatchType = 1
	StartWithMatchType MatchType = 2
	EndWithMatchType   MatchType = 3
)

type MatchOption struct {
	MatchType MatchType `json:"match_type"`
	Value     string    `json:"value"`
}

func (opt MatchOption) IsNil() bool {
	return reflect.ValueOf(opt).IsZero()
}

func CreateMatchBson(key string, value any, matchType MatchType) (bson.D, error) {

	switch matchType {

	case EqualMatchType:
		return EqualMatchBson(key, value), nil

	case PartialMatchType:
		return PartialMatchBson(key, value), nil

	case StartWithMatchType:
		return StartWithMatchBson(key, value), nil

	case EndWithMatchType:
		return EndWithMatchBson(key, value), nil

	default:
		return nil, errors.MatchTypeInvalidError.New(matchType)
	}
}

// EqualMatchBson creates BSON for equal search (Case-sensitive)
func EqualMatchBson(key string, value any) bson.D {
	return bson.D{{Key: key, Value: value}}
}

// PartialMatchBson creates BSON for partial search (Case-insensitive)
func PartialMatchBson(key string, value any) bson.D {
	return bson.D{{Key: key, Value: bson.M{"$regex": quote(value), "$options": "i"}}}
}

// StartWithMatchBson creates BSON for start with keyword search (Case-insensitive)
func StartWithMatchBson(key string, value any) bson.D {
	format := fmt.Sprintf("^%s", quote(value))
	return bson.D{{Key: key, Value: bson.M{"$regex": format, "$options": "im"}}}
}

// EndWithMatchBson creates BSON for end with keyword search (Case-insensitive)
func EndWithMatchBson(key string, value any) bson.D {
	format := fmt.Sprintf("%s$", quote(value))
	return bson.D{{Key: key, Value: bson.M{"$regex": format, "$options": "im"}}}
}

func quote(value any) string {
	return regexp.QuoteMeta(fmt.Sprint(value))
}

type SortBy int

const (
	SortASC  SortBy = 1
	SortDESC SortBy = -1
)

type SortData struct {
	Key    string
	SortBy SortBy
}

// SearchPipelineBuilder assembles the match, facet and project stages used by
// BaseModel.Search so that one round trip returns both the page and the total.
type SearchPipelineBuilder struct {
	matchConditions bson.A
	sort            bson.D
	skip            int
	limit           int
}

func NewSearchPipelineBuilder() *SearchPipelineBuilder {
	return &SearchPipelineBuilder{matchConditions: bson.A{}}
}

func (b *SearchPipelineBuilder) Match(key string, value any, matchType MatchType) error {

	matchBson, err := CreateMatchBson(key, value, matchType)
	if err != nil {
		return err
	}

	b.matchConditions = append(b.matchConditions, matchBson)
	return nil
}

func (b *SearchPipelineBuilder) MatchIn(key string, values []string) {
	b.matchConditions = append(b.matchConditions, bson.D{{Key: key, Value: bson.D{{Key: "$in", Value: values}}}})
}

func (b *SearchPipelineBuilder) SortedBy(sortData []SortData) {

	b.sort = bson.D{}
	for _, data := range sortData {
		b.sort = append(b.sort, bson.E{Key: data.Key, Value: int(data.SortBy)})
	}
}

func (b *SearchPipelineBuilder) Skip(skip int) {
	b.skip = max(skip, 0)
}

func (b *SearchPipelineBuilder) Limit(limit int) {
	b.limit = limit
}

func (b *SearchPipelineBuilder) BuildPipeline() mongo.Pipeline {

	matchConditions := b.matchConditions
	if len(matchConditions) == 0 {
		matchConditions = bson.A{bson.D{}}
	}

	matchStage := bson.D{
		{
			Key: "$match", Value: bson.D{
				{Key: "$and", Value: matchConditions},
			},
		},
	}

	paginateResultQuery := bson.A{}
	if len(b.sort) > 0 {
		paginateResultQuery = append(paginateResultQuery, bson.D{{Key: "$sort", Value: b.sort}})
	}

	paginateResultQuery = append(paginateResultQuery,
		bson.D{{Key: "$skip", Value: b.skip}},
		bson.D{{Key: "$limit", Value: b.limit}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "data", Value: bson.D{{Key: "$push", Value: "$$ROOT"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	)

	matchResultQuery := bson.A{
		bson.D{{Key: "$count", Value: "total"}},
	}

	facetStage := bson.D{
		{
			Key: "$facet", Value: bson.D{
				{Key: "paginate_result", Value: paginateResultQuery},
				{Key: "match_result", Value: matchResultQuery},
			},
		},
	}

	projectStage := bson.D{
		{
			Key: "$project", Value: bson.D{
				{Key: "count", Value: bson.D{{Key: "$first", Value: "$paginate_result.count"}}},
				{Key: "total", Value: bson.D{{Key: "$first", Value: "$match_result.total"}}},
				{Key: "data", Value: bson.D{{Key: "$first", Value: "$paginate_result.data"}}},
			},
		},
	}

	return mongo.Pipeline{matchStage, facetStage, projectStage}
}
