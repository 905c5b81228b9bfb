package users

import (
	"context"
	"errors"
	"slices"
	"strings"

	serverError "github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/models"
	"github.com/AsmaaWasel/Dashboard/mongodb"
	"github.com/AsmaaWasel/Dashboard/objects"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SearchOptions struct {
	CurrentPage int                `json:"current_page"`
	UserID      string             `json:"user_id,omitempty"`
	Username    models.MatchOption `json:"username,omitempty"`
	Email       models.MatchOption `json:"email,omitempty"`
}

type UsersModel struct {
	models.BaseModel[objects.User]
}

const (
	collectionName = "users"
	userIDIndex    = "user_id_1"
	emailIndex     = "email_1"
)

func NewUsersModel(ctx context.Context, conn *mongodb.MongoDBConn, paginateSize ...int) (*UsersModel, error) {

	var searchSize = models.DefaultSearchLenLimit
	var paginateSizeLen = len(paginateSize)
	if paginateSizeLen > 1 {
		return nil, errors.New("PaginateSize can have only one elements")
	} else if paginateSizeLen == 1 {
		searchSize = paginateSize[0]
	}

	coll, err := models.EnsureCollection(ctx, conn, collectionName, bson.M{
		"bsonType": "object",
		"required": []string{"user_id", "username", "password", "email"},
		"properties": bson.M{
			"user_id":  models.StringProperty("User ID must not be empty"),
			"username": models.StringProperty("Username must not be empty"),
			"password": models.StringProperty("Password must not be empty"),
			"email":    models.StringProperty("Email must not be empty"),
		},
	})
	if err != nil {
		return nil, err
	}

	err = models.EnsureIndexes(ctx, coll,
		models.IndexSpec{Name: userIDIndex, Keys: bson.D{{Key: "user_id", Value: 1}}, Unique: true},
		models.IndexSpec{Name: emailIndex, Keys: bson.D{{Key: "email", Value: 1}}, Unique: true},
	)
	if err != nil {
		return nil, err
	}

	var model = new(UsersModel)
	if err := model.Inject(coll, searchSize, "user_id"); err != nil {
		return nil, err
	}

	return model, nil
}

func (UsersModel) GetCollectionName() string {
	return collectionName
}

// Insert stores the user with its email lowercased. Id, username and email must be unused.
func (m UsersModel) Insert(ctx context.Context, user objects.User) error {

	var missing []string
	for field, value := range map[string]string{
		"user_id":  user.UserID,
		"username": user.Username,
		"password": user.PasswordHash,
		"email":    user.Email,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)
		return serverError.ValidationFailedError.New(strings.Join(missing, ", "))
	}

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if !strings.Contains(user.Email, "@") {
		return serverError.ValidationFailedError.New("email")
	}

	filter := bson.D{
		{
			Key: "$or", Value: bson.A{
				bson.D{{Key: m.ItemIDKey, Value: user.UserID}},
				bson.D{{Key: "username", Value: user.Username}},
				bson.D{{Key: "email", Value: user.Email}},
			},
		},
	}

	err := m.Coll.FindOne(ctx, filter).Err()
	if err == nil {
		return serverError.DataAlreadyInUsedError.New()
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	return m.BaseModel.Insert(ctx, user)
}

// GetByEmail looks the user up by login email, case-insensitively.
func (m UsersModel) GetByEmail(ctx context.Context, email string) (user objects.User, err error) {

	email = strings.ToLower(strings.TrimSpace(email))

	err = m.Coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = serverError.ObjectIDNotFoundError.New(email)
	}

	return
}

func (m UsersModel) Search(ctx context.Context, opt SearchOptions) (models.PaginationData[objects.User], error) {

	var builder = models.NewSearchPipelineBuilder()
	builder.Skip((opt.CurrentPage - 1) * m.SearchLenLimit)
	builder.Limit(m.SearchLenLimit)
	builder.SortedBy([]models.SortData{{Key: m.ItemIDKey, SortBy: models.SortASC}})

	if opt.UserID != "" {
		if err := builder.Match("user_id", opt.UserID, models.EqualMatchType); err != nil {
			return models.PaginationData[objects.User]{}, err
		}
	}

	if !opt.Username.IsNil() {
		if err := builder.Match("username", opt.Username.Value, opt.Username.MatchType); err != nil {
			return models.PaginationData[objects.User]{}, err
		}
	}

	if !opt.Email.IsNil() {
		if err := builder.Match("email", opt.Email.Value, opt.Email.MatchType); err != nil {
			return models.PaginationData[objects.User]{}, err
		}
	}

	return m.BaseModel.Search(ctx, models.BaseSearchOptions{
		CurrentPage: opt.CurrentPage,
		Pipeline:    builder.BuildPipeline(),
	})
}
