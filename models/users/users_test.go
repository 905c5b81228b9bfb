package users

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/AsmaaWasel/Dashboard/env"
	"github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/models"
	"github.com/AsmaaWasel/Dashboard/mongodb"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
)

type UsersModelTestSuite struct {
	suite.Suite
	ctx          context.Context
	conn         *mongodb.MongoDBConn
	model        *UsersModel
	insertedUser objects.User
}

func (s *UsersModelTestSuite) SetupSuite() {

	config, err := env.Load()
	s.Require().NoError(err)

	conn, err := mongodb.InitConnection(config.MongoDB.URI, config.MongoDB.DB+"_test")
	if err != nil {
		s.T().Skipf("MongoDB is not reachable at %s: %v", config.MongoDB.URI, err)
	}

	s.ctx = context.Background()

	newModel, err := NewUsersModel(s.ctx, conn)
	if err != nil {
		conn.Disconnect()
		s.FailNow("Setup User model failed", err)
	}

	s.model = newModel
	s.conn = conn
}

func (s *UsersModelTestSuite) BeforeTest(suiteName, testName string) {

	if testName == "TestInsert" || testName == "TestSearch" {
		return
	}

	s.insertedUser = mockUser()
	s.Require().NoError(s.model.Insert(s.ctx, s.insertedUser), "Setup test failed from inserting users")
}

func (s *UsersModelTestSuite) AfterTest(suiteName, testName string) {

	if testName == "TestSearch" || testName == "TestDelete" {
		return
	}

	s.Require().NoError(s.model.Delete(s.ctx, s.insertedUser.UserID), "Clearing test failed from deleting users")
}

func (s *UsersModelTestSuite) TearDownSuite() {
	s.conn.Disconnect()
}

func (s *UsersModelTestSuite) TestInsert() {

	s.Run("Should insert valid user properly", func() {

		user := mockUser()
		s.Require().NoError(s.model.Insert(s.ctx, user), "Inserting User failed")

		result := s.model.Coll.FindOne(s.ctx, bson.D{{Key: "user_id", Value: user.UserID}})

		var actual objects.User
		s.Require().NoError(result.Decode(&actual), "Unmarshalling inserted User failed")
		s.Require().EqualValues(user, actual, "Read data is not the same as inserted")

		s.insertedUser = user
	})

	s.Run("Should throw error when insert user with existed data", func() {

		user := mockUser()
		s.Require().NoError(s.model.Insert(s.ctx, user), "Inserting User failed")

		s.T().Cleanup(func() {
			s.Require().NoError(s.model.Delete(s.ctx, user.UserID), "Clearing test failed from deleting user")
		})

		s.Run("Existed user_id", func() {

			newUser := mockUser()
			newUser.UserID = user.UserID
			s.Require().True(errors.IsError(s.model.Insert(s.ctx, newUser), errors.DataAlreadyInUsedError.New()))
		})

		s.Run("Existed username", func() {

			newUser := mockUser()
			newUser.Username = user.Username
			s.Require().Error(s.model.Insert(s.ctx, newUser), "Should have thrown error")
		})

		s.Run("Existed email in another case", func() {

			newUser := mockUser()
			newUser.Email = strings.ToUpper(user.Email)
			s.Require().Error(s.model.Insert(s.ctx, newUser), "Should have thrown error")
		})
	})

	s.Run("Should throw error when insert invalid user data", func() {

		user := mockUser()

		s.Run("Use empty user ID", func() {

			invalidUser := user
			invalidUser.UserID = ""

			err := s.model.Insert(s.ctx, invalidUser)
			s.Require().True(errors.IsError(err, errors.ValidationFailedError.New("user_id")), err)
		})

		s.Run("Use empty username and password", func() {

			invalidUser := user
			invalidUser.Username = ""
			invalidUser.PasswordHash = ""

			err := s.model.Insert(s.ctx, invalidUser)
			s.Require().True(errors.IsError(err, errors.ValidationFailedError.New("password, username")), err)
		})

		s.Run("Use invalid email format", func() {

			invalidUser := user
			invalidUser.Email = "invalid-email"

			s.Require().Error(s.model.Insert(s.ctx, invalidUser), "Should throw error")
		})
	})
}

func (s *UsersModelTestSuite) TestGetByID() {

	s.Run("Should get the user by user_id properly", func() {

		actual, err := s.model.GetByID(s.ctx, s.insertedUser.UserID)
		s.Require().NoError(err, "Getting exist user failed")
		s.Require().EqualValues(s.insertedUser, actual)
	})

	s.Run("Should throw the error when give non-exist user_id", func() {

		itemID := "non-exist_id"

		actual, err := s.model.GetByID(s.ctx, itemID)
		s.Require().Empty(actual)
		s.Require().ErrorIs(errors.ObjectIDNotFoundError.New(itemID), err, "Should throw error")
	})
}

func (s *UsersModelTestSuite) TestGetByEmail() {

	s.Run("Should get the user by email ignoring case and spaces", func() {

		actual, err := s.model.GetByEmail(s.ctx, "  "+strings.ToUpper(s.insertedUser.Email)+" ")
		s.Require().NoError(err)
		s.Require().EqualValues(s.insertedUser, actual)
	})

	s.Run("Should throw not found for unknown email", func() {

		_, err := s.model.GetByEmail(s.ctx, "nobody@example.mock")
		s.Require().True(errors.HasCode(err, errors.ObjectIDNotFoundErrorCode))
	})
}

func (s *UsersModelTestSuite) TestSearch() {

	users := []objects.User{
		{UserID: "search_user_a_" + gofakeit.UUID(), Username: "user_search_a", PasswordHash: "hash_a", Email: "mail_search_usera@example.mock"},
		{UserID: "search_user_b_" + gofakeit.UUID(), Username: "user_search_b", PasswordHash: "hash_b", Email: "mail_search_userb@example.mock"},
		{UserID: "search_user_c_" + gofakeit.UUID(), Username: "user_search_c", PasswordHash: "hash_c", Email: "mail_search_userc@example.mock"},
	}

	for _, user := range users {
		s.Require().NoError(s.model.Insert(s.ctx, user), "Insert users before testing failed")
	}

	var initialLimit = s.model.SearchLenLimit
	s.model.SearchLenLimit = 2

	s.T().Cleanup(func() {

		s.model.SearchLenLimit = initialLimit

		matchQuery := bson.D{{
			Key:   s.model.ItemIDKey,
			Value: bson.D{{Key: "$in", Value: bson.A{users[0].UserID, users[1].UserID, users[2].UserID}}},
		}}

		_, err := s.model.Coll.DeleteMany(context.Background(), matchQuery)
		s.NoError(err, "Clearing inserted users for searching failed")
	})

	s.Run("Should get user(s) properly by given options", func() {

		var testCases = map[string]struct {
			Expected models.PaginationData[objects.User]
			Option   SearchOptions
		}{
			"User ID": {
				Expected: models.PaginationData[objects.User]{Page: 1, TotalPages: 1, Count: 1, Data: users[:1]},
				Option:   SearchOptions{CurrentPage: 1, UserID: users[0].UserID},
			},
			"Username (Equal)": {
				Expected: models.PaginationData[objects.User]{Page: 1, TotalPages: 1, Count: 1, Data: users[1:2]},
				Option: SearchOptions{
					CurrentPage: 1,
					Username:    models.MatchOption{MatchType: models.EqualMatchType, Value: users[1].Username},
				},
			},
			"Username (Start with, page 2)": {
				Expected: models.PaginationData[objects.User]{Page: 2, TotalPages: 2, Count: 3, Data: users[2:]},
				Option: SearchOptions{
					CurrentPage: 2,
					Username:    models.MatchOption{MatchType: models.StartWithMatchType, Value: "user_search_"},
				},
			},
			"Email (End with)": {
				Expected: models.PaginationData[objects.User]{Page: 1, TotalPages: 1, Count: 1, Data: users[2:]},
				Option: SearchOptions{
					CurrentPage: 1,
					Email:       models.MatchOption{MatchType: models.EndWithMatchType, Value: "userc@example.mock"},
				},
			},
			"Email (Partial)": {
				Expected: models.PaginationData[objects.User]{Page: 1, TotalPages: 2, Count: 3, Data: users[:2]},
				Option: SearchOptions{
					CurrentPage: 1,
					Email:       models.MatchOption{MatchType: models.PartialMatchType, Value: "_search_"},
				},
			},
		}

		for optionName, testCase := range testCases {

			s.Run(fmt.Sprintf("Search with option %s", optionName), func() {

				paginationData, err := s.model.Search(s.ctx, testCase.Option)
				s.Require().NoError(err, "Searching user failed")
				s.Require().Equal(testCase.Expected, paginationData)
			})
		}
	})

	s.Run("Should throw error when set current page as non-positive value", func() {

		result, err := s.model.Search(s.ctx, SearchOptions{CurrentPage: 0})
		s.Require().ErrorIs(errors.CurrentPageInvalidError.New(), err, "Should have returned error")
		s.Require().Empty(result)
	})

	s.Run("Should throw error when set invalid or unsupported match type", func() {

		result, err := s.model.Search(s.ctx, SearchOptions{
			CurrentPage: 1,
			Username:    models.MatchOption{MatchType: 255, Value: "x"},
		})
		s.Require().True(errors.HasCode(err, errors.MatchTypeInvalidErrorCode))
		s.Require().Empty(result)
	})
}

func (s *UsersModelTestSuite) TestUpdate() {

	s.Run("Should update partial data in user properly", func() {

		var userToUpdate = objects.User{
			UserID:       s.insertedUser.UserID,
			PasswordHash: "rehashed_" + gofakeit.Password(true, true, true, false, false, 16),
		}

		s.Require().NoError(s.model.Update(s.ctx, userToUpdate))

		expected := s.insertedUser
		expected.PasswordHash = userToUpdate.PasswordHash
		s.insertedUser = expected

		actual, err := s.model.GetByID(s.ctx, expected.UserID)
		s.Require().NoError(err, "Getting updated user failed")
		s.Require().EqualValues(expected, actual)
	})

	s.Run("Should throw error when update non-exist user", func() {

		userToUpdate := mockUser()
		err := s.model.Update(s.ctx, userToUpdate)
		s.Require().ErrorIs(errors.ObjectIDNotFoundError.New(userToUpdate.UserID), err)
	})
}

func (s *UsersModelTestSuite) TestDelete() {

	s.Run("Should delete exist user properly", func() {

		s.Require().NoError(s.model.Delete(s.ctx, s.insertedUser.UserID))

		actual, err := s.model.GetByID(s.ctx, s.insertedUser.UserID)
		s.Require().Error(err, "Should throw error after getting deleted user")
		s.Require().Empty(actual, "The user should have been empty")
	})

	s.Run("Should throw error when delete non-exist user", func() {

		s.Require().Error(s.model.Delete(s.ctx, "invalid_user_id"), "Delete exist user failed")
	})
}

func TestUsersModel(t *testing.T) {
	suite.Run(t, new(UsersModelTestSuite))
}

func mockUser() objects.User {

	now := time.Now().UnixNano()

	return objects.User{
		UserID:       gofakeit.UUID(),
		Username:     fmt.Sprintf("username_%d", now),
		PasswordHash: fmt.Sprintf("hash_%d", now),
		Email:        fmt.Sprintf("mail_%d@example.com", now),
	}
}
