package objects

import "reflect"

type Service struct {
	ServiceID   string   `json:"_id" bson:"service_id,omitempty"`
	CategoryID  string   `json:"category_id" bson:"category_id,omitempty"`
	Name        string   `json:"name" bson:"name,omitempty"`
	Provider    string   `json:"provider,omitempty" bson:"provider,omitempty"`
	Description string   `json:"description" bson:"description,omitempty"`
	Country     string   `json:"country" bson:"country,omitempty"`
	Image       string   `json:"image,omitempty" bson:"image,omitempty"`
	URL         string   `json:"url,omitempty" bson:"url,omitempty"`
	Tags        []string `json:"tags,omitempty" bson:"tags,omitempty"`
}

func (s Service) GetID() string {
	return s.ServiceID
}

func (s Service) IsNil() bool {
	return reflect.ValueOf(s).IsZero()
}
