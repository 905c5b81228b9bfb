package objects

import "reflect"

type Category struct {
	CategoryID string `json:"_id" bson:"category_id,omitempty"`
	Title      string `json:"title" bson:"title,omitempty"`
}

func (c Category) GetID() string {
	return c.CategoryID
}

func (c Category) IsNil() bool {
	return reflect.ValueOf(c).IsZero()
}
