package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Dessert struct {
	gorm.Model
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description" binding:"required"`
	PackOf      int            `json:"packOf" binding:"required,min=1"`
	PriceCents  int64          `json:"priceCents" binding:"required,min=1"`
	Ingredients string         `json:"ingredients"`
	Tags        datatypes.JSON `json:"tags"`
	ImageURL    string         `json:"imageUrl"`
	InStock     bool           `json:"inStock"`
	IsFeatured  bool           `json:"isFeatured"`
}
