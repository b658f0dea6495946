package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID    uint   `json:"userId" gorm:"index"`
	ProductID uint   `json:"productId" gorm:"index"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment" gorm:"type:text"`
}

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}
