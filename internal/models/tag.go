package models

type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name  string `gorm:"type:varchar(200);not null" json:"name" binding:"required,max=200" example:"Breakfast"`
	Color string `gorm:"type:varchar(7);not null" json:"color" binding:"required,tagcolor" example:"#E26C2D"`
	Slug  string `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug" binding:"required,max=200,slug" example:"breakfast"`
}
