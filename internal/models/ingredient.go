package models

// Ingredient is a catalogue entry; a name may repeat with different units.
type Ingredient struct {
	ID              uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name            string `gorm:"type:varchar(200);not null;uniqueIndex:idx_ingredient_name_unit" json:"name" binding:"required,max=200" example:"Cabbage"`
	MeasurementUnit string `gorm:"type:varchar(200);not null;uniqueIndex:idx_ingredient_name_unit" json:"measurement_unit" binding:"required,max=200" example:"kg"`
}
