package ingredient

type Ingredient struct {
	ID              int64  `gorm:"column:id;primaryKey" json:"id"`
	Name            string `gorm:"column:name;size:200;not null;uniqueIndex:idx_ingredient_name_unit;index" json:"name"`
	MeasurementUnit string `gorm:"column:measurement_unit;size:200;not null;uniqueIndex:idx_ingredient_name_unit" json:"measurement_unit"`
}

func (Ingredient) TableName() string { return "ingredients" }
