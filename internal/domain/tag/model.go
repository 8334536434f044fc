package tag

type Tag struct {
	ID    int64  `gorm:"column:id;primaryKey" json:"id"`
	Name  string `gorm:"column:name;size:200;not null;uniqueIndex" json:"name"`
	Color string `gorm:"column:color;size:7;not null;uniqueIndex" json:"color"`
	Slug  string `gorm:"column:slug;size:200;not null;uniqueIndex" json:"slug"`
}

func (Tag) TableName() string { return "tags" }

type CreateRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Color string `json:"color" validate:"required,len=7,hexcolor"`
	Slug  string `json:"slug" validate:"required,max=200,slug"`
}

// Defaults are the tags seeded into a fresh database.
func Defaults() []Tag {
	return []Tag{
		{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
		{Name: "Lunch", Color: "#49B64E", Slug: "lunch"},
		{Name: "Dinner", Color: "#8775D2", Slug: "dinner"},
	}
}
