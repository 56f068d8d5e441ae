package models

type Category struct {
	CategoryID string   `bson:"category_id" json:"category_id"`
	Title      string   `bson:"title" json:"title"`
	SectionID  string   `bson:"section_id" json:"section_id"`
	Threads    []string `bson:"threads" json:"threads"`
}
