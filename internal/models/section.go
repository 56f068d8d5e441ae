package models

// Section is a top-level forum area ("news", "forum"). Sections are seeded at
// startup and never created or deleted through the API. Title doubles as the
// lookup key.
type Section struct {
	SectionID  string   `bson:"section_id" json:"section_id"`
	Title      string   `bson:"title" json:"title"`
	Categories []string `bson:"categories" json:"categories"`
}
