package models

type Thread struct {
	ThreadID   string   `bson:"thread_id" json:"thread_id"`
	Title      string   `bson:"title" json:"title"`
	CategoryID string   `bson:"category_id" json:"category_id"`
	Posts      []string `bson:"posts" json:"posts"`
}
