package models

import (
	"time"
)

// Post is a single message inside a thread. AuthorID is empty when the post
// has no author left (the author account was deleted); posts outlive their
// author. LastEditDate equals CreationDate until the post is edited.
type Post struct {
	PostID       string    `bson:"post_id" json:"post_id"`
	AuthorID     string    `bson:"author_id" json:"author_id"`
	Content      string    `bson:"content" json:"content"`
	ThreadID     string    `bson:"thread_id" json:"thread_id"`
	CreationDate time.Time `bson:"creation_date" json:"creation_date"`
	LastEditDate time.Time `bson:"last_edit_date" json:"last_edit_date"`
}
