// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package models

import "time"

// Post is a seed-only content entity. It exists in the development seed
// data and the schema, but no API route serves it.
type Post struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Published bool      `json:"published" db:"published"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// TableName returns the database table backing Post.
func (p Post) TableName() string {
	return "posts"
}

// Comment is a seed-only content entity attached to a Post.
type Comment struct {
	ID        string    `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	PostID    string    `json:"postId" db:"post_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// TableName returns the database table backing Comment.
func (c Comment) TableName() string {
	return "comments"
}
