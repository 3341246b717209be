package model

import "time"

// Author is a denormalized copy of the user who wrote a post or comment.
// It is embedded at write time rather than referenced, matching how the
// reading UI renders bylines without a join.
type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Tags      []string  `json:"tags"`
	ReadTime  int       `json:"readTime"`
	Image     string    `json:"image,omitempty"`
	Published bool      `json:"published"`
	Likes     int       `json:"likes"`
	Comments  []Comment `json:"comments"`
}

type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `json:"likes"`
	Replies   []Comment `json:"replies,omitempty"`
}

// PostInput carries the caller-supplied fields for a new post. The store
// fills in everything else (id, timestamps, readTime, counters).
type PostInput struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Excerpt   string   `json:"excerpt"`
	Tags      []string `json:"tags"`
	Image     string   `json:"image,omitempty"`
	Published bool     `json:"published"`
	Author    Author   `json:"author"`
}

// PostPatch is a partial update; nil fields are left untouched.
type PostPatch struct {
	Title     *string   `json:"title,omitempty"`
	Content   *string   `json:"content,omitempty"`
	Excerpt   *string   `json:"excerpt,omitempty"`
	Tags      *[]string `json:"tags,omitempty"`
	Image     *string   `json:"image,omitempty"`
	Published *bool     `json:"published,omitempty"`
}

type CommentInput struct {
	Content string `json:"content"`
	Author  Author `json:"author"`
}

// Article is one externally sourced, read-only news item normalized into
// the same shape the reading UI uses for posts.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Tags      []string  `json:"tags"`
	ReadTime  int       `json:"readTime"`
	Image     string    `json:"image,omitempty"`
	URL       string    `json:"url"`
	Source    string    `json:"source"`
}

type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}
