package store

import (
	"errors"
	"sync"
	"time"

	"blognews-service/model"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// BlogStore owns the in-memory collection of posts for the lifetime of
// the process. Nothing is persisted; a restart starts from empty.
type BlogStore struct {
	mu    sync.RWMutex
	posts []model.Post
}

func NewBlogStore() *BlogStore {
	return &BlogStore{}
}

// CreatePost materializes a new post from caller input and inserts it at
// the front of the collection, keeping most-recent-first order. The store
// performs no validation; that is the caller's concern.
func (s *BlogStore) CreatePost(input model.PostInput) model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	post := model.Post{
		ID:        "post-" + uuid.NewString(),
		Title:     input.Title,
		Content:   input.Content,
		Excerpt:   input.Excerpt,
		Author:    input.Author,
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      append([]string(nil), input.Tags...),
		ReadTime:  model.EstimateReadTime(input.Content),
		Image:     input.Image,
		Published: input.Published,
		Likes:     0,
		Comments:  []model.Comment{},
	}

	s.posts = append([]model.Post{post}, s.posts...)
	return clonePost(post)
}

// UpdatePost merges non-nil patch fields into the matching post. The read
// time is recomputed only when the patch carries new content.
func (s *BlogStore) UpdatePost(id string, patch model.PostPatch) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPost(id)
	if post == nil {
		return model.Post{}, ErrPostNotFound
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
		post.ReadTime = model.EstimateReadTime(*patch.Content)
	}
	if patch.Excerpt != nil {
		post.Excerpt = *patch.Excerpt
	}
	if patch.Tags != nil {
		post.Tags = append([]string(nil), (*patch.Tags)...)
	}
	if patch.Image != nil {
		post.Image = *patch.Image
	}
	if patch.Published != nil {
		post.Published = *patch.Published
	}
	post.UpdatedAt = time.Now().UTC()

	return clonePost(*post), nil
}

// DeletePost removes the post and every comment attached to it. There is
// no soft delete.
func (s *BlogStore) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return ErrPostNotFound
}

func (s *BlogStore) GetPost(id string) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post := s.findPost(id)
	if post == nil {
		return model.Post{}, ErrPostNotFound
	}
	return clonePost(*post), nil
}

// Posts returns a point-in-time copy of the collection, newest first.
func (s *BlogStore) Posts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Post, len(s.posts))
	for i := range s.posts {
		out[i] = clonePost(s.posts[i])
	}
	return out
}

func (s *BlogStore) AddComment(postID string, input model.CommentInput) (model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPost(postID)
	if post == nil {
		return model.Comment{}, ErrPostNotFound
	}

	comment := model.Comment{
		ID:        "comment-" + uuid.NewString(),
		Content:   input.Content,
		Author:    input.Author,
		CreatedAt: time.Now().UTC(),
		Likes:     0,
		Replies:   []model.Comment{},
	}
	post.Comments = append(post.Comments, comment)

	return cloneComment(comment), nil
}

// AddReply appends a reply under an existing top-level comment. Replies
// nest one level only; replying to a reply is not supported.
func (s *BlogStore) AddReply(postID, commentID string, input model.CommentInput) (model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPost(postID)
	if post == nil {
		return model.Comment{}, ErrPostNotFound
	}
	comment := findComment(post, commentID)
	if comment == nil {
		return model.Comment{}, ErrCommentNotFound
	}

	reply := model.Comment{
		ID:        "comment-" + uuid.NewString(),
		Content:   input.Content,
		Author:    input.Author,
		CreatedAt: time.Now().UTC(),
		Likes:     0,
	}
	comment.Replies = append(comment.Replies, reply)

	return cloneComment(reply), nil
}

func (s *BlogStore) UpdateComment(postID, commentID, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPost(postID)
	if post == nil {
		return ErrPostNotFound
	}
	comment := findComment(post, commentID)
	if comment == nil {
		return ErrCommentNotFound
	}
	comment.Content = content
	return nil
}

func (s *BlogStore) DeleteComment(postID, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPost(postID)
	if post == nil {
		return ErrPostNotFound
	}
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			post.Comments = append(post.Comments[:i], post.Comments[i+1:]...)
			return nil
		}
	}
	return ErrCommentNotFound
}

// LikePost increments the like counter by exactly one. There is no unlike
// and no per-user deduplication; the counter only grows.
func (s *BlogStore) LikePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPost(id)
	if post == nil {
		return ErrPostNotFound
	}
	post.Likes++
	return nil
}

func (s *BlogStore) LikeComment(postID, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPost(postID)
	if post == nil {
		return ErrPostNotFound
	}
	comment := findComment(post, commentID)
	if comment == nil {
		return ErrCommentNotFound
	}
	comment.Likes++
	return nil
}

// findPost returns a pointer into the backing slice; callers must hold
// the lock and must not retain the pointer past it.
func (s *BlogStore) findPost(id string) *model.Post {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return &s.posts[i]
		}
	}
	return nil
}

func findComment(post *model.Post, commentID string) *model.Comment {
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			return &post.Comments[i]
		}
	}
	return nil
}

func clonePost(p model.Post) model.Post {
	p.Tags = append([]string(nil), p.Tags...)
	comments := make([]model.Comment, len(p.Comments))
	for i := range p.Comments {
		comments[i] = cloneComment(p.Comments[i])
	}
	p.Comments = comments
	return p
}

func cloneComment(c model.Comment) model.Comment {
	if c.Replies != nil {
		replies := make([]model.Comment, len(c.Replies))
		for i := range c.Replies {
			replies[i] = cloneComment(c.Replies[i])
		}
		c.Replies = replies
	}
	return c
}
