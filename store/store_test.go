package store

import (
	"strings"
	"testing"

	"blognews-service/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthor() model.Author {
	return model.Author{ID: "u1", Name: "writer", Avatar: "http://example.com/a.png"}
}

func TestCreatePostComputesReadTime(t *testing.T) {
	s := NewBlogStore()

	post := s.CreatePost(model.PostInput{
		Title:     "T",
		Content:   strings.TrimSpace(strings.Repeat("word ", 250)),
		Excerpt:   "...",
		Tags:      []string{"a"},
		Published: true,
		Author:    testAuthor(),
	})

	assert.Equal(t, 2, post.ReadTime, "250 words at 200 wpm rounds up to 2")
	assert.Equal(t, 0, post.Likes)
	assert.Empty(t, post.Comments)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
}

func TestCreatePostPrepends(t *testing.T) {
	s := NewBlogStore()

	first := s.CreatePost(model.PostInput{Title: "first", Content: "a", Author: testAuthor()})
	second := s.CreatePost(model.PostInput{Title: "second", Content: "b", Author: testAuthor()})

	posts := s.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID, "newest post comes first")
	assert.Equal(t, first.ID, posts[1].ID)
}

func TestUpdatePostReadTimeOnlyWithContent(t *testing.T) {
	s := NewBlogStore()
	post := s.CreatePost(model.PostInput{
		Title:   "T",
		Content: strings.Repeat("word ", 250),
		Author:  testAuthor(),
	})

	title := "new title"
	updated, err := s.UpdatePost(post.ID, model.PostPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.ReadTime, "read time unchanged without new content")
	assert.Equal(t, "new title", updated.Title)

	content := strings.Repeat("word ", 401)
	updated, err = s.UpdatePost(post.ID, model.PostPatch{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.ReadTime, "read time recomputed from the new content only")
}

func TestUpdatePostNotFound(t *testing.T) {
	s := NewBlogStore()
	_, err := s.UpdatePost("missing", model.PostPatch{})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestLikePostIsMonotonic(t *testing.T) {
	s := NewBlogStore()
	post := s.CreatePost(model.PostInput{Title: "T", Content: "c", Author: testAuthor()})

	for i := 1; i <= 5; i++ {
		require.NoError(t, s.LikePost(post.ID))
		got, err := s.GetPost(post.ID)
		require.NoError(t, err)
		assert.Equal(t, i, got.Likes)
	}

	assert.ErrorIs(t, s.LikePost("missing"), ErrPostNotFound)
}

func TestAddCommentToFreshPost(t *testing.T) {
	s := NewBlogStore()
	post := s.CreatePost(model.PostInput{Title: "T", Content: "c", Author: testAuthor()})

	comment, err := s.AddComment(post.ID, model.CommentInput{Content: "nice", Author: testAuthor()})
	require.NoError(t, err)
	assert.Equal(t, 0, comment.Likes)
	assert.Empty(t, comment.Replies)

	got, err := s.GetPost(post.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "nice", got.Comments[0].Content)
}

func TestCommentLifecycle(t *testing.T) {
	s := NewBlogStore()
	post := s.CreatePost(model.PostInput{Title: "T", Content: "c", Author: testAuthor()})
	comment, err := s.AddComment(post.ID, model.CommentInput{Content: "v1", Author: testAuthor()})
	require.NoError(t, err)

	require.NoError(t, s.UpdateComment(post.ID, comment.ID, "v2"))
	require.NoError(t, s.LikeComment(post.ID, comment.ID))

	got, err := s.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Comments[0].Content)
	assert.Equal(t, 1, got.Comments[0].Likes)

	require.NoError(t, s.DeleteComment(post.ID, comment.ID))
	assert.ErrorIs(t, s.UpdateComment(post.ID, comment.ID, "v3"), ErrCommentNotFound)
}

func TestAddReplyNestsOneLevel(t *testing.T) {
	s := NewBlogStore()
	post := s.CreatePost(model.PostInput{Title: "T", Content: "c", Author: testAuthor()})
	comment, err := s.AddComment(post.ID, model.CommentInput{Content: "top", Author: testAuthor()})
	require.NoError(t, err)

	reply, err := s.AddReply(post.ID, comment.ID, model.CommentInput{Content: "reply", Author: testAuthor()})
	require.NoError(t, err)
	assert.Equal(t, 0, reply.Likes)

	got, err := s.GetPost(post.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments[0].Replies, 1)
	assert.Equal(t, "reply", got.Comments[0].Replies[0].Content)

	_, err = s.AddReply(post.ID, "missing", model.CommentInput{Content: "x", Author: testAuthor()})
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeletePostDestroysComments(t *testing.T) {
	s := NewBlogStore()
	post := s.CreatePost(model.PostInput{Title: "T", Content: "c", Author: testAuthor()})
	comment, err := s.AddComment(post.ID, model.CommentInput{Content: "gone", Author: testAuthor()})
	require.NoError(t, err)

	require.NoError(t, s.DeletePost(post.ID))

	_, err = s.GetPost(post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.ErrorIs(t, s.UpdateComment(post.ID, comment.ID, "x"), ErrPostNotFound)
	assert.ErrorIs(t, s.DeleteComment(post.ID, comment.ID), ErrPostNotFound)
}

func TestReturnedPostsAreCopies(t *testing.T) {
	s := NewBlogStore()
	post := s.CreatePost(model.PostInput{Title: "T", Content: "c", Tags: []string{"a"}, Author: testAuthor()})

	got, err := s.GetPost(post.ID)
	require.NoError(t, err)
	got.Tags[0] = "mutated"
	got.Title = "mutated"

	again, err := s.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", again.Title)
	assert.Equal(t, []string{"a"}, again.Tags)
}
