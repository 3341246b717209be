package api

import (
	"errors"
	"log"
	"net/http"

	"blognews-service/metrics"
	"blognews-service/model"
	"blognews-service/store"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	store *store.BlogStore
}

func NewPostHandler(s *store.BlogStore) *PostHandler {
	return &PostHandler{store: s}
}

type createPostRequest struct {
	Title     string   `json:"title" binding:"required"`
	Content   string   `json:"content" binding:"required"`
	Excerpt   string   `json:"excerpt"`
	Tags      []string `json:"tags"`
	Image     string   `json:"image"`
	Published bool     `json:"published"`
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Posts())
}

func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.store.GetPost(c.Param("id"))
	if err != nil {
		notFound(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := sessionUser(c)
	post := h.store.CreatePost(model.PostInput{
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Tags:      req.Tags,
		Image:     req.Image,
		Published: req.Published,
		Author:    authorOf(user),
	})

	metrics.PostsCreated.Inc()
	log.Printf("[INFO] Post %s created by %s", post.ID, user.Name)
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	var patch model.PostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	if !h.requireOwnership(c, id) {
		return
	}

	post, err := h.store.UpdatePost(id, patch)
	if err != nil {
		notFound(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id := c.Param("id")
	if !h.requireOwnership(c, id) {
		return
	}

	if err := h.store.DeletePost(id); err != nil {
		notFound(c, err)
		return
	}
	log.Printf("[INFO] Post %s deleted", id)
	c.Status(http.StatusNoContent)
}

func (h *PostHandler) LikePost(c *gin.Context) {
	if err := h.store.LikePost(c.Param("id")); err != nil {
		notFound(c, err)
		return
	}
	metrics.LikesRecorded.WithLabelValues("post").Inc()
	c.JSON(http.StatusOK, gin.H{"status": "liked"})
}

func (h *PostHandler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.store.AddComment(c.Param("id"), model.CommentInput{
		Content: req.Content,
		Author:  authorOf(sessionUser(c)),
	})
	if err != nil {
		notFound(c, err)
		return
	}

	metrics.CommentsAdded.Inc()
	c.JSON(http.StatusCreated, comment)
}

func (h *PostHandler) AddReply(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.store.AddReply(c.Param("id"), c.Param("commentId"), model.CommentInput{
		Content: req.Content,
		Author:  authorOf(sessionUser(c)),
	})
	if err != nil {
		notFound(c, err)
		return
	}

	metrics.CommentsAdded.Inc()
	c.JSON(http.StatusCreated, reply)
}

func (h *PostHandler) UpdateComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.UpdateComment(c.Param("id"), c.Param("commentId"), req.Content); err != nil {
		notFound(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	if err := h.store.DeleteComment(c.Param("id"), c.Param("commentId")); err != nil {
		notFound(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PostHandler) LikeComment(c *gin.Context) {
	if err := h.store.LikeComment(c.Param("id"), c.Param("commentId")); err != nil {
		notFound(c, err)
		return
	}
	metrics.LikesRecorded.WithLabelValues("comment").Inc()
	c.JSON(http.StatusOK, gin.H{"status": "liked"})
}

// requireOwnership rejects edits and deletes by anyone but the post's
// author. Missing posts fall through to the store's NotFound.
func (h *PostHandler) requireOwnership(c *gin.Context, postID string) bool {
	post, err := h.store.GetPost(postID)
	if err != nil {
		notFound(c, err)
		return false
	}
	user := sessionUser(c)
	if post.Author.ID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the author of this post"})
		return false
	}
	return true
}

func notFound(c *gin.Context, err error) {
	if errors.Is(err, store.ErrPostNotFound) || errors.Is(err, store.ErrCommentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func sessionUser(c *gin.Context) model.User {
	if v, ok := c.Get("user"); ok {
		if user, ok := v.(model.User); ok {
			return user
		}
	}
	return model.User{}
}

func authorOf(user model.User) model.Author {
	return model.Author{ID: user.ID, Name: user.Name, Avatar: user.Avatar}
}
