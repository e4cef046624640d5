package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"werkstatt/auth"
	"werkstatt/errors"
	"werkstatt/services"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.posts.ListCategories())
}

func (h *Handlers) ListPosts(c *gin.Context) {
	posts, err := h.posts.ListPosts(c.Query("category"), auth.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handlers) GetPost(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	post, err := h.posts.GetPost(id, auth.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handlers) AddPost(c *gin.Context) {
	var input services.PostInput
	if !h.bind(c, &input) {
		return
	}
	post, err := h.posts.AddPost(auth.UserID(c), input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *Handlers) AddComment(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	var input services.CommentInput
	if !h.bind(c, &input) {
		return
	}
	comment, err := h.posts.AddComment(auth.UserID(c), id, input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *Handlers) AddReply(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	commentID, err := strconv.Atoi(c.Param("commentId"))
	if err != nil {
		h.fail(c, fmt.Errorf("%w: comment id must be a number", errors.ErrInvalidRequest))
		return
	}
	var input services.CommentInput
	if !h.bind(c, &input) {
		return
	}
	reply, err := h.posts.AddReply(auth.UserID(c), id, commentID, input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, reply)
}

func (h *Handlers) ToggleLike(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	res, err := h.posts.ToggleLike(auth.UserID(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handlers) ResetPosts(c *gin.Context) {
	if err := h.posts.ResetPosts(); err != nil {
		h.fail(c, err)
		return
	}
	h.log.Info("Feed reset", "user_id", auth.UserID(c))
	c.Status(http.StatusNoContent)
}

func (h *Handlers) postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.fail(c, fmt.Errorf("%w: post id must be a number", errors.ErrInvalidRequest))
		return 0, false
	}
	return id, true
}

// bind decodes the JSON body, answering 400 on malformed input.
func (h *Handlers) bind(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		h.fail(c, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err))
		return false
	}
	return true
}
