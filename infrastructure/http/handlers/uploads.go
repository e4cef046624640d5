package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"werkstatt/errors"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for boundaries and headers around the image part.
const multipartOverhead = 64 << 10

// Upload stores the multipart field "image" and answers with its public URL.
func (h *Handlers) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)

	header, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			h.fail(c, errors.ErrUploadTooLarge)
			return
		}
		h.fail(c, fmt.Errorf("%w: multipart field image is required", errors.ErrInvalidRequest))
		return
	}
	file, err := header.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer func() { _ = file.Close() }()

	res, err := h.uploads.Upload(file, header.Size)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
