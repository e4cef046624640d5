package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) SearchGuides(c *gin.Context) {
	guides, err := h.guides.SearchGuides(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guides": guides, "count": len(guides)})
}

func (h *Handlers) GetGuide(c *gin.Context) {
	guide, err := h.guides.GetGuide(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, guide)
}

func (h *Handlers) FilterExperts(c *gin.Context) {
	experts, err := h.experts.FilterExperts(c.Request.Context(), c.Query("q"), c.Query("specialty"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, experts)
}

func (h *Handlers) ListSpecialties(c *gin.Context) {
	c.JSON(http.StatusOK, h.experts.ListSpecialties())
}

func (h *Handlers) ExpertsByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, h.experts.ExpertsByCategory(c.Param("category")))
}

func (h *Handlers) GetExpert(c *gin.Context) {
	expert, err := h.experts.GetExpert(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, expert)
}
