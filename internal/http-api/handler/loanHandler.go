package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/repository"
)

type LoanHandler struct {
	repo repository.LoanRepository
}

func NewLoanHandler(repo repository.LoanRepository) *LoanHandler {
	return &LoanHandler{repo: repo}
}

func (h *LoanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.PATCH("/:id", h.PartialUpdate)
	rg.DELETE("/:id", h.Delete)
}

func (h *LoanHandler) Create(c *gin.Context) {
	var loan models.Loan
	if err := c.ShouldBindJSON(&loan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if loan.ID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a new loan cannot already have an id"})
		return
	}
	// re-sync denormalized foreign keys after raw JSON binding
	loan.SetBook(loan.Book)
	loan.SetMember(loan.Member)
	if err := loan.Validate(); err != nil {
		writeError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	created, err := h.repo.Save(ctx, &loan)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *LoanHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var loan models.Loan
	if err := c.ShouldBindJSON(&loan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if loan.ID == nil || *loan.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	loan.SetBook(loan.Book)
	loan.SetMember(loan.Member)
	if err := loan.Validate(); err != nil {
		writeError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	exists, err := h.repo.ExistsByID(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "entity not found"})
		return
	}

	updated, err := h.repo.Save(ctx, &loan)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *LoanHandler) PartialUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.Loan
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if patch.ID == nil || *patch.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	exists, err := h.repo.ExistsByID(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "entity not found"})
		return
	}

	existing, err := h.repo.FindByID(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if patch.LoanDate != nil {
		existing.LoanDate = patch.LoanDate
	}
	if patch.ReturnDate != nil {
		existing.ReturnDate = patch.ReturnDate
	}
	if err := existing.Validate(); err != nil {
		writeError(c, err)
		return
	}

	updated, err := h.repo.Save(ctx, existing)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *LoanHandler) List(c *gin.Context) {
	// same compatibility no-op as for books
	_ = c.DefaultQuery("eagerload", "true")

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	list, err := h.repo.FindAll(ctx, nil)
	if err != nil {
		writeError(c, err)
		return
	}
	if list == nil {
		list = []*models.Loan{}
	}
	if wantsNDJSON(c) {
		streamNDJSON(c, list)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *LoanHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	loan, err := h.repo.FindByID(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, loan)
}

func (h *LoanHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.repo.DeleteByID(ctx, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
