package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/repository"
)

type BookHandler struct {
	repo repository.BookRepository
}

func NewBookHandler(repo repository.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.PATCH("/:id", h.PartialUpdate)
	rg.DELETE("/:id", h.Delete)
}

func (h *BookHandler) Create(c *gin.Context) {
	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if book.ID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a new book cannot already have an id"})
		return
	}
	// re-sync the denormalized foreign key after raw JSON binding
	book.SetCategory(book.Category)
	if err := book.Validate(); err != nil {
		writeError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	created, err := h.repo.Save(ctx, &book)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if book.ID == nil || *book.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	book.SetCategory(book.Category)
	if err := book.Validate(); err != nil {
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

	updated, err := h.repo.Save(ctx, &book)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PartialUpdate applies merge-patch semantics: only non-null scalar fields
// replace the stored values; the authors set is left untouched.
func (h *BookHandler) PartialUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.Book
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
	if patch.Title != nil {
		existing.Title = patch.Title
	}
	if patch.PublicationDate != nil {
		existing.PublicationDate = patch.PublicationDate
	}
	if patch.CopiesOwned != nil {
		existing.CopiesOwned = patch.CopiesOwned
	}
	if patch.Status != nil {
		existing.Status = patch.Status
	}
	// the merged entity must satisfy the same constraints as a full update
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

func (h *BookHandler) List(c *gin.Context) {
	// eagerload is accepted for API compatibility; both values run the same
	// joined query today
	_ = c.DefaultQuery("eagerload", "true")

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	list, err := h.repo.FindAll(ctx, nil)
	if err != nil {
		writeError(c, err)
		return
	}
	if list == nil {
		list = []*models.Book{}
	}
	if wantsNDJSON(c) {
		streamNDJSON(c, list)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	book, err := h.repo.FindByID(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *BookHandler) Delete(c *gin.Context) {
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
