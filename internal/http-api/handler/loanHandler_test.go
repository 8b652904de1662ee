package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"libraryhub/internal/http-api/handler"
	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/repository"
)

func datePtr(d models.Date) *models.Date { return &d }

// --- MOCK REPOSITORY ---

type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) FindByID(ctx context.Context, id int64) (*models.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Loan), args.Error(1)
}

func (m *MockLoanRepository) FindAll(ctx context.Context, page *repository.Pageable) ([]*models.Loan, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Loan), args.Error(1)
}

func (m *MockLoanRepository) Save(ctx context.Context, loan *models.Loan) (*models.Loan, error) {
	args := m.Called(ctx, loan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Loan), args.Error(1)
}

func (m *MockLoanRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLoanRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockLoanRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- SETUP ---

func setupLoanRouter(mockRepo *MockLoanRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewLoanHandler(mockRepo)
	h.RegisterRoutes(r.Group("/api/loans"))
	return r
}

// --- TESTS ---

func TestLoanHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockLoanRepository)
		r := setupLoanRouter(mockRepo)

		saved := &models.Loan{
			ID:       int64Ptr(1),
			LoanDate: datePtr(models.NewDate(2026, time.March, 14)),
		}
		mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(l *models.Loan) bool {
			// both fks rebuilt from the nested objects
			return l.ID == nil &&
				l.BookID != nil && *l.BookID == 4 &&
				l.MemberID != nil && *l.MemberID == 8
		})).Return(saved, nil).Once()

		body := `{"loanDate":"2026-03-14","book":{"id":4},"member":{"id":8}}`
		req, _ := http.NewRequest(http.MethodPost, "/api/loans", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("RejectsExistingID", func(t *testing.T) {
		mockRepo := new(MockLoanRepository)
		r := setupLoanRouter(mockRepo)

		body := `{"id":3,"loanDate":"2026-03-14"}`
		req, _ := http.NewRequest(http.MethodPost, "/api/loans", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockRepo.AssertNotCalled(t, "Save")
	})

	t.Run("MissingLoanDate", func(t *testing.T) {
		mockRepo := new(MockLoanRepository)
		r := setupLoanRouter(mockRepo)

		body := `{"book":{"id":4}}`
		req, _ := http.NewRequest(http.MethodPost, "/api/loans", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoanHandler_Get(t *testing.T) {
	t.Run("SuccessWithJoinedObjects", func(t *testing.T) {
		mockRepo := new(MockLoanRepository)
		r := setupLoanRouter(mockRepo)

		loan := &models.Loan{
			ID:       int64Ptr(5),
			LoanDate: datePtr(models.NewDate(2026, time.March, 14)),
			Book:     &models.Book{ID: int64Ptr(4), Title: stringPtr("Dune")},
			Member:   &models.Reader{ID: int64Ptr(8), FirstName: stringPtr("Ada")},
		}
		mockRepo.On("FindByID", mock.Anything, int64(5)).Return(loan, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/loans/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "2026-03-14", response["loanDate"])
		book := response["book"].(map[string]interface{})
		assert.Equal(t, "Dune", book["title"])
		member := response["member"].(map[string]interface{})
		assert.Equal(t, "Ada", member["firstName"])
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockLoanRepository)
		r := setupLoanRouter(mockRepo)

		mockRepo.On("FindByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/loans/404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLoanHandler_PartialUpdate(t *testing.T) {
	t.Run("ReturnDateOnly", func(t *testing.T) {
		mockRepo := new(MockLoanRepository)
		r := setupLoanRouter(mockRepo)

		existing := &models.Loan{
			ID:       int64Ptr(5),
			LoanDate: datePtr(models.NewDate(2026, time.March, 14)),
			BookID:   int64Ptr(4),
			MemberID: int64Ptr(8),
		}
		mockRepo.On("ExistsByID", mock.Anything, int64(5)).Return(true, nil).Once()
		mockRepo.On("FindByID", mock.Anything, int64(5)).Return(existing, nil).Once()
		mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(l *models.Loan) bool {
			// loan date and fks survive, only the return date changes
			return l.LoanDate.Equal(models.NewDate(2026, time.March, 14)) &&
				l.ReturnDate != nil && l.ReturnDate.Equal(models.NewDate(2026, time.April, 2)) &&
				l.BookID != nil && *l.BookID == 4
		})).Return(existing, nil).Once()

		body := `{"id":5,"returnDate":"2026-04-02"}`
		req, _ := http.NewRequest(http.MethodPatch, "/api/loans/5", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("MissingEntity", func(t *testing.T) {
		mockRepo := new(MockLoanRepository)
		r := setupLoanRouter(mockRepo)

		mockRepo.On("ExistsByID", mock.Anything, int64(90)).Return(false, nil).Once()

		body := `{"id":90,"returnDate":"2026-04-02"}`
		req, _ := http.NewRequest(http.MethodPatch, "/api/loans/90", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockRepo.AssertNotCalled(t, "Save")
	})
}

func TestLoanHandler_Delete(t *testing.T) {
	mockRepo := new(MockLoanRepository)
	r := setupLoanRouter(mockRepo)

	t.Run("Success", func(t *testing.T) {
		mockRepo.On("DeleteByID", mock.Anything, int64(12)).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/loans/12", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockRepo.AssertExpectations(t)
	})
}
