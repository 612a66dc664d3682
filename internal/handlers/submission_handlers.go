package handlers

import (
	"errors"
	"math"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gift-card-checker-service/internal/cards"
	"gift-card-checker-service/internal/events"
	"gift-card-checker-service/internal/models"
	"gift-card-checker-service/internal/repository"
)

// SubmissionHandler serves the gift card submission endpoints.
type SubmissionHandler struct {
	repo             repository.SubmissionRepository
	publisher        *events.Publisher
	log              *logrus.Entry
	rejectDuplicates bool
}

func NewSubmissionHandler(repo repository.SubmissionRepository, publisher *events.Publisher, logger *logrus.Logger, rejectDuplicates bool) *SubmissionHandler {
	return &SubmissionHandler{
		repo:             repo,
		publisher:        publisher,
		log:              logger.WithField("component", "handlers.submissions"),
		rejectDuplicates: rejectDuplicates,
	}
}

// randomBalance synthesizes a balance in [50.00, 549.99]. There is no real
// retailer lookup behind this service; the value only has to look like money.
func randomBalance() float64 {
	cents := rand.Intn(50000) + 5000
	return float64(cents) / 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ListSubmissions returns every stored submission, newest first.
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	if submissions == nil {
		submissions = []models.Submission{}
	}
	c.JSON(http.StatusOK, submissions)
}

// CreateSubmission stores a new gift card check and returns the stored record.
// The card number is required; the balance is synthesized when omitted.
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var req models.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	cardNumber := cards.Normalize(req.Card())
	if cardNumber == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "card_number is required"})
		return
	}
	if !cards.Valid(cardNumber) {
		h.log.WithField("card_number", cards.Format(cardNumber)).
			Debug("Submission is not a 16 character card number")
	}

	if h.rejectDuplicates {
		exists, err := h.repo.ExistsByCard(c.Request.Context(), cardNumber)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
			return
		}
		if exists {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: repository.ErrDuplicateCard.Error()})
			return
		}
	}

	balance := randomBalance()
	if req.Balance != nil {
		balance = round2(*req.Balance)
	}

	submission := &models.Submission{
		InputData: cardNumber,
		Balance:   balance,
	}
	if err := h.repo.Create(c.Request.Context(), submission); err != nil {
		if errors.Is(err, repository.ErrDuplicateCard) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	h.publisher.PublishSubmissionCreated(submission.InputData, submission.Balance, submission.DateChecked)

	c.JSON(http.StatusCreated, submission)
}

// DeleteAllSubmissions wipes the store. Deleting an empty store succeeds with a
// no-op message.
func (h *SubmissionHandler) DeleteAllSubmissions(c *gin.Context) {
	deleted, err := h.repo.DeleteAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	if deleted == 0 {
		c.JSON(http.StatusOK, models.MessageResponse{Message: "No data entries to delete"})
		return
	}

	h.publisher.PublishSubmissionsCleared(deleted)

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "All data entries deleted successfully",
		Deleted: deleted,
	})
}

// CountSubmissions reports how many submissions are stored.
func (h *SubmissionHandler) CountSubmissions(c *gin.Context) {
	count, err := h.repo.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.CountResponse{Count: count})
}

// CheckCard reports whether a card number was already submitted.
func (h *SubmissionHandler) CheckCard(c *gin.Context) {
	var req models.CheckCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	cardNumber := cards.Normalize(req.Card())
	if cardNumber == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "card_number is required"})
		return
	}

	exists, err := h.repo.ExistsByCard(c.Request.Context(), cardNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ExistsResponse{Exists: exists})
}

// DeleteByCard removes every submission matching the card number path param.
func (h *SubmissionHandler) DeleteByCard(c *gin.Context) {
	cardNumber := cards.Normalize(c.Param("cardNumber"))
	if cardNumber == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "card_number is required"})
		return
	}

	deleted, err := h.repo.DeleteByCard(c.Request.Context(), cardNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	if deleted == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "card number not found"})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Data entries deleted successfully",
		Deleted: deleted,
	})
}
