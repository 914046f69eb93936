package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"claims-management/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ClaimStore is the persistence capability the handlers run against.
// *repository.ClaimRepository satisfies it; tests substitute a fake.
type ClaimStore interface {
	Insert(ctx context.Context, in models.SubmitClaimInput) (int64, error)
	List(ctx context.Context, filter models.ClaimFilter) ([]models.Claim, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Claim, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type ClaimHandler struct {
	store ClaimStore
}

func NewClaimHandler(store ClaimStore) *ClaimHandler {
	return &ClaimHandler{store: store}
}

// POST /api/claims
func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	var input models.SubmitClaimInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	// A zero amount counts as missing, matching the required-field rule.
	if input.Amount.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if !models.IsValidEmployeeID(input.EmployeeID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Employee ID format"})
		return
	}

	id, err := h.store.Insert(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateSubmission) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A claim for this employee ID has already been submitted today"})
			return
		}
		log.Error().Err(err).Str("employee_id", input.EmployeeID).Msg("submit claim failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Claim submitted successfully",
		"claimId": id,
	})
}

// GET /api/claims (optional filters: search, status)
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	filter := models.ClaimFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	claims, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("list claims failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, claims)
}

// PUT /api/claims/:id
func (h *ClaimHandler) UpdateClaimStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !models.IsDecisionStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	// A non-numeric id cannot reference any claim.
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Claim not found"})
		return
	}

	claim, err := h.store.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		if errors.Is(err, models.ErrClaimNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Claim not found"})
			return
		}
		log.Error().Err(err).Int64("claim_id", id).Msg("update claim status failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Claim " + claim.Status + " successfully",
		"claim":   claim,
	})
}

// DELETE /api/claims
func (h *ClaimHandler) ClearClaims(c *gin.Context) {
	deleted, err := h.store.DeleteAll(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("clear claims failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All claims cleared successfully",
		"deleted": deleted,
	})
}
