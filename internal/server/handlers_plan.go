package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nutrisync/internal/planner"
)

// PlanHandler serves plan generation, persistence and single-meal
// regeneration.
type PlanHandler struct {
	orch        *planner.Orchestrator
	plans       *planner.Repository
	aiAvailable bool
	log         *zap.Logger
}

func NewPlanHandler(orch *planner.Orchestrator, plans *planner.Repository, aiAvailable bool, log *zap.Logger) *PlanHandler {
	return &PlanHandler{orch: orch, plans: plans, aiAvailable: aiAvailable, log: log}
}

func (h *PlanHandler) Health(c *gin.Context) {
	mode := "fallback"
	if h.aiAvailable {
		mode = "gemini-1.5-flash"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"planner":  mode,
		"database": "sqlite",
	})
}

// GeneratePlan always succeeds for a well-formed profile. Authenticated
// requests get the plan persisted automatically.
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var profile planner.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile"})
		return
	}

	plan := h.orch.GeneratePlan(c.Request.Context(), profile)

	if userID, ok := currentUserID(c); ok {
		if _, err := h.plans.Save(c.Request.Context(), userID, profile.Goal, plan); err != nil {
			// Persistence failure must not cost the caller their plan.
			h.log.Error("failed to persist generated plan", zap.Error(err), zap.Int64("user_id", userID))
		}
	}
	c.JSON(http.StatusOK, plan)
}

type savePlanRequest struct {
	Goal string        `json:"goal"`
	Plan *planner.Plan `json:"plan" binding:"required"`
}

func (h *PlanHandler) SavePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}

	var req savePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan is required"})
		return
	}

	id, err := h.plans.Save(c.Request.Context(), userID, req.Goal, req.Plan)
	if err != nil {
		h.log.Error("failed to save plan", zap.Error(err), zap.Int64("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save plan"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *PlanHandler) MyPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	plans, err := h.plans.ListRecentByUser(c.Request.Context(), userID, limit)
	if err != nil {
		h.log.Error("failed to list plans", zap.Error(err), zap.Int64("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *PlanHandler) RegenerateMeal(c *gin.Context) {
	var req planner.RegenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid regeneration request"})
		return
	}

	meal, err := planner.RegenerateMeal(req)
	if err != nil {
		if errors.Is(err, planner.ErrNoReplacementMeal) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no replacement meal available"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}
