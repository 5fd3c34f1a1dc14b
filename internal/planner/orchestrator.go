package planner

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"nutrisync/internal/llm"
	"nutrisync/internal/nutrition"
	"nutrisync/internal/safety"
)

// Orchestrator runs the full plan pipeline: energy targets, blocklist
// compilation, protein resolution, the external generation attempt, and
// the fallback synthesizer. A nil text generator skips the external
// attempt entirely.
type Orchestrator struct {
	textGen llm.TextGenerator
	log     *zap.Logger
}

func NewOrchestrator(textGen llm.TextGenerator, log *zap.Logger) *Orchestrator {
	return &Orchestrator{textGen: textGen, log: log}
}

// GeneratePlan never returns an error: every failure mode of the external
// channel degrades to the synthesized plan. The returned plan has always
// passed blocklist validation.
func (o *Orchestrator) GeneratePlan(ctx context.Context, profile Profile) *Plan {
	targets := nutrition.TargetsFor(
		profile.WeightKg, profile.HeightCm, profile.Age,
		profile.Gender, profile.Activity, profile.Goal,
		profile.StepsToday, profile.CaloriesBurned,
	)
	bl := safety.Compile(profile.Allergies, profile.DietaryStyle)
	allowed, warnings := ResolveProteins(profile.Proteins, profile.DietaryStyle, profile.Allergies)

	if o.textGen != nil {
		if plan, err := o.tryExternal(ctx, profile, targets, allowed, bl); err == nil {
			plan.Warnings = warnings
			return plan
		} else {
			o.log.Warn("external plan generation failed, using fallback", zap.Error(err))
		}
	}

	return FallbackPlan(profile, targets, allowed, warnings, bl)
}

func (o *Orchestrator) tryExternal(ctx context.Context, profile Profile, targets nutrition.Targets, allowed []string, bl safety.BlockList) (*Plan, error) {
	prompt, err := buildPlanPrompt(profile, targets, allowed, bl)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	raw, err := o.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}

	plan := &Plan{}
	if err := json.Unmarshal([]byte(llm.StripFences(raw)), plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan JSON: %w", err)
	}
	if err := checkShape(plan); err != nil {
		return nil, err
	}

	ok, violations := ValidatePlan(plan.Days, bl)
	if !ok {
		o.log.Warn("external plan failed blocklist validation",
			zap.Int("violations", len(violations)),
			zap.Any("first", violations[0]))
		return nil, fmt.Errorf("plan contains %d blocklisted ingredients", len(violations))
	}

	// The computed targets are authoritative regardless of what the model
	// echoed back.
	plan.BMR = targets.BMR
	plan.TDEE = targets.TDEE
	plan.TargetCalories = targets.TargetCalories
	plan.UsedAI = true
	plan.SafetyCheck = SafetyCheck{
		AllergyVerified:          true,
		MedicalConditionVerified: true,
		ConflictsFound:           false,
		Notes: fmt.Sprintf("All 7 days verified against %d blocklist terms.",
			len(bl)),
	}
	return plan, nil
}

// checkShape enforces the structural contract on an external plan before
// any safety validation: 7 named days, 5 typed meals each.
func checkShape(plan *Plan) error {
	if len(plan.Days) != len(weekDays) {
		return fmt.Errorf("expected %d days, got %d", len(weekDays), len(plan.Days))
	}
	for i, day := range plan.Days {
		if day.Day == "" {
			return fmt.Errorf("day %d has no name", i)
		}
		if len(day.Meals) != len(mealTypes) {
			return fmt.Errorf("day %s has %d meals, expected %d", day.Day, len(day.Meals), len(mealTypes))
		}
		for j, meal := range day.Meals {
			if meal.Name == "" {
				return fmt.Errorf("day %s meal %d has no name", day.Day, j)
			}
			if meal.Type != mealTypes[j] {
				return fmt.Errorf("day %s meal %d has type %q, expected %q", day.Day, j, meal.Type, mealTypes[j])
			}
		}
	}
	return nil
}
