package planner

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"nutrisync/internal/nutrition"
	"nutrisync/internal/safety"
)

//go:embed plan_prompt.md
var planPrompt string

type planPromptData struct {
	Age               int
	Gender            string
	HeightCm          float64
	WeightKg          float64
	BMI               float64
	Goal              string
	Activity          string
	MedicalConditions []string
	DietaryStyle      string
	Proteins          []string
	Cuisines          []string
	Budget            string
	Tracker           string
	BMR               int
	TDEE              int
	TargetCalories    int
	BlockedTerms      []string
}

func buildPlanPrompt(profile Profile, targets nutrition.Targets, allowed []string, bl safety.BlockList) (string, error) {
	tmpl, err := template.New("Plan").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(planPrompt)
	if err != nil {
		return "", err
	}

	data := planPromptData{
		Age:               profile.Age,
		Gender:            profile.Gender,
		HeightCm:          profile.HeightCm,
		WeightKg:          profile.WeightKg,
		BMI:               bodyMassIndex(profile.WeightKg, profile.HeightCm),
		Goal:              profile.Goal,
		Activity:          profile.Activity,
		MedicalConditions: profile.MedicalConditions,
		DietaryStyle:      profile.DietaryStyle,
		Proteins:          allowed,
		Cuisines:          profile.Cuisines,
		Budget:            profile.Budget,
		Tracker:           trackerSummary(profile),
		BMR:               targets.BMR,
		TDEE:              targets.TDEE,
		TargetCalories:    targets.TargetCalories,
		BlockedTerms:      bl.Terms(),
	}

	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func bodyMassIndex(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return weightKg / (m * m)
}

func trackerSummary(profile Profile) string {
	if profile.StepsToday == 0 && profile.CaloriesBurned == 0 && profile.ActiveMinutes == 0 {
		return "Not connected"
	}
	return fmt.Sprintf("%d steps today, %d kcal burned, %d active minutes",
		profile.StepsToday, profile.CaloriesBurned, profile.ActiveMinutes)
}
