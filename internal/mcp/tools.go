// ABOUTME: MCP tool implementations for bloom health records.
// ABOUTME: Logging tools for cycles, symptoms, moods, wellness, and insights.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/bloom/internal/models"
	"github.com/harperreed/bloom/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_symptom
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_symptom",
		Description: "Record a symptom (cramps, headache, fatigue, etc.) with severity 1-5",
	}, s.handleLogSymptom)

	// log_mood
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_mood",
		Description: "Record a mood entry with energy level 1-10",
	}, s.handleLogMood)

	// log_wellness
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_wellness",
		Description: "Record daily wellness data (steps, water, sleep, exercise)",
	}, s.handleLogWellness)

	// log_nutrition
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_nutrition",
		Description: "Record a meal or snack, optionally with calories",
	}, s.handleLogNutrition)

	// start_cycle
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_cycle",
		Description: "Start a new menstrual cycle record",
	}, s.handleStartCycle)

	// end_cycle
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "end_cycle",
		Description: "Close the current menstrual cycle record",
	}, s.handleEndCycle)

	// add_reminder
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_reminder",
		Description: "Create a daily reminder (medication, hydration, exercise) at HH:MM",
	}, s.handleAddReminder)

	// generate_insights
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_insights",
		Description: "Generate and store personalized health insights",
	}, s.handleGenerateInsights)

	// ask_question
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "ask_question",
		Description: "Answer a free-text health question using the user's recent data",
	}, s.handleAskQuestion)
}

// Tool input/output types

type logSymptomInput struct {
	SymptomType string `json:"symptom_type" jsonschema:"description=Type of symptom (cramps, headache, bloating, fatigue, etc.),required"`
	Severity    int    `json:"severity" jsonschema:"description=Severity from 1 (mild) to 5 (severe),required"`
	Date        string `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
	Notes       string `json:"notes,omitempty" jsonschema:"description=Optional notes"`
}

type logMoodInput struct {
	Mood        string `json:"mood" jsonschema:"description=Mood label (happy, calm, anxious, irritable, etc.),required"`
	EnergyLevel int    `json:"energy_level" jsonschema:"description=Energy from 1 (drained) to 10 (energized),required"`
	Date        string `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
	Notes       string `json:"notes,omitempty" jsonschema:"description=Optional notes"`
}

type logWellnessInput struct {
	Date            string  `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
	Steps           int     `json:"steps,omitempty" jsonschema:"description=Step count"`
	WaterLiters     float64 `json:"water_liters,omitempty" jsonschema:"description=Water intake in liters"`
	SleepHours      float64 `json:"sleep_hours,omitempty" jsonschema:"description=Hours slept"`
	SleepQuality    int     `json:"sleep_quality,omitempty" jsonschema:"description=Sleep quality 1-5"`
	ExerciseMinutes int     `json:"exercise_minutes,omitempty" jsonschema:"description=Minutes of exercise"`
}

type logNutritionInput struct {
	MealType    string `json:"meal_type" jsonschema:"description=Meal type (breakfast, lunch, dinner, snack),required"`
	Description string `json:"description" jsonschema:"description=What was eaten,required"`
	Calories    int    `json:"calories,omitempty" jsonschema:"description=Estimated calories"`
	Date        string `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
}

type startCycleInput struct {
	StartDate     string `json:"start_date,omitempty" jsonschema:"description=Start date (YYYY-MM-DD), defaults to today"`
	FlowIntensity int    `json:"flow_intensity,omitempty" jsonschema:"description=Flow intensity 1-5"`
}

type endCycleInput struct {
	EndDate string `json:"end_date,omitempty" jsonschema:"description=End date (YYYY-MM-DD), defaults to today"`
}

type addReminderInput struct {
	ReminderType string `json:"reminder_type" jsonschema:"description=Reminder type (medication, hydration, exercise),required"`
	Title        string `json:"title" jsonschema:"description=Reminder title,required"`
	Time         string `json:"time" jsonschema:"description=Time of day (HH:MM, 24-hour),required"`
}

type askQuestionInput struct {
	Question string `json:"question" jsonschema:"description=The health question to answer,required"`
}

type generateInsightsInput struct{}

type simpleOutput struct {
	Message string `json:"message"`
}

// resolveDate returns today when the input is empty.
func resolveDate(input string) (models.Date, error) {
	if input == "" {
		return models.Today(), nil
	}
	return models.ParseDate(input)
}

// Tool handlers

func (s *Server) handleLogSymptom(ctx context.Context, req *mcp.CallToolRequest, input logSymptomInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	entry := models.NewSymptomEntry(s.userID, date, input.SymptomType, input.Severity)
	if input.Notes != "" {
		entry.WithNotes(input.Notes)
	}
	if current, err := s.queries.CurrentCycle(s.userID); err == nil {
		entry.WithCycle(current.ID)
	}

	if err := s.store.CreateSymptom(entry); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log symptom: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s (severity %d) on %s", input.SymptomType, input.Severity, date),
	}, nil
}

func (s *Server) handleLogMood(ctx context.Context, req *mcp.CallToolRequest, input logMoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	entry := models.NewMoodEntry(s.userID, date, input.Mood, input.EnergyLevel)
	if input.Notes != "" {
		entry.WithNotes(input.Notes)
	}

	if err := s.store.CreateMood(entry); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log mood: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged mood %s (energy %d) on %s", input.Mood, input.EnergyLevel, date),
	}, nil
}

func (s *Server) handleLogWellness(ctx context.Context, req *mcp.CallToolRequest, input logWellnessInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	entry := models.NewWellnessEntry(s.userID, date)
	if input.Steps > 0 {
		entry.WithSteps(input.Steps)
	}
	if input.WaterLiters > 0 {
		entry.WithWaterIntake(input.WaterLiters)
	}
	if input.SleepHours > 0 && input.SleepQuality > 0 {
		entry.WithSleep(input.SleepHours, input.SleepQuality)
	} else if input.SleepHours > 0 {
		entry.WithSleepHours(input.SleepHours)
	}
	if input.ExerciseMinutes > 0 {
		entry.WithExerciseMinutes(input.ExerciseMinutes)
	}

	if err := s.store.CreateWellness(entry); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log wellness: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged wellness entry for %s", date),
	}, nil
}

func (s *Server) handleLogNutrition(ctx context.Context, req *mcp.CallToolRequest, input logNutritionInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	entry := models.NewNutritionEntry(s.userID, date, input.MealType, input.Description)
	if input.Calories > 0 {
		entry.WithCalories(input.Calories)
	}

	if err := s.store.CreateNutrition(entry); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log nutrition: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s on %s: %s", input.MealType, date, input.Description),
	}, nil
}

func (s *Server) handleStartCycle(ctx context.Context, req *mcp.CallToolRequest, input startCycleInput) (*mcp.CallToolResult, simpleOutput, error) {
	start, err := resolveDate(input.StartDate)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	c := models.NewCycleRecord(s.userID, start)
	if input.FlowIntensity > 0 {
		c.WithFlowIntensity(input.FlowIntensity)
	}

	if err := s.store.CreateCycle(c); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to start cycle: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Started cycle on %s", start),
	}, nil
}

func (s *Server) handleEndCycle(ctx context.Context, req *mcp.CallToolRequest, input endCycleInput) (*mcp.CallToolResult, simpleOutput, error) {
	end, err := resolveDate(input.EndDate)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	current, err := s.queries.CurrentCycle(s.userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, simpleOutput{}, fmt.Errorf("no cycle to end")
		}
		return nil, simpleOutput{}, err
	}
	if !current.IsOpen() {
		return nil, simpleOutput{}, fmt.Errorf("current cycle already ended on %s", *current.EndDate)
	}

	length := models.DaysBetween(current.StartDate, end) + 1
	patch := models.CyclePatch{EndDate: &end, Length: &length}
	if _, err := s.store.UpdateCycle(current.ID, patch); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to end cycle: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Ended cycle on %s (%d days)", end, length),
	}, nil
}

func (s *Server) handleAddReminder(ctx context.Context, req *mcp.CallToolRequest, input addReminderInput) (*mcp.CallToolResult, simpleOutput, error) {
	r := models.NewReminder(s.userID, input.ReminderType, input.Title, input.Time)
	if err := s.store.CreateReminder(r); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add reminder: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Added %s reminder %q at %s", input.ReminderType, input.Title, input.Time),
	}, nil
}

func (s *Server) handleGenerateInsights(ctx context.Context, req *mcp.CallToolRequest, input generateInsightsInput) (*mcp.CallToolResult, any, error) {
	insights, err := s.builder.GenerateAndStore(ctx, s.userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate insights: %w", err)
	}

	if len(insights) == 0 {
		return nil, map[string]interface{}{"message": "No insights generated."}, nil
	}

	return nil, insights, nil
}

func (s *Server) handleAskQuestion(ctx context.Context, req *mcp.CallToolRequest, input askQuestionInput) (*mcp.CallToolResult, simpleOutput, error) {
	answer, err := s.builder.Ask(ctx, s.userID, input.Question)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to answer question: %w", err)
	}

	return nil, simpleOutput{Message: answer}, nil
}
