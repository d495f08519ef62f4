package models

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// LogSchemaVersion is the current workout log document schema version.
const LogSchemaVersion = 2

// WorkoutType constants. Stored lower-cased.
const (
	WorkoutTypePush = "push"
	WorkoutTypePull = "pull"
	WorkoutTypeLegs = "legs"
)

// Set is a single set of an exercise.
type Set struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// Exercise is one exercise within a workout log, with its sets in order.
type Exercise struct {
	Name string `json:"name"`
	Sets []Set  `json:"sets"`

	// TargetMuscles holds normalized (trimmed, lower-cased) muscle labels.
	TargetMuscles []string `json:"target_muscles,omitempty"`
}

// WorkoutLog is one calendar date's structured workout record. The date is
// the unique key: at most one log document exists per date.
type WorkoutLog struct {
	SchemaVersion int        `json:"schema_version"`
	Date          string     `json:"date"`
	WorkoutType   string     `json:"workout_type,omitempty"`
	Exercises     []Exercise `json:"exercises"`
	Notes         string     `json:"notes,omitempty"`
	SessionID     string     `json:"session_id"`
}

// Validate checks a set's fields.
func (s Set) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Reps, validation.By(repsAtLeastOne)),
		validation.Field(&s.Weight, validation.Min(0.0).Error("weight must be >= 0")),
	)
}

// Validate checks an exercise's fields and all of its sets.
func (e Exercise) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Name, validation.By(nonEmptyTrimmed("exercise name required"))),
		validation.Field(&e.Sets),
	)
}

// Validate checks the log's fields and all nested exercises and sets.
func (l WorkoutLog) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Date, validation.Required, validation.By(isCalendarDate)),
		validation.Field(&l.WorkoutType,
			validation.In(WorkoutTypePush, WorkoutTypePull, WorkoutTypeLegs).
				Error("workout_type must be one of: push, pull, legs")),
		validation.Field(&l.Exercises, validation.By(hasAtLeastOneSet)),
	)
}

// Normalize applies input normalization and defaults: workout_type is
// trimmed and lower-cased, target-muscle labels are trimmed, lower-cased
// and dropped when empty, the schema version defaults to the current one,
// and a session id is generated when absent. Call before Validate.
func (l *WorkoutLog) Normalize() {
	if l.SchemaVersion == 0 {
		l.SchemaVersion = LogSchemaVersion
	}
	if l.SessionID == "" {
		l.SessionID = uuid.New().String()
	}
	l.WorkoutType = strings.ToLower(strings.TrimSpace(l.WorkoutType))
	for i := range l.Exercises {
		l.Exercises[i].TargetMuscles = NormalizeMuscles(l.Exercises[i].TargetMuscles)
	}
}

// NormalizeMuscles trims and lower-cases muscle labels, dropping empties.
// Returns nil when nothing survives so the field is omitted from JSON.
func NormalizeMuscles(labels []string) []string {
	var out []string
	for _, m := range labels {
		m = strings.ToLower(strings.TrimSpace(m))
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

// ParseDate validates a YYYY-MM-DD calendar date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD")
	}
	return t, nil
}

func isCalendarDate(value interface{}) error {
	s, _ := value.(string)
	_, err := ParseDate(s)
	return err
}

func nonEmptyTrimmed(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

func repsAtLeastOne(value interface{}) error {
	v, _ := value.(int)
	if v < 1 {
		return fmt.Errorf("reps must be >= 1")
	}
	return nil
}

func hasAtLeastOneSet(value interface{}) error {
	exercises, _ := value.([]Exercise)
	for _, e := range exercises {
		if len(e.Sets) > 0 {
			return nil
		}
	}
	return fmt.Errorf("at least one exercise with sets is required")
}
