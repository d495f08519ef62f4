package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLog() *WorkoutLog {
	return &WorkoutLog{
		Date:        "2024-05-01",
		WorkoutType: "push",
		Exercises: []Exercise{
			{
				Name: "Bench Press",
				Sets: []Set{
					{Reps: 5, Weight: 80},
					{Reps: 5, Weight: 85},
				},
				TargetMuscles: []string{"chest", "triceps"},
			},
		},
	}
}

func TestWorkoutLogValidate(t *testing.T) {
	log := validLog()
	log.Normalize()
	require.NoError(t, log.Validate())
}

func TestWorkoutLogValidateBadDate(t *testing.T) {
	for _, date := range []string{"", "05/01/2024", "2024-13-40", "yesterday"} {
		log := validLog()
		log.Date = date
		log.Normalize()
		assert.Error(t, log.Validate(), "date %q should be rejected", date)
	}
}

func TestWorkoutLogValidateBadWorkoutType(t *testing.T) {
	log := validLog()
	log.WorkoutType = "cardio"
	log.Normalize()
	err := log.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workout_type must be one of")
}

func TestWorkoutLogValidateWorkoutTypeOptional(t *testing.T) {
	log := validLog()
	log.WorkoutType = ""
	log.Normalize()
	assert.NoError(t, log.Validate())
}

func TestWorkoutLogValidateRequiresASet(t *testing.T) {
	log := validLog()
	log.Exercises[0].Sets = nil
	log.Normalize()
	err := log.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one exercise with sets")

	log = validLog()
	log.Exercises = nil
	log.Normalize()
	assert.Error(t, log.Validate())
}

func TestWorkoutLogValidateNestedFields(t *testing.T) {
	log := validLog()
	log.Exercises[0].Name = "   "
	log.Normalize()
	assert.Error(t, log.Validate(), "blank exercise name should be rejected")

	for _, reps := range []int{0, -3} {
		log = validLog()
		log.Exercises[0].Sets[0].Reps = reps
		log.Normalize()
		err := log.Validate()
		require.Error(t, err, "reps %d should be rejected", reps)
		assert.Contains(t, err.Error(), "reps must be >= 1")
	}

	log = validLog()
	log.Exercises[0].Sets[0].Weight = -1
	log.Normalize()
	err := log.Validate()
	require.Error(t, err, "negative weight should be rejected")
	assert.Contains(t, err.Error(), "weight must be >= 0")
}

func TestWorkoutLogNormalize(t *testing.T) {
	log := validLog()
	log.WorkoutType = "  PUSH "
	log.Exercises[0].TargetMuscles = []string{" Chest ", "", "TRICEPS"}
	log.Normalize()

	assert.Equal(t, "push", log.WorkoutType)
	assert.Equal(t, []string{"chest", "triceps"}, log.Exercises[0].TargetMuscles)
	assert.Equal(t, LogSchemaVersion, log.SchemaVersion)
	assert.NotEmpty(t, log.SessionID)
}

func TestNormalizePreservesExplicitFields(t *testing.T) {
	log := validLog()
	log.SchemaVersion = 1
	log.SessionID = "550e8400-e29b-41d4-a716-446655440000"
	log.Normalize()

	assert.Equal(t, 1, log.SchemaVersion)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", log.SessionID)
}

func TestNormalizeMuscles(t *testing.T) {
	assert.Nil(t, NormalizeMuscles(nil))
	assert.Nil(t, NormalizeMuscles([]string{"", "   "}))
	assert.Equal(t,
		[]string{"lats", "rear delts"},
		NormalizeMuscles([]string{" Lats", "Rear Delts "}))
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2024-05-01")
	assert.NoError(t, err)

	_, err = ParseDate("2024-5-1")
	assert.Error(t, err)
}
