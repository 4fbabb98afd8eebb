package validation_test

import (
	"testing"

	"vegfeedback/internal/apperrors"
	"vegfeedback/internal/models"
	"vegfeedback/internal/validation"

	"github.com/stretchr/testify/assert"
)

func validInput() models.RegisterInput {
	return models.RegisterInput{
		Username:  "asha",
		Email:     "asha@bitwardha.ac.in",
		Password:  "password123",
		PRNNumber: "PRN001",
	}
}

func TestStruct_Register(t *testing.T) {
	v := validation.New("@bitwardha.ac.in")

	tests := []struct {
		name    string
		mutate  func(in *models.RegisterInput)
		message string
	}{
		{"valid", func(in *models.RegisterInput) {}, ""},
		{"uppercase domain", func(in *models.RegisterInput) { in.Email = "asha@BITWARDHA.AC.IN" }, ""},
		{"wrong domain", func(in *models.RegisterInput) { in.Email = "asha@gmail.com" }, "Email must end with @bitwardha.ac.in"},
		{"not an email", func(in *models.RegisterInput) { in.Email = "asha" }, "Please enter a valid email address"},
		{"short password", func(in *models.RegisterInput) { in.Password = "short" }, "Password must be at least 8 characters"},
		{"mismatched confirmation", func(in *models.RegisterInput) { in.ConfirmPassword = "password124" }, "Passwords do not match"},
		{"missing prn", func(in *models.RegisterInput) { in.PRNNumber = "" }, "PrnNumber is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := v.Struct(in)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestStruct_FeedbackInput(t *testing.T) {
	v := validation.New("@bitwardha.ac.in")
	liked := true

	assert.NoError(t, v.Struct(models.FeedbackInput{VegetableID: 1, IsLiked: &liked}))

	err := v.Struct(models.FeedbackInput{VegetableID: 1})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "IsLiked is required", err.Error())

	err = v.Struct(models.BatchFeedbackInput{MealType: "breakfast", Responses: []models.FeedbackInput{{VegetableID: 1, IsLiked: &liked}}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
