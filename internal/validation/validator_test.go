package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
)

func TestStrongPassword(t *testing.T) {
	cases := map[string]bool{
		"Passw0rd!":   true,
		"password1!":  false,
		"PASSWORD1!":  false,
		"Password!!":  false,
		"Password12":  false,
		"Pa1!":        false,
		"Str0ng#Pass": true,
	}
	for pw, want := range cases {
		assert.Equal(t, want, StrongPassword(pw), pw)
	}
}

func TestStructReportsFieldDetails(t *testing.T) {
	v := New()
	err := Struct(v, models.ChangePasswordRequest{CurrentPassword: "Old#Pass1", NewPassword: "weak"}, "invalid change password payload")
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "invalid change password payload", appErr.Message)

	details, ok := appErr.Details.([]FieldError)
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, "new_password", details[0].Field)
	assert.Equal(t, "strongpassword", details[0].Rule)
}

func TestStructRejectsReusedPassword(t *testing.T) {
	err := Struct(New(), models.ChangePasswordRequest{CurrentPassword: "Same#Pass1", NewPassword: "Same#Pass1"}, "invalid")
	require.Error(t, err)
	details := appErrors.FromError(err).Details.([]FieldError)
	assert.Equal(t, "nefield", details[0].Rule)
}

func TestPlanTypeAndCurrencyTags(t *testing.T) {
	v := New()
	ok := models.PlanRequest{Name: "Growth", PlanType: models.PlanQuarterly, Currency: "USD"}
	assert.NoError(t, Struct(v, ok, "invalid plan"))

	bad := models.PlanRequest{Name: "Growth", PlanType: "WEEKLY", Currency: "usd"}
	err := Struct(v, bad, "invalid plan")
	require.Error(t, err)
	rules := map[string]string{}
	for _, d := range appErrors.FromError(err).Details.([]FieldError) {
		rules[d.Field] = d.Rule
	}
	assert.Equal(t, "plantype", rules["plan_type"])
	assert.Equal(t, "currency", rules["currency"])
}

func TestStructPassesValidPayload(t *testing.T) {
	assert.NoError(t, Struct(New(), models.LoginRequest{Email: "a@b.co", Password: "x"}, "invalid login"))
}
