package validation

import (
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"github.com/deepesh-sr/Textura-Backend/app/server/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestValidateSignup(t *testing.T) {
	v, err := ValidateSignup(&SignupInput{Name: " Jane ", Email: " Jane@Example.COM ", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "Jane", v.Name)
	assert.Equal(t, "jane@example.com", v.Email)
	assert.Equal(t, models.RoleUser, v.Role)

	v, err = ValidateSignup(&SignupInput{Name: "Root", Email: "root@example.com", Password: "secret-pass", Role: "Admin"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, v.Role)
}

func TestValidateSignup_Invalid(t *testing.T) {
	_, err := ValidateSignup(&SignupInput{Email: "nope", Password: "123", Role: "Editor"})

	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.Equal(t, []string{"must be one of: Admin, User"}, errs["role"])
}

func TestValidateSignin(t *testing.T) {
	in, err := ValidateSignin(&SigninInput{Email: "USER@example.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", in.Email)

	_, err = ValidateSignin(&SigninInput{})
	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}

func TestValidateSlider(t *testing.T) {
	in, err := ValidateSlider(&SliderInput{Title: utils.P(" Summer sale "), ImageURL: utils.P("https://example.com/s.jpg")})
	require.NoError(t, err)

	slider := &models.Slider{Label: "keep"}
	in.Apply(slider)
	assert.Equal(t, "Summer sale", slider.Title)
	assert.Equal(t, "https://example.com/s.jpg", slider.ImageURL)
	assert.Equal(t, "keep", slider.Label)

	_, err = ValidateSlider(&SliderInput{ImageURL: utils.P("::not-a-url")})
	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "imageUrl")
}

func TestValidateSlider_ClearImage(t *testing.T) {
	in, err := ValidateSlider(&SliderInput{ImageURL: utils.P("")})
	require.NoError(t, err)

	slider := &models.Slider{ImageURL: "https://example.com/s.jpg"}
	in.Apply(slider)
	assert.Empty(t, slider.ImageURL)
}
