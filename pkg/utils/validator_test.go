package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-rating/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `validate:"required,min=4,max=25"`
	Year     string `validate:"required,len=4,number"`
	Genre    string `validate:"required,oneof=action comedy"`
	Password string `validate:"required"`
	Confirm  string `validate:"eqfield=Password"`
}

func TestValidateStruct_Messages(t *testing.T) {
	errs := ValidateStruct(signup{
		Username: "bob",
		Year:     "-202",
		Genre:    "western",
		Password: "pw",
		Confirm:  "wp",
	})

	assert.Equal(t, map[string]string{
		"Username": "Minimum length is 4",
		"Year":     "Must contain digits only",
		"Genre":    "Must be one of: action, comedy",
		"Confirm":  "Must match Password",
	}, errs)
}

func TestValidate_ReturnsValidationError(t *testing.T) {
	err := Validate(&signup{Year: "2021", Genre: "action", Password: "pw", Confirm: "pw"})

	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "This field is required", vErr.Fields["Username"])

	assert.NoError(t, Validate(&signup{Username: "alice", Year: "2021", Genre: "action", Password: "pw", Confirm: "pw"}))
}

func TestResponseJSON_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()

	ResponseConflict(rec, "username already taken")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Equal(t, "username already taken", body.Message)
	assert.Nil(t, body.Data)
}
