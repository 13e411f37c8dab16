package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
	"github.com/sbilibin2017/gw-expense-tracker/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestIssueKeyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "issued",
			expectedCode: http.StatusNonAuthoritativeInfo,
			expectedBody: `{"message":"Check Email for Further Instructions!"}`,
		},
		{
			name:         "unknown email",
			err:          services.ErrUserNotFound,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"User Not Found!"}`,
		},
		{
			name:         "store failure",
			err:          errors.New("db down"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"msg":"Server Error","err":"db down"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockPasswordResetter(ctrl)
			m.EXPECT().Issue(gomock.Any(), "a@b.com").Return(tt.err)

			rr := httptest.NewRecorder()
			NewIssueKeyHandler(m)(rr, httptest.NewRequest(http.MethodPost, "/keys", bytes.NewBufferString(`{"email":"a@b.com"}`)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestResetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "reset",
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "empty fields",
			err:          services.ErrEmptyFields,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Empty Fields!"}`,
		},
		{
			name:         "weak password",
			err:          validation.ErrInvalidPassword,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Please Enter a Valid Password!"}`,
		},
		{
			name:         "bad key",
			err:          services.ErrInvalidKey,
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"Unauthorized!"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockPasswordResetter(ctrl)
			m.EXPECT().Reset(gomock.Any(), "a@b.com", "k", "Newpass1!").Return(tt.err)

			body := bytes.NewBufferString(`{"email":"a@b.com","key":"k","password":"Newpass1!"}`)
			rr := httptest.NewRecorder()
			NewResetPasswordHandler(m)(rr, httptest.NewRequest(http.MethodPut, "/users/resetPassword", body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody == "" {
				assert.Empty(t, rr.Body.String())
			} else {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
