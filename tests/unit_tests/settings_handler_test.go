package unit_tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openlms/courseadmin/internal/handler"
	"github.com/openlms/courseadmin/internal/service"
	"github.com/openlms/courseadmin/internal/settings"
	handlermocks "github.com/openlms/courseadmin/tests/mocks"
)

const testCourseID = "course-v1:edX+DemoX+Demo_Course"

func newCourseContext(w *httptest.ResponseRecorder, req *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "courseID", Value: testCourseID}}
	return c
}

func TestSettingsHandler_GetSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sampleSettings := map[string]settings.Setting{
		"giturl": {
			Value:       json.RawMessage(`"https://github.com/org/course.git"`),
			DisplayName: "GIT URL",
		},
	}

	tests := []struct {
		name             string
		query            string
		staffHeader      string
		mockSetup        func(*handlermocks.MockSettingsServiceInterface)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "success - filtered settings for staff",
			staffHeader: "true",
			mockSetup: func(m *handlermocks.MockSettingsServiceInterface) {
				m.EXPECT().Fetch(testCourseID, true).Return(sampleSettings, nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response map[string]settings.Setting
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				require.Contains(t, response, "giturl")
				assert.Equal(t, "GIT URL", response["giturl"].DisplayName)
			},
		},
		{
			name: "success - non-staff without header",
			mockSetup: func(m *handlermocks.MockSettingsServiceInterface) {
				m.EXPECT().Fetch(testCourseID, false).Return(sampleSettings, nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response map[string]settings.Setting
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Contains(t, response, "giturl")
			},
		},
		{
			name:  "success - all=true returns the unfiltered view",
			query: "all=true",
			mockSetup: func(m *handlermocks.MockSettingsServiceInterface) {
				m.EXPECT().FetchAll(testCourseID).Return(sampleSettings, nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response map[string]settings.Setting
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Contains(t, response, "giturl")
			},
		},
		{
			name: "error - course not found",
			mockSetup: func(m *handlermocks.MockSettingsServiceInterface) {
				m.EXPECT().Fetch(testCourseID, false).Return(nil, service.ErrCourseNotFound)
			},
			expectedStatus: http.StatusNotFound,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, "course not found", response.Error.Message)
			},
		},
		{
			name: "error - internal error from service",
			mockSetup: func(m *handlermocks.MockSettingsServiceInterface) {
				m.EXPECT().Fetch(testCourseID, false).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Contains(t, response.Error.Message, "assert.AnError")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := handlermocks.NewMockSettingsServiceInterface(ctrl)
			tt.mockSetup(mockService)

			h := handler.NewSettingsHandler(mockService)

			url := "/courses/" + testCourseID + "/settings"
			if tt.query != "" {
				url += "?" + tt.query
			}
			req, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)
			if tt.staffHeader != "" {
				req.Header.Set(handler.HeaderUserStaff, tt.staffHeader)
			}

			w := httptest.NewRecorder()
			c := newCourseContext(w, req)

			h.GetSettings(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateResponse(t, w)
		})
	}
}

func TestSettingsHandler_UpdateSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		requestBody      string
		mockSetup        func(*handlermocks.MockSettingsServiceInterface)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "success - updates a field",
			requestBody: `{"giturl": "https://github.com/org/course.git"}`,
			mockSetup: func(m *handlermocks.MockSettingsServiceInterface) {
				payload := map[string]json.RawMessage{
					"giturl": json.RawMessage(`"https://github.com/org/course.git"`),
				}
				m.EXPECT().Update(testCourseID, payload, false).Return(map[string]settings.Setting{
					"giturl": {Value: json.RawMessage(`"https://github.com/org/course.git"`), DisplayName: "GIT URL"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response map[string]settings.Setting
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.JSONEq(t, `"https://github.com/org/course.git"`, string(response["giturl"].Value))
			},
		},
		{
			name:           "error - invalid request body",
			requestBody:    `not json`,
			mockSetup:      func(m *handlermocks.MockSettingsServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, "invalid request body", response.Error.Message)
			},
		},
		{
			name:        "error - value of the wrong type",
			requestBody: `{"giturl": 42}`,
			mockSetup: func(m *handlermocks.MockSettingsServiceInterface) {
				payload := map[string]json.RawMessage{"giturl": json.RawMessage(`42`)}
				m.EXPECT().Update(testCourseID, payload, false).
					Return(nil, service.ErrInvalidFieldValue)
			},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Contains(t, response.Error.Message, "invalid")
			},
		},
		{
			name:        "error - course not found",
			requestBody: `{"giturl": "x"}`,
			mockSetup: func(m *handlermocks.MockSettingsServiceInterface) {
				m.EXPECT().Update(testCourseID, gomock.Any(), false).
					Return(nil, service.ErrCourseNotFound)
			},
			expectedStatus: http.StatusNotFound,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, "course not found", response.Error.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := handlermocks.NewMockSettingsServiceInterface(ctrl)
			tt.mockSetup(mockService)

			h := handler.NewSettingsHandler(mockService)

			req, err := http.NewRequest(
				http.MethodPut,
				"/courses/"+testCourseID+"/settings",
				bytes.NewBufferString(tt.requestBody),
			)
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			c := newCourseContext(w, req)

			h.UpdateSettings(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateResponse(t, w)
		})
	}
}

func TestSettingsHandler_ValidateSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		requestBody      string
		staffHeader      string
		mockSetup        func(*handlermocks.MockSettingsServiceInterface)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "success - clean payload is saved",
			requestBody: `{"proctoring_provider": "software_secure"}`,
			staffHeader: "true",
			mockSetup: func(m *handlermocks.MockSettingsServiceInterface) {
				payload := map[string]json.RawMessage{
					"proctoring_provider": json.RawMessage(`"software_secure"`),
				}
				m.EXPECT().ValidateAndUpdate(testCourseID, payload, true).Return(map[string]settings.Setting{
					"proctoring_provider": {Value: json.RawMessage(`"software_secure"`)},
				}, nil, nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response map[string]settings.Setting
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Contains(t, response, "proctoring_provider")
			},
		},
		{
			name:        "error - validation failures are reported together",
			requestBody: `{"proctoring_provider": "proctortrack"}`,
			mockSetup: func(m *handlermocks.MockSettingsServiceInterface) {
				m.EXPECT().ValidateAndUpdate(testCourseID, gomock.Any(), false).Return(
					nil,
					[]settings.ValidationError{
						{
							Field:   "proctoring_provider",
							Message: "Provider 'proctortrack' requires an exam escalation contact.",
						},
					},
					nil,
				)
			},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ValidationFailedResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				require.Len(t, response.Errors, 1)
				assert.Equal(t, "proctoring_provider", response.Errors[0].Field)
				assert.Equal(t, "Provider 'proctortrack' requires an exam escalation contact.", response.Errors[0].Message)
			},
		},
		{
			name:           "error - invalid request body",
			requestBody:    `[1, 2]`,
			mockSetup:      func(m *handlermocks.MockSettingsServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, "invalid request body", response.Error.Message)
			},
		},
		{
			name:        "error - course not found",
			requestBody: `{"giturl": "x"}`,
			mockSetup: func(m *handlermocks.MockSettingsServiceInterface) {
				m.EXPECT().ValidateAndUpdate(testCourseID, gomock.Any(), false).
					Return(nil, nil, service.ErrCourseNotFound)
			},
			expectedStatus: http.StatusNotFound,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, "course not found", response.Error.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := handlermocks.NewMockSettingsServiceInterface(ctrl)
			tt.mockSetup(mockService)

			h := handler.NewSettingsHandler(mockService)

			req, err := http.NewRequest(
				http.MethodPost,
				"/courses/"+testCourseID+"/settings/validate",
				bytes.NewBufferString(tt.requestBody),
			)
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			if tt.staffHeader != "" {
				req.Header.Set(handler.HeaderUserStaff, tt.staffHeader)
			}

			w := httptest.NewRecorder()
			c := newCourseContext(w, req)

			h.ValidateSettings(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateResponse(t, w)
		})
	}
}
