package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bluegreyowl/gradebook/api"
	"github.com/bluegreyowl/gradebook/internal/config"
	"github.com/bluegreyowl/gradebook/internal/grades"
	"github.com/bluegreyowl/gradebook/internal/storage"
	"github.com/bluegreyowl/gradebook/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	logger := zap.NewNop()
	backend := storage.NewCsvBackend(logger, filepath.Join(t.TempDir(), "students.csv"), false)
	st, err := store.Open(logger, grades.Default(), backend)
	require.NoError(t, err)

	return newServer(&config.Config{}, logger, st).router()
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func addAda(t *testing.T, r *gin.Engine) {
	t.Helper()
	res := api.StudentResponse{}
	rec := do(t, r, http.MethodPost, "/api/students", api.AddStudentRequest{
		RollNumber: "CS001", Name: "Ada Lovelace", Age: 28, Marks: 95,
	}, &res)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, res.Ok)
}

func TestAddThenGetViaApi(t *testing.T) {
	r := newTestRouter(t)
	addAda(t, r)

	res := api.StudentResponse{}
	rec := do(t, r, http.MethodGet, "/api/students/CS001", nil, &res)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, res.Ok)
	require.Equal(t, "Ada Lovelace", res.Student.Name)
	require.Equal(t, grades.GradeAPlus, res.Student.Grade)
}

func TestApiErrorCodes(t *testing.T) {
	r := newTestRouter(t)
	addAda(t, r)

	// duplicate roll number
	rec := do(t, r, http.MethodPost, "/api/students", api.AddStudentRequest{
		RollNumber: "CS001", Name: "Impostor", Age: 20, Marks: 10,
	}, nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	// invalid marks
	rec = do(t, r, http.MethodPost, "/api/students", api.AddStudentRequest{
		RollNumber: "CS002", Name: "Charles", Age: 20, Marks: 500,
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// missing roll number
	rec = do(t, r, http.MethodGet, "/api/students/CS999", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, r, http.MethodDelete, "/api/students/CS999", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSearchAndSort(t *testing.T) {
	r := newTestRouter(t)
	addAda(t, r)
	res := api.StudentResponse{}
	do(t, r, http.MethodPost, "/api/students", api.AddStudentRequest{
		RollNumber: "AB002", Name: "Grace Hopper", Age: 37, Marks: 78,
	}, &res)
	require.True(t, res.Ok)

	list := api.StudentsResponse{}
	do(t, r, http.MethodGet, "/api/students?q=cs00", nil, &list)
	require.True(t, list.Ok)
	require.Len(t, list.Students, 1)
	require.Equal(t, "CS001", list.Students[0].RollNumber)

	list = api.StudentsResponse{}
	do(t, r, http.MethodGet, "/api/students?sort=roll_number", nil, &list)
	require.Len(t, list.Students, 2)
	require.Equal(t, "AB002", list.Students[0].RollNumber)

	rec := do(t, r, http.MethodGet, "/api/students?sort=height", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGradeFilterValidation(t *testing.T) {
	r := newTestRouter(t)
	addAda(t, r)

	list := api.StudentsResponse{}
	do(t, r, http.MethodGet, "/api/students?grade=A%2B", nil, &list)
	require.True(t, list.Ok)
	require.Len(t, list.Students, 1)

	list = api.StudentsResponse{}
	do(t, r, http.MethodGet, "/api/students?grade=F", nil, &list)
	require.True(t, list.Ok)
	require.Empty(t, list.Students)

	rec := do(t, r, http.MethodGet, "/api/students?grade=Z", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateViaApi(t *testing.T) {
	r := newTestRouter(t)
	addAda(t, r)

	marks := 42.0
	res := api.StudentResponse{}
	rec := do(t, r, http.MethodPut, "/api/students/CS001", api.UpdateStudentRequest{Marks: &marks}, &res)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, grades.GradeD, res.Student.Grade)
	require.Equal(t, "Ada Lovelace", res.Student.Name)
}

func TestStatisticsViaApi(t *testing.T) {
	r := newTestRouter(t)
	addAda(t, r)

	res := api.StatisticsResponse{}
	do(t, r, http.MethodGet, "/api/statistics", nil, &res)
	require.True(t, res.Ok)
	require.Equal(t, 1, res.Statistics.Count)
	require.Equal(t, 95.0, res.Statistics.MeanMarks)

	// cached response must follow mutations
	marks := 45.0
	do(t, r, http.MethodPut, "/api/students/CS001", api.UpdateStudentRequest{Marks: &marks}, nil)

	res = api.StatisticsResponse{}
	do(t, r, http.MethodGet, "/api/statistics", nil, &res)
	require.Equal(t, 45.0, res.Statistics.MeanMarks)
}
