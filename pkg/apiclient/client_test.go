package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/faculty-portal/internal/models"
	appErrors "github.com/noah-isme/faculty-portal/pkg/errors"
)

type recordedCall struct {
	resource string
	method   string
	success  bool
}

type observerStub struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (o *observerStub) ObserveUpstreamCall(resource, method string, success bool, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, recordedCall{resource: resource, method: method, success: success})
}

func TestDepartmentStoreList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/departments", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`[{"id":1,"departmentName":"Physics","departmentBuilding":4}]`))
	}))
	defer srv.Close()

	obs := &observerStub{}
	client := New(srv.URL+"/", WithObserver(obs))

	list, err := client.Departments().List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Department{{ID: 1, DepartmentName: "Physics", DepartmentBuilding: 4}}, list)
	require.Len(t, obs.calls, 1)
	assert.Equal(t, recordedCall{resource: "departments", method: http.MethodGet, success: true}, obs.calls[0])
}

func TestProfessorStoreCreateSendsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/professors", r.URL.Path)
		var req models.ProfessorRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Ada", req.ProfessorName)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Teacher{
			ID:            9,
			Email:         req.Email,
			ProfessorName: req.ProfessorName,
			DepartmentID:  req.DepartmentID,
		})
	}))
	defer srv.Close()

	created, err := New(srv.URL).Professors().Create(context.Background(), models.ProfessorRequest{
		Email:         "ada@example.com",
		ProfessorName: "Ada",
		DepartmentID:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, created.ID)
	assert.Equal(t, 2, created.DepartmentID)
}

func TestDepartmentStoreProfessorsUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/departments/3/professors", r.URL.Path)
		_, _ = w.Write([]byte(`{"professors":[{"id":5,"professorName":"Grace","departmentId":3}]}`))
	}))
	defer srv.Close()

	obs := &observerStub{}
	teachers, err := New(srv.URL, WithObserver(obs)).Departments().Professors(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "Grace", teachers[0].ProfessorName)
	assert.Equal(t, "departments_professors", obs.calls[0].resource)
}

func TestDepartmentStoreProfessorsMissingListIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	teachers, err := New(srv.URL).Departments().Professors(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, teachers)
	assert.Empty(t, teachers)
}

func TestDeleteAcceptsEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/professors/4", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).Professors().Delete(context.Background(), 4))
}

func TestNon2xxIsGenericUpstreamError(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", status)
		}))

		obs := &observerStub{}
		_, err := New(srv.URL, WithObserver(obs)).Departments().Update(context.Background(), 1, models.DepartmentRequest{DepartmentName: "x"})
		srv.Close()

		require.Error(t, err)
		assert.True(t, errors.Is(err, appErrors.ErrUpstream), "status %d", status)
		assert.False(t, obs.calls[0].success)
	}
}

func TestTransportFailureIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url).Professors().List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrUpstream))
}

func TestCreateWithEmptyBodyFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Departments().Create(context.Background(), models.DepartmentRequest{DepartmentName: "Math"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errEmptyResponse)
}

func TestResourceLabel(t *testing.T) {
	assert.Equal(t, "departments", resourceLabel("/departments/12"))
	assert.Equal(t, "departments_professors", resourceLabel("/departments/12/professors"))
	assert.Equal(t, "root", resourceLabel("/"))
}
