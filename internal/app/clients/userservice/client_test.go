package userservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/institutionhub/internal/app/system/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorded struct {
	method, path, correlation string
	body                      map[string]any
}

// fakeService answers every request with the handler's status and body
// and records what it received.
type fakeService struct {
	mu     sync.Mutex
	calls  []recorded
	status int
	body   string
}

func (f *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := recorded{method: r.Method, path: r.URL.Path, correlation: r.Header.Get(CorrelationHeader)}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&rec.body)
	}
	f.mu.Lock()
	f.calls = append(f.calls, rec)
	status, body := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func newTestClient(t *testing.T, f *fakeService) *Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/v1/users/", 5*time.Second, zap.NewNop())
}

const okUser = `{"success":true,"message":"ok","data":{"userId":"u1","institutionId":"i1","firstName":"Ana","lastName":"Rojas","email":"d@x.edu","role":"DIRECTOR","status":"ACTIVE","createdAt":"2025-03-01T10:00:00"}}`

func TestCreateUser(t *testing.T) {
	f := &fakeService{status: http.StatusCreated, body: okUser}
	c := newTestClient(t, f)

	u, err := c.CreateUser(context.Background(), UserRequest{
		FirstName: "Ana", LastName: "Rojas", Email: "d@x.edu", Role: "DIRECTOR", Status: "ACTIVE",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "2025-03-01T10:00:00", u.CreatedAt)

	require.Len(t, f.calls, 1)
	call := f.calls[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/api/v1/users", call.path)
	assert.NotEmpty(t, call.correlation)
	assert.Equal(t, "d@x.edu", call.body["email"])
	assert.Equal(t, "ACTIVE", call.body["status"])
}

func TestCreateUser_NotFoundIsError(t *testing.T) {
	f := &fakeService{status: http.StatusNotFound, body: `{}`}
	c := newTestClient(t, f)

	u, err := c.CreateUser(context.Background(), UserRequest{Email: "x@y.z"})
	assert.Nil(t, u)
	assert.True(t, errors.Is(err, apperr.ErrRemoteService))
}

func TestOperations_NotFoundIsEmpty(t *testing.T) {
	f := &fakeService{status: http.StatusNotFound, body: `{"success":false,"message":"no"}`}
	c := newTestClient(t, f)
	ctx := context.Background()

	ops := map[string]func() (any, error){
		"get":     func() (any, error) { return c.GetUser(ctx, "u9") },
		"update":  func() (any, error) { return c.UpdateUser(ctx, "u9", UserRequest{}) },
		"delete":  func() (any, error) { return c.DeleteUser(ctx, "u9") },
		"restore": func() (any, error) { return c.RestoreUser(ctx, "u9") },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			u, err := op()
			require.NoError(t, err)
			assert.Nil(t, u)
		})
	}
}

func TestOperations_RoutesAndMethods(t *testing.T) {
	f := &fakeService{status: http.StatusOK, body: okUser}
	c := newTestClient(t, f)
	ctx := context.Background()

	_, err := c.GetUser(ctx, "u1")
	require.NoError(t, err)
	_, err = c.UpdateUser(ctx, "u1", UserRequest{InstitutionID: ""})
	require.NoError(t, err)
	_, err = c.DeleteUser(ctx, "u1")
	require.NoError(t, err)
	_, err = c.RestoreUser(ctx, "u1")
	require.NoError(t, err)

	want := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/users/u1"},
		{http.MethodPut, "/api/v1/users/u1"},
		{http.MethodDelete, "/api/v1/users/u1"},
		{http.MethodPatch, "/api/v1/users/u1/restore"},
	}
	require.Len(t, f.calls, len(want))
	for i, w := range want {
		assert.Equal(t, w.method, f.calls[i].method)
		assert.Equal(t, w.path, f.calls[i].path)
	}
	// The unlink body must carry an explicit empty institution id.
	v, ok := f.calls[1].body["institutionId"]
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestOperations_FailureEnvelope(t *testing.T) {
	cases := map[string]string{
		"success false": `{"success":false,"message":"duplicate email","data":null}`,
		"null data":     `{"success":true,"message":"ok","data":null}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			f := &fakeService{status: http.StatusOK, body: body}
			c := newTestClient(t, f)

			u, err := c.GetUser(context.Background(), "u1")
			assert.Nil(t, u)
			assert.True(t, errors.Is(err, apperr.ErrRemoteService), "got %v", err)
		})
	}
}

func TestOperations_ServerError(t *testing.T) {
	f := &fakeService{status: http.StatusInternalServerError, body: `boom`}
	c := newTestClient(t, f)

	u, err := c.UpdateUser(context.Background(), "u1", UserRequest{})
	assert.Nil(t, u)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrRemoteService))
	assert.Equal(t, http.StatusBadGateway, apperr.HTTPStatus(err))
}

func TestOperations_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, time.Second, nil)
	_, err := c.GetUser(context.Background(), "u1")
	assert.True(t, errors.Is(err, apperr.ErrRemoteService))
}

func TestRequestFromUser(t *testing.T) {
	f := &fakeService{status: http.StatusOK, body: okUser}
	c := newTestClient(t, f)

	u, err := c.GetUser(context.Background(), "u1")
	require.NoError(t, err)

	req := RequestFromUser(*u)
	req.InstitutionID = ""
	assert.Equal(t, "Ana", req.FirstName)
	assert.Equal(t, "DIRECTOR", req.Role)
	assert.Equal(t, "ACTIVE", req.Status)
	assert.Empty(t, req.InstitutionID)
}
