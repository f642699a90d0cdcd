package classrooms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/institutionhub/internal/app/orchestrator"
	"github.com/dalemusser/institutionhub/internal/app/system/apperr"
	"github.com/dalemusser/institutionhub/internal/domain/models"
	"github.com/dalemusser/institutionhub/internal/testutil"
	"go.uber.org/zap"
)

type fakeService struct {
	called     string
	id         string
	create     orchestrator.CreateClassroomRequest
	update     orchestrator.UpdateClassroomRequest
	err        error
	classrooms []models.Classroom
}

func (f *fakeService) ListAllClassrooms(context.Context) ([]models.Classroom, error) {
	f.called = "all"
	return f.classrooms, f.err
}

func (f *fakeService) ListActiveClassrooms(context.Context) ([]models.Classroom, error) {
	f.called = "active"
	return f.classrooms, f.err
}

func (f *fakeService) ListInactiveClassrooms(context.Context) ([]models.Classroom, error) {
	f.called = "inactive"
	return f.classrooms, f.err
}

func (f *fakeService) GetClassroom(_ context.Context, id string) (models.Classroom, error) {
	f.called, f.id = "get", id
	return models.Classroom{ID: id}, f.err
}

func (f *fakeService) CreateClassroom(_ context.Context, req orchestrator.CreateClassroomRequest) (models.Classroom, error) {
	f.called, f.create = "create", req
	return models.Classroom{ID: "c-new", InstitutionID: req.InstitutionID}, f.err
}

func (f *fakeService) UpdateClassroom(_ context.Context, id string, req orchestrator.UpdateClassroomRequest) (models.Classroom, error) {
	f.called, f.id, f.update = "update", id, req
	return models.Classroom{ID: id}, f.err
}

func (f *fakeService) DeleteClassroom(_ context.Context, id string) (models.Classroom, error) {
	f.called, f.id = "delete", id
	return models.Classroom{ID: id}, f.err
}

func (f *fakeService) RestoreClassroom(_ context.Context, id string) (models.Classroom, error) {
	f.called, f.id = "restore", id
	return models.Classroom{ID: id}, f.err
}

func newHandler(svc *fakeService) *Handler {
	return NewHandler(svc, zap.NewNop())
}

func TestRoutes(t *testing.T) {
	tests := []struct {
		method, path, body, want string
		status                   int
	}{
		{http.MethodGet, "/", "", "all", http.StatusOK},
		{http.MethodGet, "/active", "", "active", http.StatusOK},
		{http.MethodGet, "/inactive", "", "inactive", http.StatusOK},
		{http.MethodGet, "/c1", "", "get", http.StatusOK},
		{http.MethodDelete, "/c1", "", "delete", http.StatusOK},
		{http.MethodPatch, "/c1/restore", "", "restore", http.StatusOK},
		{http.MethodPost, "/", `{"institutionId":"i1","classroomName":"Sala 1","classroomAge":"3","capacity":20}`, "create", http.StatusCreated},
		{http.MethodPut, "/c1", `{"classroomName":"Sala 1","classroomAge":"3","capacity":20}`, "update", http.StatusOK},
	}
	for _, tt := range tests {
		svc := &fakeService{classrooms: []models.Classroom{}}
		router := Routes(newHandler(svc))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

		if rec.Code != tt.status {
			t.Errorf("%s %s: status = %d, want %d (%s)", tt.method, tt.path, rec.Code, tt.status, rec.Body.String())
		}
		if svc.called != tt.want {
			t.Errorf("%s %s: called %q, want %q", tt.method, tt.path, svc.called, tt.want)
		}
	}
}

func TestServeList_EmptyIsArray(t *testing.T) {
	svc := &fakeService{classrooms: []models.Classroom{}}
	rec := httptest.NewRecorder()
	newHandler(svc).ServeList(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestServeView_UsesURLParam(t *testing.T) {
	svc := &fakeService{}
	req := testutil.WithChiURLParam(httptest.NewRequest(http.MethodGet, "/c9", nil), "id", "c9")
	rec := httptest.NewRecorder()
	newHandler(svc).ServeView(rec, req)

	if rec.Code != http.StatusOK || svc.id != "c9" {
		t.Errorf("status %d, id %q", rec.Code, svc.id)
	}
}

func TestServeView_DeletedIsNotFound(t *testing.T) {
	svc := &fakeService{err: apperr.NotFound("classroom not found or deleted")}
	req := testutil.WithChiURLParam(httptest.NewRequest(http.MethodGet, "/c1", nil), "id", "c1")
	rec := httptest.NewRecorder()
	newHandler(svc).ServeView(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Success || env.Message != "classroom not found or deleted" {
		t.Errorf("envelope = %+v", env)
	}
}

func TestHandleCreate_Validation(t *testing.T) {
	cases := map[string]string{
		"missing institution": `{"classroomName":"Sala","classroomAge":"3","capacity":2}`,
		"blank name":          `{"institutionId":"i1","classroomName":" ","classroomAge":"3","capacity":2}`,
		"zero capacity":       `{"institutionId":"i1","classroomName":"Sala","classroomAge":"3","capacity":0}`,
		"negative capacity":   `{"institutionId":"i1","classroomName":"Sala","classroomAge":"3","capacity":-4}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			svc := &fakeService{}
			rec := httptest.NewRecorder()
			newHandler(svc).HandleCreate(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d", rec.Code)
			}
			if svc.called != "" {
				t.Error("service called on invalid input")
			}
		})
	}
}

func TestHandleCreate_OrphanIsNotFound(t *testing.T) {
	svc := &fakeService{err: apperr.NotFound("institution not found with id: ghost")}
	body := `{"institutionId":"ghost","classroomName":"Sala","classroomAge":"3","capacity":2}`
	rec := httptest.NewRecorder()
	newHandler(svc).HandleCreate(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestHandleRestore_AlreadyActive(t *testing.T) {
	svc := &fakeService{err: apperr.AlreadyInState("classroom is already active")}
	req := testutil.WithChiURLParam(httptest.NewRequest(http.MethodPatch, "/c1/restore", nil), "id", "c1")
	rec := httptest.NewRecorder()
	newHandler(svc).HandleRestore(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d", rec.Code)
	}
}
