package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/institutionhub/internal/app/clients/userservice"
	"github.com/dalemusser/institutionhub/internal/app/system/apperr"
	"github.com/dalemusser/institutionhub/internal/domain/models"
	"go.uber.org/zap"
)

var errDisk = errors.New("disk on fire")

// memStore is an in-memory store keyed by id. saves records every saved
// value in order.
type memStore[T any] struct {
	mu      sync.Mutex
	items   map[string]T
	order   []string
	saves   []T
	idOf    func(T) string
	setID   func(*T, string)
	nextID  int
	prefix  string
	failGet bool
	// failSaveAt makes the n-th Save (1-based) fail; 0 disables it.
	failSaveAt int
}

func (m *memStore[T]) GetByID(_ context.Context, id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, apperr.Storage("get", errDisk)
	}
	v, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (m *memStore[T]) GetByIDs(_ context.Context, ids []string) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, apperr.Storage("get", errDisk)
	}
	var out []T
	// reverse order: callers must not rely on input order
	for i := len(ids) - 1; i >= 0; i-- {
		if v, ok := m.items[ids[i]]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memStore[T]) Save(_ context.Context, v T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSaveAt > 0 && len(m.saves)+1 == m.failSaveAt {
		m.saves = append(m.saves, v)
		var zero T
		return zero, apperr.Storage("save", errDisk)
	}
	if m.idOf(v) == "" {
		m.nextID++
		m.setID(&v, fmt.Sprintf("%s%d", m.prefix, m.nextID))
	}
	id := m.idOf(v)
	if _, ok := m.items[id]; !ok {
		m.order = append(m.order, id)
	}
	m.items[id] = v
	m.saves = append(m.saves, v)
	return v, nil
}

func (m *memStore[T]) List(context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.items[id])
	}
	return out, nil
}

func (m *memStore[T]) put(v T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.idOf(v)
	if _, ok := m.items[id]; !ok {
		m.order = append(m.order, id)
	}
	m.items[id] = v
}

func (m *memStore[T]) get(id string) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[id]
	return v, ok
}

func newInstitutionStore() *memStore[models.Institution] {
	return &memStore[models.Institution]{
		items:  map[string]models.Institution{},
		idOf:   func(i models.Institution) string { return i.ID },
		setID:  func(i *models.Institution, id string) { i.ID = id },
		prefix: "inst-",
	}
}

func newClassroomStore() *memStore[models.Classroom] {
	return &memStore[models.Classroom]{
		items:  map[string]models.Classroom{},
		idOf:   func(c models.Classroom) string { return c.ID },
		setID:  func(c *models.Classroom, id string) { c.ID = id },
		prefix: "cls-",
	}
}

// userCall is one request received by fakeUsers.
type userCall struct {
	Method string
	Path   string
	Body   userservice.UserRequest
}

// fakeUsers is an httptest-backed user service. Users live in a map;
// failures maps "METHOD /path" to a status code to return instead.
type fakeUsers struct {
	mu       sync.Mutex
	users    map[string]models.RemoteUser
	failures map[string]int
	calls    []userCall
	nextID   int
	// arrive, when set, runs before the request is handled and outside mu,
	// so it may block one request while others proceed.
	arrive func(method, path string)
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]models.RemoteUser{}, failures: map[string]int{}}
}

func (f *fakeUsers) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/users")
	if f.arrive != nil {
		f.arrive(r.Method, path)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	call := userCall{Method: r.Method, Path: path}
	if r.Method == http.MethodPost || r.Method == http.MethodPut {
		_ = json.NewDecoder(r.Body).Decode(&call.Body)
	}
	f.calls = append(f.calls, call)

	if code, ok := f.failures[r.Method+" "+path]; ok {
		w.WriteHeader(code)
		_, _ = w.Write([]byte(`{"success":false,"message":"injected"}`))
		return
	}

	id := strings.Trim(strings.TrimSuffix(path, "/restore"), "/")
	switch {
	case r.Method == http.MethodPost && id == "":
		f.nextID++
		u := models.RemoteUser{
			ID:            fmt.Sprintf("u-new-%d", f.nextID),
			InstitutionID: call.Body.InstitutionID,
			FirstName:     call.Body.FirstName,
			LastName:      call.Body.LastName,
			Email:         call.Body.Email,
			Role:          call.Body.Role,
			Status:        call.Body.Status,
		}
		f.users[u.ID] = u
		writeUser(w, http.StatusCreated, u)
	case r.Method == http.MethodGet:
		u, ok := f.users[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeUser(w, http.StatusOK, u)
	case r.Method == http.MethodPut:
		u, ok := f.users[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		u.InstitutionID = call.Body.InstitutionID
		f.users[id] = u
		writeUser(w, http.StatusOK, u)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeUser(w http.ResponseWriter, code int, u models.RemoteUser) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok", "data": u})
}

func (f *fakeUsers) add(u models.RemoteUser) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ID] = u
}

func (f *fakeUsers) user(id string) models.RemoteUser {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id]
}

func (f *fakeUsers) fail(method, path string, code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[method+" "+path] = code
}

func (f *fakeUsers) callsTo(method, path string) []userCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []userCall
	for _, c := range f.calls {
		if c.Method == method && c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

type harness struct {
	orch         *Orchestrator
	institutions *memStore[models.Institution]
	classrooms   *memStore[models.Classroom]
	users        *fakeUsers
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	users := newFakeUsers()
	srv := httptest.NewServer(users)
	t.Cleanup(srv.Close)

	h := &harness{
		institutions: newInstitutionStore(),
		classrooms:   newClassroomStore(),
		users:        users,
	}
	client := userservice.New(srv.URL+"/users", 5*time.Second, zap.NewNop())
	h.orch = New(h.institutions, h.classrooms, client, zap.NewNop())
	return h
}

func validDirector() *UserInput {
	return &UserInput{
		FirstName:      "Dora",
		LastName:       "Quispe",
		DocumentType:   "DNI",
		DocumentNumber: "12345678",
		Phone:          "999888777",
		Email:          "d@x.edu",
		Role:           models.RoleDirector,
	}
}

func createRequest(classrooms ...ClassroomInput) CreateInstitutionRequest {
	return CreateInstitutionRequest{
		InstitutionInformation: InstitutionInformationInput{
			InstitutionName:  "I.E.I. Los Pinos",
			CodeInstitution:  "LP-01",
			ModularCode:      "0456789",
			InstitutionType:  "PUBLICA",
			InstitutionLevel: "INICIAL",
			Gender:           "MIXTO",
		},
		Address: AddressInput{
			Street:     "Jr. Lima 100",
			District:   "Cañete",
			Province:   "Cañete",
			Department: "Lima",
		},
		ContactMethods: []ContactMethodInput{{Type: "PHONE", Value: "01-555"}},
		GradingType:    "LITERAL",
		ClassroomType:  "POR_EDAD",
		Schedules:      []ScheduleInput{{Type: "MANANA", EntryTime: "08:00", ExitTime: "12:30"}},
		Classrooms:     classrooms,
		Director:       validDirector(),
		UGEL:           "UGEL 08",
		DRE:            "DRE Lima Provincias",
	}
}

func updateRequest(directorID string) UpdateInstitutionRequest {
	return UpdateInstitutionRequest{
		InstitutionInformation: InstitutionInformationInput{
			InstitutionName:  "I.E.I. Los Pinos Renovado",
			CodeInstitution:  "LP-01",
			ModularCode:      "0456789",
			InstitutionType:  "PUBLICA",
			InstitutionLevel: "INICIAL",
			Gender:           "MIXTO",
		},
		Address:       AddressInput{Street: "Jr. Lima 200", District: "Cañete", Province: "Cañete", Department: "Lima"},
		GradingType:   "NUMERICO",
		ClassroomType: "MIXTA",
		DirectorID:    directorID,
		AuxiliaryIDs:  []string{"a1"},
		UGEL:          "UGEL 08",
		DRE:           "DRE Lima Provincias",
	}
}

// seedInstitution stores an active institution directly.
func (h *harness) seedInstitution(id, directorID string, classroomIDs ...string) models.Institution {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	inst := models.Institution{
		ID:     id,
		Status: "ACTIVE",
		InstitutionInformation: models.InstitutionInformation{
			InstitutionName: "Seeded " + id,
		},
		ClassroomIDs: classroomIDs,
		DirectorID:   directorID,
		AuxiliaryIDs: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if inst.ClassroomIDs == nil {
		inst.ClassroomIDs = []string{}
	}
	h.institutions.put(inst)
	return inst
}

func (h *harness) seedClassroom(id, institutionID string, deleted bool) models.Classroom {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cl := models.Classroom{
		ID:            id,
		InstitutionID: institutionID,
		Name:          "Sala " + id,
		Age:           "4",
		Capacity:      15,
		Status:        "ACTIVE",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if deleted {
		cl.Status = "INACTIVE"
		cl.DeletedAt = &now
	}
	h.classrooms.put(cl)
	return cl
}
