package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	v1 "futuro-do-trabalho-api/internal/delivery/http/v1"
	"futuro-do-trabalho-api/internal/domain"
	"futuro-do-trabalho-api/pkg/apperror"
	"futuro-do-trabalho-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init()
}

// Mock Usecases

type MockUserUC struct {
	mock.Mock
}

func (m *MockUserUC) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserUC) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUC) CreateUser(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUC) UpdateUser(ctx context.Context, id int64, input domain.UpdateUserInput) (*domain.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUC) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobUC struct {
	mock.Mock
}

func (m *MockJobUC) ListJobs(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobUC) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobUC) CreateJob(ctx context.Context, input domain.CreateJobInput) (*domain.Job, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobUC) UpdateJob(ctx context.Context, id int64, input domain.UpdateJobInput) (*domain.Job, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobUC) DeleteJob(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCandidateUC struct {
	mock.Mock
}

func (m *MockCandidateUC) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateUC) GetCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUC) ListCandidatesForJob(ctx context.Context, jobID int64) ([]domain.Candidate, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateUC) CreateCandidate(ctx context.Context, input domain.CreateCandidateInput) (*domain.Candidate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUC) UpdateCandidate(ctx context.Context, id int64, input domain.UpdateCandidateInput) (*domain.Candidate, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUC) DeleteCandidate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type testDeps struct {
	userUC      *MockUserUC
	jobUC       *MockJobUC
	candidateUC *MockCandidateUC
	router      *gin.Engine
}

func newTestRouter() testDeps {
	deps := testDeps{
		userUC:      new(MockUserUC),
		jobUC:       new(MockJobUC),
		candidateUC: new(MockCandidateUC),
	}
	deps.router = v1.NewRouter(v1.RouterDeps{
		UserUC:      deps.userUC,
		JobUC:       deps.jobUC,
		CandidateUC: deps.candidateUC,
	})
	return deps
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func mensagem(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["mensagem"]
}

func TestHealth(t *testing.T) {
	deps := newTestRouter()
	w := doRequest(t, deps.router, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListUsers(t *testing.T) {
	deps := newTestRouter()
	deps.userUC.On("ListUsers", mock.Anything).
		Return([]domain.User{{ID: 1, Name: "Ana", Email: "ana@example.com", Role: "Admin"}}, nil)

	w := doRequest(t, deps.router, http.MethodGet, "/api/v1/usuarios", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Ana", users[0]["nome"])
	assert.Equal(t, "Admin", users[0]["tipo"])
}

func TestGetUserNotFound(t *testing.T) {
	deps := newTestRouter()
	deps.userUC.On("GetUser", mock.Anything, int64(99)).
		Return(nil, apperror.NotFound("Usuário com ID 99 não encontrado."))

	w := doRequest(t, deps.router, http.MethodGet, "/api/v1/usuarios/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Usuário com ID 99 não encontrado.", mensagem(t, w))
}

func TestGetUserInvalidID(t *testing.T) {
	deps := newTestRouter()

	w := doRequest(t, deps.router, http.MethodGet, "/api/v1/usuarios/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ID inválido.", mensagem(t, w))
	deps.userUC.AssertNotCalled(t, "GetUser")
}

func TestCreateUserDuplicate(t *testing.T) {
	deps := newTestRouter()
	deps.userUC.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil, apperror.BadRequest("Já existe um usuário com este email."))

	w := doRequest(t, deps.router, http.MethodPost, "/api/v1/usuarios",
		`{"nome":"Ana","email":"ana@example.com","tipo":"Admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Já existe um usuário com este email.", mensagem(t, w))
}

func TestCreateJob(t *testing.T) {
	deps := newTestRouter()
	deps.jobUC.On("CreateJob", mock.Anything, domain.CreateJobInput{
		Title:       "Dev",
		Description: "Backend",
		Area:        "Tech",
	}).Return(&domain.Job{
		ID:          1,
		Title:       "Dev",
		Description: "Backend",
		Area:        "Tech",
		Candidates:  []domain.Candidate{},
	}, nil)

	w := doRequest(t, deps.router, http.MethodPost, "/api/v1/vagas",
		`{"titulo":"Dev","descricao":"Backend","area":"Tech"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var job map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	assert.Equal(t, float64(1), job["id"])
	assert.Contains(t, job, "dataPublicacao")
	assert.Equal(t, []any{}, job["candidatos"])
}

func TestDeleteJobNoContent(t *testing.T) {
	deps := newTestRouter()
	deps.jobUC.On("DeleteJob", mock.Anything, int64(1)).Return(nil)

	w := doRequest(t, deps.router, http.MethodDelete, "/api/v1/vagas/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestListCandidatesForMissingJob(t *testing.T) {
	deps := newTestRouter()
	deps.candidateUC.On("ListCandidatesForJob", mock.Anything, int64(5)).
		Return(nil, apperror.NotFound("Vaga com ID 5 não encontrada."))

	w := doRequest(t, deps.router, http.MethodGet, "/api/v1/candidatos/vaga/5", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Vaga com ID 5 não encontrada.", mensagem(t, w))
}

func TestCreateCandidateMalformedBody(t *testing.T) {
	deps := newTestRouter()

	w := doRequest(t, deps.router, http.MethodPost, "/api/v1/candidatos", `{"nome":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	deps.candidateUC.AssertNotCalled(t, "CreateCandidate")
}

func TestInternalErrorIsMasked(t *testing.T) {
	deps := newTestRouter()
	deps.userUC.On("ListUsers", mock.Anything).
		Return(nil, assert.AnError)

	w := doRequest(t, deps.router, http.MethodGet, "/api/v1/usuarios", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Ocorreu um erro inesperado. Tente novamente mais tarde.", mensagem(t, w))
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
