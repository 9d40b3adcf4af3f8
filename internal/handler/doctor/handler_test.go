package doctor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pharmadesk/pharmacy-api/internal/model"
	doctorService "github.com/pharmadesk/pharmacy-api/internal/service/doctor"
)

type mockDoctorRepo struct {
	doctors      []*model.Doctor
	specialities map[string][]string
	counts       map[string]int64
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{
		specialities: make(map[string][]string),
		counts:       make(map[string]int64),
	}
}

func (m *mockDoctorRepo) Create(_ context.Context, req *model.CreateDoctorRequest) error {
	m.doctors = append(m.doctors, &model.Doctor{DocID: req.DocID, Name: req.Name})
	m.specialities[req.DocID] = req.Specialities
	return nil
}

func (m *mockDoctorRepo) Get(_ context.Context, docID string) (*model.Doctor, error) {
	for _, d := range m.doctors {
		if d.DocID == docID {
			doctor := &model.Doctor{DocID: d.DocID, Name: d.Name}
			if specs := m.specialities[docID]; len(specs) > 0 {
				joined := strings.Join(specs, ", ")
				doctor.Specialities = &joined
			}
			return doctor, nil
		}
	}
	return nil, nil
}

func (m *mockDoctorRepo) Update(_ context.Context, docID string, req *model.UpdateDoctorRequest) error {
	for _, d := range m.doctors {
		if d.DocID == docID {
			d.Name = req.Name
		}
	}
	return nil
}

func (m *mockDoctorRepo) Delete(_ context.Context, docID string) error {
	for i, d := range m.doctors {
		if d.DocID == docID {
			m.doctors = append(m.doctors[:i], m.doctors[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockDoctorRepo) List(_ context.Context) ([]*model.Doctor, error) {
	return m.doctors, nil
}

func (m *mockDoctorRepo) PrescriptionCount(_ context.Context, docID string) (*model.CountResult, error) {
	return &model.CountResult{Count: m.counts[docID]}, nil
}

func newTestRouter(repo *mockDoctorRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewHandler(doctorService.NewService(repo))
	h.RegisterRoutes(engine.Group("/api"))
	return engine
}

func performRequest(engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestCreateDoctorWithSpecialities(t *testing.T) {
	engine := newTestRouter(newMockDoctorRepo())

	createResp := performRequest(engine, http.MethodPost, "/api/doctors", map[string]interface{}{
		"doc_id":       "D1",
		"d_name":       "Dr. Smith",
		"specialities": []string{"Cardiology", "Pediatrics"},
	})
	assert.Equal(t, http.StatusCreated, createResp.Code)

	getResp := performRequest(engine, http.MethodGet, "/api/doctors/D1", nil)
	assert.Equal(t, http.StatusOK, getResp.Code)

	var doctor map[string]interface{}
	assert.NoError(t, json.Unmarshal(getResp.Body.Bytes(), &doctor))
	// Both specialities land in one delimited field, in the order supplied.
	assert.Equal(t, "Cardiology, Pediatrics", doctor["specialities"])
}

func TestCreateDoctorWithoutSpecialities(t *testing.T) {
	engine := newTestRouter(newMockDoctorRepo())

	createResp := performRequest(engine, http.MethodPost, "/api/doctors", map[string]interface{}{
		"doc_id": "D2",
		"d_name": "Dr. Jones",
	})
	assert.Equal(t, http.StatusCreated, createResp.Code)

	getResp := performRequest(engine, http.MethodGet, "/api/doctors/D2", nil)
	var doctor map[string]interface{}
	assert.NoError(t, json.Unmarshal(getResp.Body.Bytes(), &doctor))
	assert.Nil(t, doctor["specialities"])
}

func TestGetMissingDoctorReturnsNull(t *testing.T) {
	engine := newTestRouter(newMockDoctorRepo())

	resp := performRequest(engine, http.MethodGet, "/api/doctors/NOPE", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "null", resp.Body.String())
}

func TestPrescriptionCount(t *testing.T) {
	repo := newMockDoctorRepo()
	repo.counts["D1"] = 7
	engine := newTestRouter(repo)

	resp := performRequest(engine, http.MethodGet, "/api/doctors/D1/prescription-count", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, float64(7), body["prescription_count"])
}
