package drug

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pharmadesk/pharmacy-api/internal/model"
	drugService "github.com/pharmadesk/pharmacy-api/internal/service/drug"
)

type mockDrugRepo struct {
	drugs  []*model.Drug
	priced []*model.PricedDrug
	prices map[string]float64
}

func newMockDrugRepo() *mockDrugRepo {
	return &mockDrugRepo{prices: make(map[string]float64)}
}

func (m *mockDrugRepo) Create(_ context.Context, req *model.CreateDrugRequest) error {
	m.drugs = append(m.drugs, &model.Drug{
		DrugName:    req.DrugName,
		Description: req.Description,
		CompanyID:   req.CompanyID,
	})
	return nil
}

func (m *mockDrugRepo) Get(_ context.Context, drugName string) (*model.Drug, error) {
	for _, d := range m.drugs {
		if d.DrugName == drugName {
			return d, nil
		}
	}
	return nil, nil
}

func (m *mockDrugRepo) Update(_ context.Context, drugName string, req *model.UpdateDrugRequest) error {
	for _, d := range m.drugs {
		if d.DrugName == drugName {
			d.Description = req.Description
			d.CompanyID = req.CompanyID
		}
	}
	return nil
}

func (m *mockDrugRepo) Delete(_ context.Context, drugName string) error {
	for i, d := range m.drugs {
		if d.DrugName == drugName {
			m.drugs = append(m.drugs[:i], m.drugs[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockDrugRepo) List(_ context.Context) ([]*model.Drug, error) {
	return m.drugs, nil
}

func (m *mockDrugRepo) ListBelowPrice(_ context.Context, threshold float64) ([]*model.PricedDrug, error) {
	var below []*model.PricedDrug
	for _, p := range m.priced {
		if p.Price < threshold {
			below = append(below, p)
		}
	}
	return below, nil
}

func (m *mockDrugRepo) UpdatePrice(_ context.Context, req *model.UpdateDrugPriceRequest) error {
	m.prices[req.PharID+"/"+req.DrugName] = req.NewPrice
	return nil
}

func newTestRouter(repo *mockDrugRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewHandler(drugService.NewService(repo))
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

func TestCreateThenGetDrug(t *testing.T) {
	engine := newTestRouter(newMockDrugRepo())

	createResp := performRequest(engine, http.MethodPost, "/api/drugs", map[string]interface{}{
		"drug_name":   "Aspirin",
		"description": "Pain relief",
		"company_id":  "C1",
	})
	assert.Equal(t, http.StatusCreated, createResp.Code)

	getResp := performRequest(engine, http.MethodGet, "/api/drugs/Aspirin", nil)
	assert.Equal(t, http.StatusOK, getResp.Code)

	var drug map[string]interface{}
	assert.NoError(t, json.Unmarshal(getResp.Body.Bytes(), &drug))
	assert.Equal(t, "Aspirin", drug["drug_name"])
	assert.Equal(t, "Pain relief", drug["description"])
}

func TestListBelowPrice(t *testing.T) {
	repo := newMockDrugRepo()
	repo.priced = []*model.PricedDrug{
		{DrugName: "Aspirin", PharID: "PH1", Price: 4.99},
		{DrugName: "Ibuprofen", PharID: "PH1", Price: 12.50},
	}
	engine := newTestRouter(repo)

	resp := performRequest(engine, http.MethodGet, "/api/drugs/below-price/10", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	var drugs []map[string]interface{}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &drugs))
	assert.Len(t, drugs, 1)
	assert.Equal(t, "Aspirin", drugs[0]["drug_name"])
}

func TestListBelowPriceInvalidThreshold(t *testing.T) {
	engine := newTestRouter(newMockDrugRepo())

	resp := performRequest(engine, http.MethodGet, "/api/drugs/below-price/cheap", nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListBelowPriceEmptyReturnsEmptyArray(t *testing.T) {
	engine := newTestRouter(newMockDrugRepo())

	resp := performRequest(engine, http.MethodGet, "/api/drugs/below-price/1", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "[]", resp.Body.String())
}

func TestUpdatePricePerPharmacy(t *testing.T) {
	repo := newMockDrugRepo()
	engine := newTestRouter(repo)

	resp := performRequest(engine, http.MethodPut, "/api/drugs/update-price", map[string]interface{}{
		"phar_id":   "PH1",
		"drug_name": "Aspirin",
		"new_price": 6.25,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 6.25, repo.prices["PH1/Aspirin"])
}

func TestUpdatePriceMissingPharmacyRejected(t *testing.T) {
	engine := newTestRouter(newMockDrugRepo())

	resp := performRequest(engine, http.MethodPut, "/api/drugs/update-price", map[string]interface{}{
		"drug_name": "Aspirin",
		"new_price": 6.25,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
