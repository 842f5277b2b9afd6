package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDroughtRegionHandler(t *testing.T) {
	h := newHandlers()

	regions := []string{
		`{"name":"Turkana","country":"Kenya","latitude":3.12,"longitude":35.6,"waterStressLevel":"extremely_high"}`,
		`{"name":"Rajasthan","country":"India","latitude":27.02,"longitude":74.22}`,
	}
	var ids []string
	for _, body := range regions {
		resp := call(t, h.droughtRegion.CreateRegion, http.MethodPost, "/api/admin/drought-regions", body)
		require.Equal(t, http.StatusCreated, resp.Status)

		var region struct {
			ID               string `json:"id"`
			WaterStressLevel string `json:"waterStressLevel"`
		}
		resp.decode(t, &region)
		ids = append(ids, region.ID)
	}

	// Dubai is closer to Rajasthan than to Turkana
	resp := call(t, h.droughtRegion.ListRegions, http.MethodGet, "/api/drought-regions?lat=25.2&lng=55.27", "")
	require.Equal(t, http.StatusOK, resp.Status)

	var listed []struct {
		ID         string   `json:"id"`
		DistanceKm *float64 `json:"distanceKm"`
	}
	resp.decode(t, &listed)
	require.Len(t, listed, 2)
	assert.Equal(t, ids[1], listed[0].ID)
	require.NotNil(t, listed[0].DistanceKm)
	assert.Less(t, *listed[0].DistanceKm, *listed[1].DistanceKm)

	resp = call(t, h.droughtRegion.ListRegions, http.MethodGet, "/api/drought-regions", "")
	var unsorted []struct {
		ID         string   `json:"id"`
		DistanceKm *float64 `json:"distanceKm"`
	}
	resp.decode(t, &unsorted)
	require.Len(t, unsorted, 2)
	for _, region := range unsorted {
		assert.Nil(t, region.DistanceKm)
	}

	resp = call(t, h.droughtRegion.UpdateImpactMetrics, http.MethodPut, "/api/admin/drought-regions/"+ids[0]+"/metrics",
		`{"bottlesSaved":100,"co2Reduced":5,"familiesHelped":12,"communityEngagement":40}`, "id", ids[0])
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestDroughtRegionHandler_Errors(t *testing.T) {
	h := newHandlers()

	tests := []struct {
		name     string
		target   string
		wantCode string
	}{
		{name: "lat without lng", target: "/api/drought-regions?lat=25.2", wantCode: "INVALID_QUERY"},
		{name: "non numeric", target: "/api/drought-regions?lat=north&lng=1", wantCode: "INVALID_QUERY"},
		{name: "out of range", target: "/api/drought-regions?lat=95&lng=1", wantCode: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, h.droughtRegion.ListRegions, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusBadRequest, resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}

	resp := call(t, h.droughtRegion.CreateRegion, http.MethodPost, "/api/admin/drought-regions", `{"name":"Nowhere","country":"X"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Status)

	missing := uuid.NewString()
	resp = call(t, h.droughtRegion.UpdateImpactMetrics, http.MethodPut, "/api/admin/drought-regions/"+missing+"/metrics",
		`{"bottlesSaved":1,"co2Reduced":1,"familiesHelped":1,"communityEngagement":1}`, "id", missing)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "DROUGHT_REGION_NOT_FOUND", resp.Error.Code)
}
