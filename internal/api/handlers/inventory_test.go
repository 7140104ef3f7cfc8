package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthomsen/motorlot/internal/domain"
	"github.com/jthomsen/motorlot/internal/testutil"
)

func TestClassificationPage(t *testing.T) {
	ts := testutil.NewTestServer(t)
	trucks := testutil.NewClassificationBuilder().WithName("Truck").Build(t, ts.DB.DB)
	testutil.NewVehicleBuilder(trucks.ID).WithMakeModel("Ford", "F150").Build(t, ts.DB.DB)

	client := ts.Client(t)
	resp, err := client.Get(ts.URL("/inv/type/" + strconv.Itoa(trucks.ID)))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.AssertBodyContains(t, resp, "Ford F150")
}

func TestClassificationPage_NotFound(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := ts.Client(t)

	for _, path := range []string{"/inv/type/9999", "/inv/type/abc"} {
		resp, err := client.Get(ts.URL(path))
		require.NoError(t, err)
		resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	}
}

func TestDetailPage(t *testing.T) {
	ts := testutil.NewTestServer(t)
	trucks := testutil.NewClassificationBuilder().Build(t, ts.DB.DB)
	vehicle := testutil.NewVehicleBuilder(trucks.ID).
		WithMakeModel("Jeep", "Wrangler").
		WithYear(2019).
		WithPrice(28045).
		Build(t, ts.DB.DB)

	client := ts.Client(t)
	resp, err := client.Get(ts.URL("/inv/detail/" + strconv.Itoa(vehicle.ID)))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.AssertBodyContains(t, resp, "$28,045")
}

func TestSearchResults(t *testing.T) {
	ts := testutil.NewTestServer(t)
	trucks := testutil.NewClassificationBuilder().Build(t, ts.DB.DB)
	testutil.NewVehicleBuilder(trucks.ID).WithMakeModel("Ford", "F150").WithYear(2020).WithPrice(30000).Build(t, ts.DB.DB)
	testutil.NewVehicleBuilder(trucks.ID).WithMakeModel("Ram", "1500").WithYear(2018).WithPrice(45000).Build(t, ts.DB.DB)

	client := ts.Client(t)

	type searchResponse struct {
		Grid string `json:"grid"`
		Msg  string `json:"msg"`
	}

	tests := []struct {
		name     string
		query    string
		wantGrid []string
		wantMsg  string
	}{
		{
			name:     "no criteria returns everything",
			query:    "",
			wantGrid: []string{"Ford F150", "Ram 1500"},
		},
		{
			name:     "term match",
			query:    "search=ford",
			wantGrid: []string{"Ford F150"},
		},
		{
			name:     "year facet",
			query:    "year=2018",
			wantGrid: []string{"Ram 1500"},
		},
		{
			name:     "price bracket",
			query:    "prices=" + url.QueryEscape("> 40,000"),
			wantGrid: []string{"Ram 1500"},
		},
		{
			name:    "no matches",
			query:   "search=tesla",
			wantMsg: "No results found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.Get(ts.URL("/inv/search/results?" + tt.query))
			require.NoError(t, err)
			defer resp.Body.Close()

			testutil.AssertStatusCode(t, resp, http.StatusOK)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

			var got searchResponse
			testutil.AssertJSONResponse(t, resp, &got)

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, got.Msg)
				assert.Empty(t, got.Grid)
				return
			}
			for _, name := range tt.wantGrid {
				assert.Contains(t, got.Grid, name)
			}
		})
	}
}

func TestManagementRoutes_RequirePrivileged(t *testing.T) {
	ts := testutil.NewTestServer(t)

	paths := []string{"/inv/", "/inv/add-classification", "/inv/add-inventory", "/inv/getInventory/1"}

	t.Run("anonymous", func(t *testing.T) {
		client := ts.Client(t)
		for _, path := range paths {
			resp, err := client.Get(ts.URL(path))
			require.NoError(t, err)
			resp.Body.Close()
			testutil.AssertRedirect(t, resp, "/account/login")
		}
	})

	t.Run("client role", func(t *testing.T) {
		_, client := testutil.NewAccountBuilder().BuildAndLogin(t, ts)
		for _, path := range paths {
			resp, err := client.Get(ts.URL(path))
			require.NoError(t, err)
			resp.Body.Close()
			testutil.AssertRedirect(t, resp, "/account/login")
		}
	})

	t.Run("employee role", func(t *testing.T) {
		_, client := testutil.NewAccountBuilder().
			WithRole(domain.RoleEmployee).
			BuildAndLogin(t, ts)
		resp, err := client.Get(ts.URL("/inv/"))
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)
		testutil.AssertBodyContains(t, resp, "Add New Vehicle")
	})
}

func TestAddClassification(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, client := testutil.NewAccountBuilder().
		WithRole(domain.RoleAdmin).
		BuildAndLogin(t, ts)

	form := url.Values{}
	form.Set("name", "Sedan")
	resp, err := client.PostForm(ts.URL("/inv/add-classification"), form)
	require.NoError(t, err)
	resp.Body.Close()
	testutil.AssertRedirect(t, resp, "/inv/")

	// Duplicate name, case-insensitively.
	form.Set("name", "sedan")
	resp, err = client.PostForm(ts.URL("/inv/add-classification"), form)
	require.NoError(t, err)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusConflict)
	testutil.AssertBodyContains(t, resp, "That classification already exists.")
}

func TestAddClassification_BadName(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, client := testutil.NewAccountBuilder().
		WithRole(domain.RoleEmployee).
		BuildAndLogin(t, ts)

	form := url.Values{}
	form.Set("name", "Has Spaces!")
	resp, err := client.PostForm(ts.URL("/inv/add-classification"), form)
	require.NoError(t, err)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
}

func vehicleForm(classificationID int) url.Values {
	return url.Values{
		"make":             {"Chevy"},
		"model":            {"Camaro"},
		"year":             {"2018"},
		"description":      {"If you want to look cool this is the car you need!"},
		"image":            {"/images/vehicles/camaro.jpg"},
		"thumbnail":        {"/images/vehicles/camaro-tn.jpg"},
		"price":            {"25000"},
		"miles":            {"101222"},
		"color":            {"Silver"},
		"classificationId": {strconv.Itoa(classificationID)},
	}
}

func TestVehicleLifecycle(t *testing.T) {
	ts := testutil.NewTestServer(t)
	classification := testutil.NewClassificationBuilder().Build(t, ts.DB.DB)
	_, client := testutil.NewAccountBuilder().
		WithRole(domain.RoleEmployee).
		BuildAndLogin(t, ts)

	// Add
	resp, err := client.PostForm(ts.URL("/inv/add-inventory"), vehicleForm(classification.ID))
	require.NoError(t, err)
	resp.Body.Close()
	testutil.AssertRedirect(t, resp, "/inv/")

	vehicles, err := ts.Repos.Vehicle.GetByClassification(context.Background(), classification.ID)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	id := vehicles[0].ID

	// Edit page is sticky with the stored values.
	resp, err = client.Get(ts.URL("/inv/edit/" + strconv.Itoa(id)))
	require.NoError(t, err)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.AssertBodyContains(t, resp, "Camaro")

	// Update
	form := vehicleForm(classification.ID)
	form.Set("id", strconv.Itoa(id))
	form.Set("price", "23500")
	resp, err = client.PostForm(ts.URL("/inv/update"), form)
	require.NoError(t, err)
	resp.Body.Close()
	testutil.AssertRedirect(t, resp, "/inv/")

	updated, err := ts.Repos.Vehicle.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 23500, updated.Price)

	// Delete
	del := url.Values{"id": {strconv.Itoa(id)}}
	resp, err = client.PostForm(ts.URL("/inv/delete"), del)
	require.NoError(t, err)
	resp.Body.Close()
	testutil.AssertRedirect(t, resp, "/inv/")

	_, err = ts.Repos.Vehicle.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
}

func TestAddVehicle_UnknownClassification(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, client := testutil.NewAccountBuilder().
		WithRole(domain.RoleEmployee).
		BuildAndLogin(t, ts)

	resp, err := client.PostForm(ts.URL("/inv/add-inventory"), vehicleForm(9999))
	require.NoError(t, err)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	testutil.AssertBodyContains(t, resp, "Please choose a classification.")
}

func TestClassificationJSON(t *testing.T) {
	ts := testutil.NewTestServer(t)
	trucks := testutil.NewClassificationBuilder().Build(t, ts.DB.DB)
	testutil.NewVehicleBuilder(trucks.ID).WithMakeModel("Ford", "F150").Build(t, ts.DB.DB)
	_, client := testutil.NewAccountBuilder().
		WithRole(domain.RoleEmployee).
		BuildAndLogin(t, ts)

	resp, err := client.Get(ts.URL(fmt.Sprintf("/inv/getInventory/%d", trucks.ID)))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var vehicles []domain.Vehicle
	testutil.AssertJSONResponse(t, resp, &vehicles)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "F150", vehicles[0].Model)
}

func TestHomeAndNotFound(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := ts.Client(t)

	resp, err := client.Get(ts.URL("/"))
	require.NoError(t, err)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	resp, err = client.Get(ts.URL("/no/such/page"))
	require.NoError(t, err)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	testutil.AssertBodyContains(t, resp, "we appear to have lost that page")
}
