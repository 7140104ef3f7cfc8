package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jthomsen/motorlot/internal/api/flash"
	"github.com/jthomsen/motorlot/internal/domain"
	"github.com/jthomsen/motorlot/internal/search"
	"github.com/jthomsen/motorlot/internal/service"
	"github.com/jthomsen/motorlot/internal/view"
)

type InventoryHandler struct {
	*Base
}

func NewInventoryHandler(base *Base) *InventoryHandler {
	return &InventoryHandler{Base: base}
}

// Classification renders the browsing grid for one classification.
func (h *InventoryHandler) Classification(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "classificationID"))
	if err != nil {
		h.RenderNotFound(w, r)
		return
	}

	classification, err := h.Inventory.Classification(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrClassificationNotFound) {
			h.RenderNotFound(w, r)
			return
		}
		h.RenderServerError(w, r, err)
		return
	}

	vehicles, err := h.Inventory.ByClassification(r.Context(), id)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	grid, err := h.Renderer.Grid(vehicles)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	h.RenderPage(w, r, http.StatusOK, classification.Name+" vehicles", grid)
}

// Detail renders the single-vehicle page.
func (h *InventoryHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "vehicleID"))
	if err != nil {
		h.RenderNotFound(w, r)
		return
	}

	vehicle, err := h.Inventory.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			h.RenderNotFound(w, r)
			return
		}
		h.RenderServerError(w, r, err)
		return
	}
	details, err := h.Renderer.Detail(*vehicle)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	title := strconv.Itoa(vehicle.Year) + " " + vehicle.Name()
	h.RenderPage(w, r, http.StatusOK, title, details)
}

// SearchPage renders the full grid plus the facet sidebar.
func (h *InventoryHandler) SearchPage(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Inventory.All(r.Context())
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	grid, err := h.Renderer.Grid(vehicles)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	filters, err := h.Renderer.SearchFilters(vehicles)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	content, err := h.Renderer.SearchPage(filters, grid)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	h.RenderPage(w, r, http.StatusOK, "Search", content)
}

// searchResponse is what the search page script consumes: a grid
// fragment when there are matches, a message when there are none.
type searchResponse struct {
	Grid string `json:"grid,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// SearchResults filters a fresh inventory snapshot against the query
// parameters and returns the replacement grid markup as JSON.
func (h *InventoryHandler) SearchResults(w http.ResponseWriter, r *http.Request) {
	criteria := search.ParseQuery(r.URL.Query())
	matches, err := h.Inventory.Search(r.Context(), criteria)
	if err != nil {
		h.Log.Errorw("search failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var resp searchResponse
	if len(matches) == 0 {
		resp.Msg = "No results found."
	} else {
		grid, err := h.Renderer.Grid(matches)
		if err != nil {
			h.Log.Errorw("grid render failed", "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		resp.Grid = string(grid)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ManagementPage renders the inventory management landing page.
func (h *InventoryHandler) ManagementPage(w http.ResponseWriter, r *http.Request) {
	links, err := h.Renderer.ManagementLinks()
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	h.RenderPage(w, r, http.StatusOK, "Manage Inventory", links)
}

func (h *InventoryHandler) AddClassificationPage(w http.ResponseWriter, r *http.Request) {
	h.renderClassificationForm(w, r, http.StatusOK, view.ClassificationFormData{})
}

type classificationForm struct {
	Name string `validate:"required,alphanum"`
}

func (h *InventoryHandler) AddClassification(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderClassificationForm(w, r, http.StatusBadRequest, view.ClassificationFormData{}, "Invalid form submission.")
		return
	}
	form := classificationForm{Name: r.PostFormValue("name")}
	if msgs := formErrors(validate.Struct(form)); len(msgs) > 0 {
		h.renderClassificationForm(w, r, http.StatusBadRequest, view.ClassificationFormData{Name: form.Name}, msgs...)
		return
	}

	if _, err := h.Inventory.AddClassification(r.Context(), form.Name); err != nil {
		if errors.Is(err, domain.ErrClassificationExists) {
			h.renderClassificationForm(w, r, http.StatusConflict,
				view.ClassificationFormData{Name: form.Name}, "That classification already exists.")
			return
		}
		h.RenderServerError(w, r, err)
		return
	}

	flash.Notice(w, "Classification added successfully.")
	http.Redirect(w, r, "/inv/", http.StatusSeeOther)
}

func (h *InventoryHandler) AddVehiclePage(w http.ResponseWriter, r *http.Request) {
	h.renderVehicleForm(w, r, http.StatusOK, "Add Vehicle", view.VehicleFormData{
		Action: "/inv/add-inventory",
		Submit: "Add Vehicle",
	})
}

type vehicleForm struct {
	Make             string `validate:"required"`
	Model            string `validate:"required"`
	Year             int    `validate:"required,min=1900,max=2100"`
	Description      string `validate:"required"`
	Image            string `validate:"required"`
	Thumbnail        string `validate:"required"`
	Price            int    `validate:"required,min=0"`
	Miles            int    `validate:"min=0"`
	Color            string `validate:"required"`
	ClassificationID int    `validate:"required,min=1"`
}

func (h *InventoryHandler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	form, sticky, msgs := h.parseVehicleForm(r)
	sticky.Action = "/inv/add-inventory"
	sticky.Submit = "Add Vehicle"
	if len(msgs) > 0 {
		h.renderVehicleForm(w, r, http.StatusBadRequest, "Add Vehicle", sticky, msgs...)
		return
	}

	if _, err := h.Inventory.Add(r.Context(), form); err != nil {
		if errors.Is(err, domain.ErrClassificationNotFound) {
			h.renderVehicleForm(w, r, http.StatusBadRequest, "Add Vehicle", sticky, "Please choose a classification.")
			return
		}
		h.RenderServerError(w, r, err)
		return
	}

	flash.Notice(w, "Vehicle added successfully.")
	http.Redirect(w, r, "/inv/", http.StatusSeeOther)
}

// EditVehiclePage renders the edit form sticky with current values.
func (h *InventoryHandler) EditVehiclePage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "vehicleID"))
	if err != nil {
		h.RenderNotFound(w, r)
		return
	}
	vehicle, err := h.Inventory.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			h.RenderNotFound(w, r)
			return
		}
		h.RenderServerError(w, r, err)
		return
	}
	h.renderVehicleForm(w, r, http.StatusOK, "Edit "+vehicle.Name(), view.VehicleFormData{
		Action:      "/inv/update",
		Submit:      "Update Vehicle",
		ID:          vehicle.ID,
		Make:        vehicle.Make,
		Model:       vehicle.Model,
		Year:        vehicle.Year,
		Description: vehicle.Description,
		Image:       vehicle.Image,
		Thumbnail:   vehicle.Thumbnail,
		Price:       vehicle.Price,
		Miles:       vehicle.Miles,
		Color:       vehicle.Color,
	})
}

func (h *InventoryHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	form, sticky, msgs := h.parseVehicleForm(r)
	id, err := strconv.Atoi(r.PostFormValue("id"))
	if err != nil {
		h.RenderNotFound(w, r)
		return
	}
	sticky.Action = "/inv/update"
	sticky.Submit = "Update Vehicle"
	sticky.ID = id
	if len(msgs) > 0 {
		h.renderVehicleForm(w, r, http.StatusBadRequest, "Edit Vehicle", sticky, msgs...)
		return
	}

	vehicle, err := h.Inventory.Update(r.Context(), id, form)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			h.RenderNotFound(w, r)
			return
		}
		if errors.Is(err, domain.ErrClassificationNotFound) {
			h.renderVehicleForm(w, r, http.StatusBadRequest, "Edit Vehicle", sticky, "Please choose a classification.")
			return
		}
		h.RenderServerError(w, r, err)
		return
	}

	flash.Notice(w, "The "+vehicle.Name()+" was successfully updated.")
	http.Redirect(w, r, "/inv/", http.StatusSeeOther)
}

// DeleteVehiclePage renders the delete confirmation.
func (h *InventoryHandler) DeleteVehiclePage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "vehicleID"))
	if err != nil {
		h.RenderNotFound(w, r)
		return
	}
	vehicle, err := h.Inventory.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			h.RenderNotFound(w, r)
			return
		}
		h.RenderServerError(w, r, err)
		return
	}
	content, err := h.Renderer.DeleteConfirm(*vehicle)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	h.RenderPage(w, r, http.StatusOK, "Delete "+vehicle.Name(), content)
}

func (h *InventoryHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.RenderNotFound(w, r)
		return
	}
	id, err := strconv.Atoi(r.PostFormValue("id"))
	if err != nil {
		h.RenderNotFound(w, r)
		return
	}

	vehicle, err := h.Inventory.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			h.RenderNotFound(w, r)
			return
		}
		h.RenderServerError(w, r, err)
		return
	}

	flash.Notice(w, "The "+vehicle.Name()+" was successfully deleted.")
	http.Redirect(w, r, "/inv/", http.StatusSeeOther)
}

// ClassificationJSON returns the raw rows for the management table.
func (h *InventoryHandler) ClassificationJSON(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "classificationID"))
	if err != nil {
		http.Error(w, "Invalid classification id", http.StatusBadRequest)
		return
	}
	vehicles, err := h.Inventory.ByClassification(r.Context(), id)
	if err != nil {
		h.Log.Errorw("inventory fetch failed", "classification", id, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vehicles)
}

func (h *InventoryHandler) parseVehicleForm(r *http.Request) (service.VehicleInput, view.VehicleFormData, []string) {
	if err := r.ParseForm(); err != nil {
		return service.VehicleInput{}, view.VehicleFormData{}, []string{"Invalid form submission."}
	}
	atoi := func(key string) int {
		n, _ := strconv.Atoi(r.PostFormValue(key))
		return n
	}
	form := vehicleForm{
		Make:             r.PostFormValue("make"),
		Model:            r.PostFormValue("model"),
		Year:             atoi("year"),
		Description:      r.PostFormValue("description"),
		Image:            r.PostFormValue("image"),
		Thumbnail:        r.PostFormValue("thumbnail"),
		Price:            atoi("price"),
		Miles:            atoi("miles"),
		Color:            r.PostFormValue("color"),
		ClassificationID: atoi("classificationId"),
	}
	sticky := view.VehicleFormData{
		Make:        form.Make,
		Model:       form.Model,
		Year:        form.Year,
		Description: form.Description,
		Image:       form.Image,
		Thumbnail:   form.Thumbnail,
		Price:       form.Price,
		Miles:       form.Miles,
		Color:       form.Color,
	}
	input := service.VehicleInput{
		Make:             form.Make,
		Model:            form.Model,
		Year:             form.Year,
		Description:      form.Description,
		Image:            form.Image,
		Thumbnail:        form.Thumbnail,
		Price:            form.Price,
		Miles:            form.Miles,
		Color:            form.Color,
		ClassificationID: form.ClassificationID,
	}
	return input, sticky, formErrors(validate.Struct(form))
}

func (h *InventoryHandler) renderClassificationForm(w http.ResponseWriter, r *http.Request, status int, data view.ClassificationFormData, errs ...string) {
	content, err := h.Renderer.ClassificationForm(data)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	h.RenderPage(w, r, status, "Add Classification", content, errs...)
}

func (h *InventoryHandler) renderVehicleForm(w http.ResponseWriter, r *http.Request, status int, title string, data view.VehicleFormData, errs ...string) {
	classifications, err := h.Inventory.Classifications(r.Context())
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	selected := 0
	if data.ID != 0 {
		if vehicle, err := h.Inventory.ByID(r.Context(), data.ID); err == nil {
			selected = vehicle.ClassificationID
		}
	}
	options, err := h.Renderer.ClassificationOptions(classifications, selected)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	data.Options = options

	content, err := h.Renderer.VehicleForm(data)
	if err != nil {
		h.RenderServerError(w, r, err)
		return
	}
	h.RenderPage(w, r, status, title, content, errs...)
}
