package view

import (
	"html/template"

	"github.com/jthomsen/motorlot/internal/domain"
)

const formTemplates = `
{{define "loginForm"}}<form action="/account/login" method="post" class="account-form">
  <label>Email <input type="email" name="email" value="{{.Email}}" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Login</button>
  <p>No account? <a href="/account/register">Sign up</a></p>
</form>{{end}}

{{define "registerForm"}}<form action="/account/register" method="post" class="account-form">
  <label>First name <input type="text" name="firstName" value="{{.FirstName}}" required></label>
  <label>Last name <input type="text" name="lastName" value="{{.LastName}}" required></label>
  <label>Email <input type="email" name="email" value="{{.Email}}" required></label>
  <label>Password <input type="password" name="password" required>
    <span class="hint">12+ characters with upper, lower, number and symbol</span></label>
  <button type="submit">Register</button>
</form>{{end}}

{{define "accountManagement"}}<section class="account-management">
  <h2>Welcome {{.FirstName}}</h2>
  <p><a href="/account/update">Update account information</a></p>
{{if .Privileged}}  <p><a href="/inv/">Manage inventory</a></p>
{{end}}</section>{{end}}

{{define "updateForms"}}<form action="/account/update" method="post" class="account-form">
  <h2>Update Account</h2>
  <label>First name <input type="text" name="firstName" value="{{.FirstName}}" required></label>
  <label>Last name <input type="text" name="lastName" value="{{.LastName}}" required></label>
  <label>Email <input type="email" name="email" value="{{.Email}}" required></label>
  <button type="submit">Save</button>
</form>
<form action="/account/password" method="post" class="account-form">
  <h2>Change Password</h2>
  <label>New password <input type="password" name="password" required>
    <span class="hint">12+ characters with upper, lower, number and symbol</span></label>
  <button type="submit">Change Password</button>
</form>{{end}}

{{define "classificationForm"}}<form action="/inv/add-classification" method="post" class="management-form">
  <label>Classification name <input type="text" name="name" value="{{.Name}}" required>
    <span class="hint">Letters and numbers only, no spaces</span></label>
  <button type="submit">Add Classification</button>
</form>{{end}}

{{define "vehicleForm"}}<form action="{{.Action}}" method="post" class="management-form">
{{if .ID}}  <input type="hidden" name="id" value="{{.ID}}">
{{end}}  <label>Classification <select name="classificationId" required>{{.Options}}</select></label>
  <label>Make <input type="text" name="make" value="{{.Make}}" required></label>
  <label>Model <input type="text" name="model" value="{{.Model}}" required></label>
  <label>Year <input type="number" name="year" value="{{if .Year}}{{.Year}}{{end}}" min="1900" max="2100" required></label>
  <label>Description <textarea name="description" required>{{.Description}}</textarea></label>
  <label>Image path <input type="text" name="image" value="{{.Image}}" required></label>
  <label>Thumbnail path <input type="text" name="thumbnail" value="{{.Thumbnail}}" required></label>
  <label>Price <input type="number" name="price" value="{{if .Price}}{{.Price}}{{end}}" min="0" required></label>
  <label>Miles <input type="number" name="miles" value="{{if .Miles}}{{.Miles}}{{end}}" min="0" required></label>
  <label>Color <input type="text" name="color" value="{{.Color}}" required></label>
  <button type="submit">{{.Submit}}</button>
</form>{{end}}

{{define "deleteConfirm"}}<p>Confirm deletion. This cannot be undone.</p>
<form action="/inv/delete" method="post" class="management-form">
  <input type="hidden" name="id" value="{{.ID}}">
  <p>{{.Year}} {{.Make}} {{.Model}} — {{usd .Price}}</p>
  <button type="submit">Delete Vehicle</button>
</form>{{end}}

{{define "searchPage"}}{{.Filters}}
<section class="search-results">{{.Grid}}</section>
<script src="/js/search.js"></script>{{end}}
`

type LoginFormData struct {
	Email string
}

func (r *Renderer) LoginForm(data LoginFormData) (template.HTML, error) {
	return r.fragment("loginForm", data)
}

type RegisterFormData struct {
	FirstName string
	LastName  string
	Email     string
}

func (r *Renderer) RegisterForm(data RegisterFormData) (template.HTML, error) {
	return r.fragment("registerForm", data)
}

type accountManagementData struct {
	FirstName  string
	Privileged bool
}

// AccountManagement builds the signed-in landing section. Privileged
// accounts also get the inventory management link.
func (r *Renderer) AccountManagement(account *domain.Account) (template.HTML, error) {
	return r.fragment("accountManagement", accountManagementData{
		FirstName:  account.FirstName,
		Privileged: account.Role.Privileged(),
	})
}

// UpdateForms builds the profile-update and change-password forms,
// sticky with the account's current values.
func (r *Renderer) UpdateForms(account *domain.Account) (template.HTML, error) {
	return r.fragment("updateForms", account)
}

type ClassificationFormData struct {
	Name string
}

func (r *Renderer) ClassificationForm(data ClassificationFormData) (template.HTML, error) {
	return r.fragment("classificationForm", data)
}

// VehicleFormData carries sticky values for the add and edit forms.
type VehicleFormData struct {
	Action      string
	Submit      string
	ID          int
	Make        string
	Model       string
	Year        int
	Description string
	Image       string
	Thumbnail   string
	Price       int
	Miles       int
	Color       string
	Options     template.HTML
}

func (r *Renderer) VehicleForm(data VehicleFormData) (template.HTML, error) {
	return r.fragment("vehicleForm", data)
}

func (r *Renderer) DeleteConfirm(vehicle domain.Vehicle) (template.HTML, error) {
	return r.fragment("deleteConfirm", vehicle)
}

type searchPageData struct {
	Filters template.HTML
	Grid    template.HTML
}

// SearchPage combines the facet sidebar and the initial full grid.
func (r *Renderer) SearchPage(filters, grid template.HTML) (template.HTML, error) {
	return r.fragment("searchPage", searchPageData{Filters: filters, Grid: grid})
}
