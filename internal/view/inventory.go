package view

import (
	"html/template"
	"sort"

	"github.com/jthomsen/motorlot/internal/domain"
)

const fragmentTemplates = `
{{define "nav"}}<ul>
  <li><a href="/" title="Home">Home</a></li>
{{range .}}  <li><a href="/inv/type/{{.ID}}" title="See our inventory of {{.Name}} vehicles">{{.Name}}</a></li>
{{end}}</ul>{{end}}

{{define "grid"}}{{if .}}<ul id="inv-display">
{{range .}}  <li>
    <a href="/inv/detail/{{.ID}}" title="View {{.Make}} {{.Model}} details"><img src="{{.Thumbnail}}" alt="Image of {{.Make}} {{.Model}} on Motorlot"></a>
    <div class="namePrice">
      <hr>
      <h2><a href="/inv/detail/{{.ID}}" title="View {{.Make}} {{.Model}} details">{{.Make}} {{.Model}}</a></h2>
      <span>{{usd .Price}}</span>
    </div>
  </li>
{{end}}</ul>{{else}}<p id="inv-display">Sorry, no matching vehicles could be found.</p>{{end}}{{end}}

{{define "detail"}}<section class="vehicle-detail">
  <div>
    <img src="{{.Image}}" alt="Main image of {{.Make}} {{.Model}} on Motorlot" class="main">
    <div class="thumbnail-container">
      <img src="{{.Thumbnail}}" alt="Thumbnail of {{.Make}} {{.Model}} on Motorlot" class="thumbnail">
    </div>
  </div>
  <div class="info">
    <h2>{{.Year}} {{.Make}} {{.Model}}</h2>
    <div class="detail"><span class="label">Price:</span> <span class="value">{{usd .Price}}</span></div>
    <div class="detail"><span class="label">Miles:</span> <span class="value">{{.Miles}} miles</span></div>
    <div class="detail"><span class="label">Color:</span> <span class="value">{{.Color}}</span></div>
    <div class="detail"><span class="label">Description:</span> <span class="value">{{.Description}}</span></div>
  </div>
</section>{{end}}

{{define "options"}}{{range .Classifications}}<option value="{{.ID}}"{{if eq .ID $.Selected}} selected{{end}}>{{.Name}}</option>
{{end}}{{end}}

{{define "filters"}}<aside class="filters">
  <div class="search-box">
    <input type="text" id="search" name="search" placeholder="Search by make or model">
    <button type="button" id="searchBtn">Search</button>
  </div>
  <fieldset>
    <legend>Year</legend>
{{range .Years}}    <label><input type="checkbox" name="year" value="{{.}}"> {{.}}</label>
{{end}}  </fieldset>
  <fieldset>
    <legend>Price</legend>
{{range .Prices}}    <label><input type="checkbox" name="prices" value="{{.}}"> {{.}}</label>
{{end}}  </fieldset>
</aside>{{end}}

{{define "managementLinks"}}<ul class="management-links">
  <li><a href="/inv/add-classification">Add New Classification</a></li>
  <li><a href="/inv/add-inventory">Add New Vehicle</a></li>
</ul>{{end}}
` + formTemplates

// Nav builds the classification navigation list.
func (r *Renderer) Nav(classifications []domain.Classification) (template.HTML, error) {
	return r.fragment("nav", classifications)
}

// Grid builds the vehicle grid, or the no-results message when the
// slice is empty.
func (r *Renderer) Grid(vehicles []domain.Vehicle) (template.HTML, error) {
	return r.fragment("grid", vehicles)
}

// Detail builds the single-vehicle detail section.
func (r *Renderer) Detail(vehicle domain.Vehicle) (template.HTML, error) {
	return r.fragment("detail", vehicle)
}

type optionsData struct {
	Classifications []domain.Classification
	Selected        int
}

// ClassificationOptions builds the <option> list for classification
// select menus, marking the selected id when non-zero.
func (r *Renderer) ClassificationOptions(classifications []domain.Classification, selected int) (template.HTML, error) {
	return r.fragment("options", optionsData{Classifications: classifications, Selected: selected})
}

type filtersData struct {
	Years  []int
	Prices []string
}

// Price brackets offered on the search sidebar.
var priceBrackets = []string{"< 20,000", "20,000-35,000", "35,000-60,000", "> 60,000"}

// SearchFilters builds the facet sidebar: one checkbox per distinct
// year present in the inventory (descending) plus the fixed price
// brackets.
func (r *Renderer) SearchFilters(vehicles []domain.Vehicle) (template.HTML, error) {
	seen := map[int]bool{}
	var years []int
	for _, v := range vehicles {
		if !seen[v.Year] {
			seen[v.Year] = true
			years = append(years, v.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return r.fragment("filters", filtersData{Years: years, Prices: priceBrackets})
}

// ManagementLinks builds the inventory management link list.
func (r *Renderer) ManagementLinks() (template.HTML, error) {
	return r.fragment("managementLinks", nil)
}
