package testutil

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jthomsen/motorlot/internal/domain"
)

// AccountBuilder creates test accounts with a builder pattern
type AccountBuilder struct {
	firstName string
	lastName  string
	email     string
	password  string
	role      domain.Role
}

// NewAccountBuilder creates a new AccountBuilder with default values
func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		firstName: "Test",
		lastName:  "Account",
		email:     fmt.Sprintf("test_%s@example.com", uuid.New().String()[:8]),
		password:  "Sup3r-Secret-Pw!",
		role:      domain.RoleClient,
	}
}

// WithEmail sets the email
func (b *AccountBuilder) WithEmail(email string) *AccountBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *AccountBuilder) WithPassword(password string) *AccountBuilder {
	b.password = password
	return b
}

// WithName sets first and last name
func (b *AccountBuilder) WithName(first, last string) *AccountBuilder {
	b.firstName = first
	b.lastName = last
	return b
}

// WithRole sets the role
func (b *AccountBuilder) WithRole(role domain.Role) *AccountBuilder {
	b.role = role
	return b
}

// Build creates the account in the database and returns it with the raw password
func (b *AccountBuilder) Build(t *testing.T, db *gorm.DB) (*domain.Account, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	account := &domain.Account{
		ID:           uuid.New(),
		FirstName:    b.firstName,
		LastName:     b.lastName,
		Email:        strings.ToLower(b.email),
		PasswordHash: string(hashedPassword),
		Role:         b.role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	return account, b.password
}

// BuildAndLogin creates the account, logs in through the server and
// returns the account plus a client holding the session cookie.
func (b *AccountBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.Account, *http.Client) {
	t.Helper()

	account, password := b.Build(t, ts.DB.DB)
	client := ts.Client(t)

	form := url.Values{}
	form.Set("email", account.Email)
	form.Set("password", password)
	resp, err := client.PostForm(ts.URL("/account/login"), form)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}

	return account, client
}

// ClassificationBuilder creates test classifications
type ClassificationBuilder struct {
	name string
}

func NewClassificationBuilder() *ClassificationBuilder {
	return &ClassificationBuilder{
		name: fmt.Sprintf("Class%s", uuid.New().String()[:8]),
	}
}

func (b *ClassificationBuilder) WithName(name string) *ClassificationBuilder {
	b.name = name
	return b
}

func (b *ClassificationBuilder) Build(t *testing.T, db *gorm.DB) *domain.Classification {
	t.Helper()

	classification := &domain.Classification{Name: b.name}
	if err := db.Create(classification).Error; err != nil {
		t.Fatalf("failed to create classification: %v", err)
	}
	return classification
}

// VehicleBuilder creates test vehicles
type VehicleBuilder struct {
	vehicle domain.Vehicle
}

func NewVehicleBuilder(classificationID int) *VehicleBuilder {
	return &VehicleBuilder{
		vehicle: domain.Vehicle{
			Make:             "Ford",
			Model:            "F150",
			Year:             2020,
			Description:      "A dependable truck",
			Image:            "/images/vehicles/f150.jpg",
			Thumbnail:        "/images/vehicles/f150-tn.jpg",
			Price:            30000,
			Miles:            25000,
			Color:            "Blue",
			ClassificationID: classificationID,
		},
	}
}

func (b *VehicleBuilder) WithMakeModel(make, model string) *VehicleBuilder {
	b.vehicle.Make = make
	b.vehicle.Model = model
	return b
}

func (b *VehicleBuilder) WithYear(year int) *VehicleBuilder {
	b.vehicle.Year = year
	return b
}

func (b *VehicleBuilder) WithPrice(price int) *VehicleBuilder {
	b.vehicle.Price = price
	return b
}

func (b *VehicleBuilder) Build(t *testing.T, db *gorm.DB) *domain.Vehicle {
	t.Helper()

	vehicle := b.vehicle
	if err := db.Create(&vehicle).Error; err != nil {
		t.Fatalf("failed to create vehicle: %v", err)
	}
	return &vehicle
}
