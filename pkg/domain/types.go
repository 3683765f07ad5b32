package domain

import "time"

type CarStatus string

const (
	CarAvailable CarStatus = "available"
	CarSold      CarStatus = "sold"
)

type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelHybrid   FuelType = "hybrid"
	FuelElectric FuelType = "electric"
)

type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

type AdminRole string

const (
	RoleAdmin     AdminRole = "admin"
	RoleModerator AdminRole = "moderator"
)

type AdminStatus string

const (
	StatusActive   AdminStatus = "active"
	StatusDisabled AdminStatus = "disabled"
)

// Car is a single listing. Make+Model+Variant identifies a listing for
// seeding purposes; the database enforces uniqueness on that triple.
type Car struct {
	ID           string            `json:"id"`
	Make         string            `json:"make"`
	Model        string            `json:"model"`
	Variant      string            `json:"variant"`
	Year         int               `json:"year"`
	PriceCents   int64             `json:"priceCents"`
	MileageKM    int               `json:"mileageKm"`
	Fuel         FuelType          `json:"fuel"`
	Transmission Transmission      `json:"transmission"`
	Color        string            `json:"color,omitempty"`
	Description  string            `json:"description,omitempty"`
	Specs        map[string]string `json:"specs,omitempty"`
	PhotoKey     string            `json:"-"`
	PhotoURL     string            `json:"photoUrl,omitempty"`
	Status       CarStatus         `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type AdminUser struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         AdminRole   `json:"role"`
	Status       AdminStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// ForumCategory groups posts; Slug is the stable external identifier.
type ForumCategory struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ForumPost struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"categoryId"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Author     string    `json:"author"`
	Pinned     bool      `json:"pinned"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
