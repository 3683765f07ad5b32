package validate

// Request schemas for the API. Rules live in the validate tags; handlers
// never hand-check fields covered here.

// CreateCarRequest creates a listing.
type CreateCarRequest struct {
	Make         string            `json:"make" validate:"required,min=2,max=60"`
	Model        string            `json:"model" validate:"required,min=1,max=60"`
	Variant      string            `json:"variant" validate:"max=60"`
	Year         int               `json:"year" validate:"required,gte=1950,lte=2030"`
	PriceCents   int64             `json:"priceCents" validate:"required,gt=0"`
	MileageKM    int               `json:"mileageKm" validate:"gte=0"`
	Fuel         string            `json:"fuel" validate:"required,oneof=petrol diesel hybrid electric"`
	Transmission string            `json:"transmission" validate:"required,oneof=manual automatic"`
	Color        string            `json:"color" validate:"max=40"`
	Description  string            `json:"description" validate:"max=5000"`
	Specs        map[string]string `json:"specs" validate:"omitempty,max=40"`
}

// CreateForumPostRequest creates a post in a category.
type CreateForumPostRequest struct {
	CategoryID string `json:"categoryId" validate:"required"`
	Title      string `json:"title" validate:"required,min=3,max=200"`
	Body       string `json:"body" validate:"required,min=1,max=20000"`
	Author     string `json:"author" validate:"required,min=2,max=60"`
}

// LoginRequest authenticates an admin.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
