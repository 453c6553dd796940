package handler

// Request and response types owned by the transport layer. These are
// intentionally separate from ports/domain types so the JSON contract is not
// coupled to internal service changes.

type registerRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name"  validate:"required"`
	Email       string `json:"email"      validate:"required,email"`
	Password    string `json:"password"   validate:"required"`
	UserType    string `json:"user_type"  validate:"required,oneof=buyer seller agent"`
	PhoneNumber string `json:"phone_number"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// registeredUser is the summary returned on registration.
type registeredUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

type registerResponse struct {
	Token string         `json:"token"`
	User  registeredUser `json:"user"`
}

// loginUser is the full profile returned on login.
type loginUser struct {
	ID                 string `json:"id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	UserType           string `json:"user_type"`
	Status             string `json:"status"`
	VerificationStatus string `json:"verification_status"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

// meResponse always renders with status 200: both fields are null whenever
// the caller cannot be identified.
type meResponse struct {
	User    *meUser    `json:"user"`
	Profile *meProfile `json:"profile"`
}

type meUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

type meProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type createPropertyRequest struct {
	Title            string   `json:"title"         validate:"required"`
	Description      string   `json:"description"   validate:"required"`
	PropertyType     string   `json:"property_type" validate:"required"`
	AreaSqft         float64  `json:"area_sqft"     validate:"required,gt=0"`
	Address          string   `json:"address"       validate:"required"`
	City             string   `json:"city"          validate:"required"`
	State            string   `json:"state"         validate:"required"`
	ZipCode          string   `json:"zip_code"      validate:"required"`
	ListingType      string   `json:"listing_type"  validate:"required,oneof=SALE RENT"`
	Price            *float64 `json:"price"`
	MonthlyRent      *float64 `json:"monthly_rent"`
	SecurityDeposit  *float64 `json:"security_deposit"`
	Bedrooms         int      `json:"bedrooms"`
	Bathrooms        int      `json:"bathrooms"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Images           []string `json:"images"`
	Amenities        []string `json:"amenities"`
	AvailableFrom    string   `json:"available_from"`
	FurnishingStatus string   `json:"furnishing_status"`
	Balcony          *int     `json:"balcony"`
	Possession       string   `json:"possession"`
}

type createPropertyResponse struct {
	Message    string `json:"message"`
	PropertyID string `json:"property_id"`
}
