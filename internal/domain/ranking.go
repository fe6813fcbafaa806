package domain

import "time"

type Year = int

// DefaultNormalizationType is assigned to indicators that don't declare
// their own normalization strategy.
const DefaultNormalizationType = "MinMax Normalisation"

type Country struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"`
	Region    string    `db:"region" json:"region"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type Indicator struct {
	ID                int64     `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Description       string    `db:"description" json:"description"`
	NormalizationType string    `db:"normalization_type" json:"normalizationType"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}

type Dimension struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	DisplayOrder int       `db:"display_order" json:"displayOrder"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// DimensionWeight assigns a weight to a dimension for one year.
// At most one row exists per (dimension, year). DimensionName is joined
// in by the store for reporting.
type DimensionWeight struct {
	ID            int64  `db:"id" json:"id"`
	DimensionID   int64  `db:"dimension_id" json:"dimensionId"`
	DimensionName string `db:"dimension_name" json:"dimensionName"`
	Year          Year   `db:"year" json:"year"`
	Weight        int    `db:"weight" json:"weight"`
}

// IndicatorWeight binds an indicator to a DimensionWeight, so the weight
// is only meaningful within that dimension-year context.
type IndicatorWeight struct {
	ID                int64  `db:"id" json:"id"`
	DimensionWeightID int64  `db:"dimension_weight_id" json:"dimensionWeightId"`
	IndicatorID       int64  `db:"indicator_id" json:"indicatorId"`
	IndicatorName     string `db:"indicator_name" json:"indicatorName"`
	Weight            int    `db:"weight" json:"weight"`
}

// Score is the only human-authored fact: one value per
// (country, indicator, year). RawValue keeps the pre-normalization value.
type Score struct {
	ID          int64     `db:"id" json:"id"`
	CountryID   int64     `db:"country_id" json:"countryId"`
	IndicatorID int64     `db:"indicator_id" json:"indicatorId"`
	Year        Year      `db:"year" json:"year"`
	Score       float64   `db:"score" json:"score"`
	RawValue    *float64  `db:"raw_value" json:"rawValue"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// DimensionScore is derived data: destroyed and rebuilt on every
// recompute pass for its year, never patched in place.
type DimensionScore struct {
	ID          int64   `db:"id" json:"id"`
	CountryID   int64   `db:"country_id" json:"countryId"`
	DimensionID int64   `db:"dimension_id" json:"dimensionId"`
	Year        Year    `db:"year" json:"year"`
	Score       float64 `db:"score" json:"score"`
}

// Rank is derived data: one row per (country, year), rebuilt on recompute.
type Rank struct {
	ID         int64   `db:"id" json:"id"`
	CountryID  int64   `db:"country_id" json:"countryId"`
	Year       Year    `db:"year" json:"year"`
	FinalScore float64 `db:"final_score" json:"finalScore"`
	Rank       int     `db:"rank" json:"rank"`
}

type Admin struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type PasswordResetToken struct {
	ID        int64     `db:"id" json:"id"`
	AdminID   int64     `db:"admin_id" json:"adminId"`
	Token     string    `db:"token" json:"token"`
	ExpiresAt time.Time `db:"expires_at" json:"expiresAt"`
	Used      bool      `db:"used" json:"used"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
