package model

// Centra is a collection site that supplies raw material for batches.
type Centra struct {
	CentraID          int64
	CentraName        string
	CentraAddress     string
	NumberOfEmployees int64
}

type CreateCentraParams struct {
	CentraName        string
	CentraAddress     string
	NumberOfEmployees int64
}

// UpdateCentraParams carries a partial update: nil fields are left untouched.
type UpdateCentraParams struct {
	CentraName        *string
	CentraAddress     *string
	NumberOfEmployees *int64
}
