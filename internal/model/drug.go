package model

// Drug is keyed by name. Pricing is not a property of the drug itself: each
// pharmacy sells a drug at its own price, so price lives on the (pharmacy,
// drug) relation and is exposed through the priced queries below.
type Drug struct {
	DrugName         string  `json:"drug_name" db:"drug_name"`
	Description      string  `json:"description" db:"description"`
	CompanyID        string  `json:"company_id" db:"company_id"`
	ManufacturerName *string `json:"manufacturer_name" db:"manufacturer_name"`
}

// PricedDrug is one (pharmacy, drug) row from the sells relation.
type PricedDrug struct {
	DrugName     string  `json:"drug_name" db:"drug_name"`
	PharID       string  `json:"phar_id" db:"phar_id"`
	PharmacyName string  `json:"pharmacy_name" db:"pharmacy_name"`
	Price        float64 `json:"price" db:"price"`
}

type CreateDrugRequest struct {
	DrugName    string `json:"drug_name" binding:"required"`
	Description string `json:"description"`
	CompanyID   string `json:"company_id" binding:"required"`
}

type UpdateDrugRequest struct {
	Description string `json:"description"`
	CompanyID   string `json:"company_id" binding:"required"`
}

type UpdateDrugPriceRequest struct {
	PharID   string  `json:"phar_id" binding:"required"`
	DrugName string  `json:"drug_name" binding:"required"`
	NewPrice float64 `json:"new_price" binding:"required"`
}
