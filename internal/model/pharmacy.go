package model

type Pharmacy struct {
	PharID  string `json:"phar_id" db:"phar_id"`
	Name    string `json:"name" db:"name"`
	Address string `json:"address" db:"address"`
	Fax     string `json:"fax" db:"fax"`
}

type CreatePharmacyRequest struct {
	PharID  string `json:"phar_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Fax     string `json:"fax"`
}

type UpdatePharmacyRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Fax     string `json:"fax"`
}
