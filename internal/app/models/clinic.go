package models

import "time"

type Clinic struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	TradingName string    `json:"trading_name,omitempty"`
	CNPJ        string    `json:"cnpj,omitempty"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
