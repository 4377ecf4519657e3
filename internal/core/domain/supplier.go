package domain

import "time"

type Supplier struct {
	ID        ID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

func NewSupplier(name, email, phone string) *Supplier {
	return &Supplier{
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now(),
	}
}
