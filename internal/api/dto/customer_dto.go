package dto

import (
	"time"

	"github.com/spec-kit/scaffold-rental-service/internal/domain"
)

// DateLayout is the wire format for deal dates.
const DateLayout = "2006-01-02"

// AddressPayload carries address fields on create and address-update calls.
type AddressPayload struct {
	HouseNo string `json:"houseNo"`
	Street  string `json:"street"`
	City    string `json:"city"`
}

// CreateCustomerRequest payload.
type CreateCustomerRequest struct {
	NIC           string         `json:"nic"`
	Name          string         `json:"name"`
	Address       AddressPayload `json:"address"`
	FirstDateDeal string         `json:"firstDateDeal,omitempty"`
	LastDateDeal  string         `json:"lastDateDeal,omitempty"`
	Email         string         `json:"email"`
	PhoneNumber   string         `json:"phoneNumber"`
}

// ValueUpdateRequest carries a single-field string update. Value is a
// pointer so an absent key is distinguishable from an explicit empty
// string.
type ValueUpdateRequest struct {
	Value *string `json:"value"`
}

// DateUpdateRequest carries a yyyy-MM-dd date update.
type DateUpdateRequest struct {
	Date string `json:"date"`
}

// AddressResponse payload.
type AddressResponse struct {
	ID      int64  `json:"id"`
	HouseNo string `json:"houseNo"`
	Street  string `json:"street"`
	City    string `json:"city"`
}

// CustomerResponse payload.
type CustomerResponse struct {
	ID            int64           `json:"id"`
	NIC           string          `json:"nic"`
	Name          string          `json:"name"`
	Address       AddressResponse `json:"address"`
	FirstDateDeal *string         `json:"firstDateDeal"`
	LastDateDeal  *string         `json:"lastDateDeal"`
	Email         string          `json:"email"`
	PhoneNumber   string          `json:"phoneNumber"`
	IsDeleted     bool            `json:"isDeleted"`
}

// CustomerFromDomain maps a domain customer onto the wire shape.
func CustomerFromDomain(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            customer.ID,
		NIC:           customer.NIC,
		Name:          customer.Name,
		Address:       AddressFromDomain(customer.Address),
		FirstDateDeal: formatDate(customer.FirstDateDeal),
		LastDateDeal:  formatDate(customer.LastDateDeal),
		Email:         customer.Email,
		PhoneNumber:   customer.PhoneNumber,
		IsDeleted:     customer.IsDeleted,
	}
}

// AddressFromDomain maps a domain address onto the wire shape.
func AddressFromDomain(address domain.Address) AddressResponse {
	return AddressResponse{
		ID:      address.ID,
		HouseNo: address.HouseNo,
		Street:  address.Street,
		City:    address.City,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(DateLayout)
	return &formatted
}
