package domain

// Address is a postal address owned by exactly one customer or employee.
// It is created and mutated only through its owner and is never deleted,
// even when the owner goes away.
type Address struct {
	ID      int64  `json:"id"`
	HouseNo string `json:"houseNo"`
	Street  string `json:"street"`
	City    string `json:"city"`
}
