package domain

import "time"

// Customer models a rental customer. Deletion is logical only: IsDeleted
// flips to true and the row stays, so lookups and listings still return it.
type Customer struct {
	ID            int64      `json:"id"`
	NIC           string     `json:"nic"`
	Name          string     `json:"name"`
	Address       Address    `json:"address"`
	FirstDateDeal *time.Time `json:"firstDateDeal,omitempty"`
	LastDateDeal  *time.Time `json:"lastDateDeal,omitempty"`
	Email         string     `json:"email"`
	PhoneNumber   string     `json:"phoneNumber"`
	IsDeleted     bool       `json:"isDeleted"`
}
