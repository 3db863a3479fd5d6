package models

import "time"

// Gamer is a player account from the public app, read-only here.
type Gamer struct {
	ID               string    `json:"id"`
	UID              string    `json:"uid"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registrationDate"`
	Status           string    `json:"status"`
}
