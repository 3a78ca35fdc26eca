package models

import "time"

// UserState holds the per-user data that survives restarts: favorited
// property ids and personal star ratings. Both live in durable local
// storage and are rewritten whole on every mutation.
type UserState struct {
	Favorites []string       `json:"favorites"`
	Ratings   map[string]int `json:"ratings"`
}

func EmptyUserState() UserState {
	return UserState{Ratings: make(map[string]int)}
}

// IsFavorite reports membership of id in the favorites set.
func (s UserState) IsFavorite(id string) bool {
	for _, fav := range s.Favorites {
		if fav == id {
			return true
		}
	}
	return false
}

// RatingFor returns the user's rating for id, or 0 when none was ever
// submitted. The zero is a sentinel for "unrated", not a valid rating.
func (s UserState) RatingFor(id string) int {
	return s.Ratings[id]
}

// ContactMessage is a recorded contact-form submission.
type ContactMessage struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
