package services

import (
	"encoding/json"
	"fmt"
	"log"

	"dharti/models"
	"dharti/storage"
)

// Storage keys for the two persisted user-state structures.
const (
	keyFavorites = "dharti_favorites"
	keyRatings   = "dharti_ratings"
)

// UserStateService owns the favorites set and the personal ratings map.
// All mutation goes through it; every mutation rewrites the affected
// structure in storage before returning.
type UserStateService struct {
	store *storage.SQLiteStore
	state models.UserState
}

func NewUserStateService(store *storage.SQLiteStore) *UserStateService {
	return &UserStateService{store: store, state: models.EmptyUserState()}
}

// Load reads both persisted structures. It fails open: a missing key or
// an unparseable blob degrades to empty state so a first run or a
// corrupted database never blocks startup.
func (s *UserStateService) Load() models.UserState {
	s.state = models.EmptyUserState()

	if raw, ok, err := s.store.GetValue(keyFavorites); err != nil {
		log.Printf("user state: reading favorites: %v", err)
	} else if ok {
		var favs []string
		if err := json.Unmarshal([]byte(raw), &favs); err != nil {
			log.Printf("user state: discarding malformed favorites: %v", err)
		} else {
			s.state.Favorites = favs
		}
	}

	if raw, ok, err := s.store.GetValue(keyRatings); err != nil {
		log.Printf("user state: reading ratings: %v", err)
	} else if ok {
		ratings := make(map[string]int)
		if err := json.Unmarshal([]byte(raw), &ratings); err != nil {
			log.Printf("user state: discarding malformed ratings: %v", err)
		} else {
			s.state.Ratings = ratings
		}
	}

	return s.state
}

func (s *UserStateService) State() models.UserState {
	return s.state
}

// ToggleFavorite adds id to the favorites set, or removes it when
// already present. Two toggles with the same id are a no-op. Returns
// whether the property is favorited after the call.
func (s *UserStateService) ToggleFavorite(id string) (bool, error) {
	idx := -1
	for i, fav := range s.state.Favorites {
		if fav == id {
			idx = i
			break
		}
	}

	if idx >= 0 {
		s.state.Favorites = append(s.state.Favorites[:idx], s.state.Favorites[idx+1:]...)
	} else {
		s.state.Favorites = append(s.state.Favorites, id)
	}

	if err := s.persistFavorites(); err != nil {
		return idx < 0, fmt.Errorf("persist favorites: %w", err)
	}
	return idx < 0, nil
}

// SetRating records a 1-5 star rating for id, overwriting any previous
// value. Out-of-range ratings are rejected rather than clamped.
func (s *UserStateService) SetRating(id string, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating %d out of range [1,5]", rating)
	}
	s.state.Ratings[id] = rating

	if err := s.persistRatings(); err != nil {
		return fmt.Errorf("persist ratings: %w", err)
	}
	return nil
}

func (s *UserStateService) IsFavorite(id string) bool {
	return s.state.IsFavorite(id)
}

func (s *UserStateService) RatingFor(id string) int {
	return s.state.RatingFor(id)
}

func (s *UserStateService) FavoriteCount() int {
	return len(s.state.Favorites)
}

func (s *UserStateService) persistFavorites() error {
	favs := s.state.Favorites
	if favs == nil {
		favs = []string{}
	}
	blob, err := json.Marshal(favs)
	if err != nil {
		return err
	}
	return s.store.SetValue(keyFavorites, string(blob))
}

func (s *UserStateService) persistRatings() error {
	blob, err := json.Marshal(s.state.Ratings)
	if err != nil {
		return err
	}
	return s.store.SetValue(keyRatings, string(blob))
}
