package memory

import (
	"context"
	"strings"

	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
}

// NewUserRepository creates a user repository over store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	return r.store.write(func(t *tables) error {
		for _, existing := range t.users {
			if strings.EqualFold(existing.value.Email, user.Email) ||
				strings.EqualFold(existing.value.Username, user.Username) {
				return repository.ErrDuplicateUser
			}
		}

		ensureID(&user.ID)
		if user.CreatedAt.IsZero() {
			user.CreatedAt = now()
		}
		if user.Achievements == nil {
			user.Achievements = []string{}
		}
		t.users[user.ID] = row[*entity.User]{seq: t.nextSeq(), value: user.Clone()}

		return nil
	})
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	var found *entity.User
	err := r.store.read(func(t *tables) error {
		u, ok := t.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		found = u.value.Clone()

		return nil
	})

	return found, err
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	var found *entity.User
	err := r.store.read(func(t *tables) error {
		for _, u := range t.users {
			if strings.EqualFold(u.value.Email, email) {
				found = u.value.Clone()

				return nil
			}
		}

		return repository.ErrUserNotFound
	})

	return found, err
}

func (r *userRepository) update(id uuid.UUID, mutate func(u *entity.User)) (*entity.User, error) {
	var updated *entity.User
	err := r.store.write(func(t *tables) error {
		u, ok := t.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		mutate(u.value)
		updated = u.value.Clone()

		return nil
	})

	return updated, err
}

func (r *userRepository) SetPoints(_ context.Context, id uuid.UUID, points int) (*entity.User, error) {
	return r.update(id, func(u *entity.User) { u.HeroPoints = points })
}

func (r *userRepository) AddPoints(_ context.Context, id uuid.UUID, delta int) (*entity.User, error) {
	return r.update(id, func(u *entity.User) { u.HeroPoints += delta })
}

func (r *userRepository) SetLevel(_ context.Context, id uuid.UUID, level int) (*entity.User, error) {
	return r.update(id, func(u *entity.User) { u.HeroLevel = level })
}

func (r *userRepository) AddAchievement(_ context.Context, id uuid.UUID, achievement string) (*entity.User, error) {
	return r.update(id, func(u *entity.User) { u.Achievements = append(u.Achievements, achievement) })
}

func (r *userRepository) Count(_ context.Context, country string) (int64, error) {
	var n int64
	err := r.store.read(func(t *tables) error {
		for _, u := range t.users {
			if country == "" || strings.EqualFold(u.value.Country, country) {
				n++
			}
		}

		return nil
	})

	return n, err
}

func (r *userRepository) CountCountries(_ context.Context) (int64, error) {
	var n int64
	err := r.store.read(func(t *tables) error {
		seen := make(map[string]struct{})
		for _, u := range t.users {
			if u.value.Country == "" {
				continue
			}
			seen[strings.ToLower(u.value.Country)] = struct{}{}
		}
		n = int64(len(seen))

		return nil
	})

	return n, err
}

func (r *userRepository) AverageStreak(_ context.Context) (float64, error) {
	var avg float64
	err := r.store.read(func(t *tables) error {
		if len(t.users) == 0 {
			return nil
		}
		total := 0
		for _, u := range t.users {
			total += u.value.ClimateContribution.Streak
		}
		avg = float64(total) / float64(len(t.users))

		return nil
	})

	return avg, err
}
