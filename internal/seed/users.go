package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/sahatech/clinic-seed/internal/models"
	"go.uber.org/zap"
)

// seedUsers creates each fixture account one at a time and writes its profile.
// An email that is already registered is signed in instead and its profile merged.
func (s *Seeder) seedUsers(ctx context.Context) (map[models.UserRole]string, error) {
	ids := make(map[models.UserRole]string)

	for _, user := range s.data.Users {
		if err := ctx.Err(); err != nil {
			return ids, err
		}
		log := s.log.With(zap.String("email", user.Email), zap.String("role", string(user.Role)))

		uid, err := s.createUser(ctx, user)
		if err == nil {
			ids[user.Role] = uid
			log.Info("Successfully created user", zap.String("uid", uid))
			continue
		}
		if !errors.Is(err, ErrEmailExists) {
			log.Error("Error creating user", zap.Error(err))
			continue
		}

		log.Info("User already exists, signing in to get UID")
		uid, err = s.accounts.SignIn(ctx, user.Email, user.Password)
		if err != nil {
			return ids, fmt.Errorf("sign in existing user %s: %w", user.Email, err)
		}
		ids[user.Role] = uid

		err = s.store.Merge(ctx, models.CollectionUsers, uid, map[string]interface{}{
			"name":  user.Name,
			"email": user.Email,
			"role":  string(user.Role),
		})
		if err != nil {
			return ids, fmt.Errorf("merge profile for %s: %w", user.Email, err)
		}
	}

	return ids, nil
}

// createUser registers the account and writes a fresh profile.
// The uid is returned even when the profile write fails, so the account still counts as resolved.
func (s *Seeder) createUser(ctx context.Context, user models.UserAccount) (string, error) {
	uid, err := s.accounts.CreateAccount(ctx, user.Email, user.Password)
	if err != nil {
		return "", err
	}

	profile := models.UserProfile{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	if err := s.store.Set(ctx, models.CollectionUsers, uid, profile); err != nil {
		s.log.Error("Error writing user profile",
			zap.String("email", user.Email), zap.String("uid", uid), zap.Error(err))
	}
	return uid, nil
}

// linkContacts makes admin, receptionist and doctor contacts of each other.
// Nothing is written unless all three accounts resolved.
func (s *Seeder) linkContacts(ctx context.Context, ids map[models.UserRole]string) (bool, error) {
	roles := models.StaffRoles
	for _, role := range roles {
		if ids[role] == "" {
			s.log.Info("Skipping contacts, not every staff account resolved", zap.String("missing", string(role)))
			return false, nil
		}
	}

	for _, role := range roles {
		contacts := make(map[string]interface{}, len(roles)-1)
		for _, other := range roles {
			if other != role {
				contacts[ids[other]] = true
			}
		}
		err := s.store.Merge(ctx, models.CollectionUsers, ids[role], map[string]interface{}{
			"contacts": contacts,
		})
		if err != nil {
			return false, fmt.Errorf("link contacts for %s: %w", role, err)
		}
	}

	s.log.Info("Contacts seeded")
	return true, nil
}
