package sqlite

import (
	"context"
	"encoding/json"
	"log/slog"

	"portaljobs/internal/domain/entity"
	"portaljobs/internal/domain/repository"
	"portaljobs/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage keys. The profile blob lives under a role-qualified key
// ("candidateData", "companyData", ...) so switching roles never clobbers
// the other role's cached profile.
const (
	keyToken  = "authToken"
	keyRole   = "userType"
	keyUserID = "userId"

	profileKeySuffix = "Data"
)

// sessionStore implements repository.SessionStore on the session database.
type sessionStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewSessionStore is the constructor for the durable session store.
func NewSessionStore(db *gorm.DB, logger *slog.Logger) repository.SessionStore {
	return &sessionStore{db: db, logger: logger}
}

func profileKey(role entity.Role) string {
	return role.String() + profileKeySuffix
}

// Write persists the full session tuple in a single transaction so readers
// never observe a token without its role, user id, and profile.
func (s *sessionStore) Write(ctx context.Context, session *entity.Session) error {
	if !session.Complete() {
		return errors.Wrap(repository.ErrSessionCorrupt, "refusing to persist a partial session tuple")
	}

	profile, err := json.Marshal(session.User)
	if err != nil {
		return errors.Wrap(err, "failed to encode profile blob")
	}

	records := []model.SessionRecordModel{
		{Key: keyToken, Value: session.Token},
		{Key: keyRole, Value: session.Role.String()},
		{Key: keyUserID, Value: session.UserID},
		{Key: profileKey(session.Role), Value: string(profile)},
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range records {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&records[i]).Error; err != nil {
				return errors.Wrapf(err, "failed to upsert session key %s", records[i].Key)
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to write session tuple")
	}

	return nil
}

// Read restores the session tuple. Partial or unparseable state is cleaned
// up and reported as corrupt; the caller falls back to "not authenticated".
func (s *sessionStore) Read(ctx context.Context) (*entity.Session, error) {
	var records []model.SessionRecordModel
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load session records")
	}

	if len(records) == 0 {
		return nil, repository.ErrSessionNotFound
	}

	values := make(map[string]string, len(records))
	for _, record := range records {
		values[record.Key] = record.Value
	}

	session, err := s.assemble(values)
	if err != nil {
		s.logger.Warn("Clearing unusable session state", "error", err)
		if clearErr := s.Clear(ctx); clearErr != nil {
			return nil, errors.Wrap(clearErr, "failed to clear corrupt session state")
		}

		return nil, err
	}

	return session, nil
}

func (s *sessionStore) assemble(values map[string]string) (*entity.Session, error) {
	token := values[keyToken]
	rawRole := values[keyRole]
	userID := values[keyUserID]
	if token == "" || rawRole == "" || userID == "" {
		return nil, errors.Wrap(repository.ErrSessionCorrupt, "incomplete session tuple")
	}

	role, ok := entity.ParseRole(rawRole)
	if !ok {
		return nil, errors.Wrapf(repository.ErrSessionCorrupt, "unknown role %q", rawRole)
	}

	blob, ok := values[profileKey(role)]
	if !ok || blob == "" {
		return nil, errors.Wrap(repository.ErrSessionCorrupt, "missing profile blob")
	}

	var user entity.User
	if err := json.Unmarshal([]byte(blob), &user); err != nil {
		return nil, errors.Wrap(repository.ErrSessionCorrupt, "unparseable profile blob")
	}

	session := &entity.Session{
		Token:  token,
		Role:   role,
		UserID: userID,
		User:   &user,
	}
	if !session.Complete() {
		return nil, errors.Wrap(repository.ErrSessionCorrupt, "incomplete session tuple")
	}

	return session, nil
}

// Clear removes every session key. Clearing an empty store succeeds.
func (s *sessionStore) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.SessionRecordModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear session records")
	}

	return nil
}
