package services

import (
	"strings"
	"sync"

	"github.com/terraincognita07/emotrack/internal/db"
	"github.com/terraincognita07/emotrack/internal/models"
)

type recordedActivity struct {
	ActorID string
	Action  string
	Details string
}

type stubActivityRecorder struct {
	mu      sync.Mutex
	entries []recordedActivity
}

func (stub *stubActivityRecorder) Record(actorID string, action string, details string) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.entries = append(stub.entries, recordedActivity{ActorID: actorID, Action: action, Details: details})
}

func (stub *stubActivityRecorder) actions() []string {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	actions := make([]string, 0, len(stub.entries))
	for _, entry := range stub.entries {
		actions = append(actions, entry.Action)
	}
	return actions
}

// plainHasher keeps service tests fast; bcrypt behaviour is covered in security.
type plainHasher struct{}

func (plainHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (plainHasher) Verify(plaintext string, digest string) bool {
	return digest == "hashed:"+plaintext
}

type stubUserRepo struct {
	users     map[string]models.User
	createErr error
	listErr   error
}

func newStubUserRepo(users ...models.User) *stubUserRepo {
	repo := &stubUserRepo{users: make(map[string]models.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (stub *stubUserRepo) ExistsByNormalizedEmail(email string) (bool, error) {
	_, err := stub.FindByNormalizedEmail(email)
	return err == nil, nil
}

func (stub *stubUserRepo) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range stub.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return models.User{}, db.ErrNotFound
}

func (stub *stubUserRepo) FindByID(userID string) (models.User, error) {
	user, ok := stub.users[userID]
	if !ok {
		return models.User{}, db.ErrNotFound
	}
	return user, nil
}

func (stub *stubUserRepo) Create(user *models.User) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	if user.ID == "" {
		user.ID = models.NewID()
	}
	stub.users[user.ID] = *user
	return nil
}

func (stub *stubUserRepo) List() ([]models.User, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	users := make([]models.User, 0, len(stub.users))
	for _, user := range stub.users {
		users = append(users, user)
	}
	return users, nil
}

func (stub *stubUserRepo) UpdateByID(userID string, updates map[string]any) error {
	user, ok := stub.users[userID]
	if !ok {
		return db.ErrNotFound
	}
	if email, ok := updates["email"].(string); ok {
		for id, other := range stub.users {
			if id != userID && other.Email == email {
				return db.ErrDuplicateEmail
			}
		}
		user.Email = email
	}
	if name, ok := updates["display_name"].(string); ok {
		user.DisplayName = name
	}
	if hash, ok := updates["password_hash"].(string); ok {
		user.PasswordHash = hash
	}
	if age, ok := updates["age"].(int); ok {
		user.Age = age
	}
	stub.users[userID] = user
	return nil
}

func (stub *stubUserRepo) UpdatePassword(userID string, passwordHash string) error {
	return stub.UpdateByID(userID, map[string]any{"password_hash": passwordHash})
}

func (stub *stubUserRepo) DeleteByID(userID string) error {
	if _, ok := stub.users[userID]; !ok {
		return db.ErrNotFound
	}
	delete(stub.users, userID)
	return nil
}

type stubOwnedRepo[T any] struct {
	created []T
	owner   func(T) string
	err     error
}

func (stub *stubOwnedRepo[T]) create(record T) error {
	if stub.err != nil {
		return stub.err
	}
	stub.created = append(stub.created, record)
	return nil
}

func (stub *stubOwnedRepo[T]) list(userID string) ([]T, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	out := make([]T, 0)
	for _, record := range stub.created {
		if stub.owner(record) == userID {
			out = append(out, record)
		}
	}
	return out, nil
}

type stubDiaryRepo struct {
	stubOwnedRepo[models.DiaryEntry]
}

func newStubDiaryRepo() *stubDiaryRepo {
	return &stubDiaryRepo{stubOwnedRepo[models.DiaryEntry]{owner: func(entry models.DiaryEntry) string { return entry.UserID }}}
}

func (stub *stubDiaryRepo) Create(entry *models.DiaryEntry) error {
	entry.ID = models.NewID()
	return stub.create(*entry)
}

func (stub *stubDiaryRepo) ListByUser(userID string) ([]models.DiaryEntry, error) {
	return stub.list(userID)
}

type stubEmotionRepo struct {
	stubOwnedRepo[models.EmotionEntry]
}

func newStubEmotionRepo() *stubEmotionRepo {
	return &stubEmotionRepo{stubOwnedRepo[models.EmotionEntry]{owner: func(entry models.EmotionEntry) string { return entry.UserID }}}
}

func (stub *stubEmotionRepo) Create(entry *models.EmotionEntry) error {
	entry.ID = models.NewID()
	return stub.create(*entry)
}

func (stub *stubEmotionRepo) ListByUser(userID string) ([]models.EmotionEntry, error) {
	return stub.list(userID)
}

type stubAssessmentRepo struct {
	stubOwnedRepo[models.Assessment]
}

func newStubAssessmentRepo() *stubAssessmentRepo {
	return &stubAssessmentRepo{stubOwnedRepo[models.Assessment]{owner: func(entry models.Assessment) string { return entry.UserID }}}
}

func (stub *stubAssessmentRepo) Create(assessment *models.Assessment) error {
	assessment.ID = models.NewID()
	return stub.create(*assessment)
}

func (stub *stubAssessmentRepo) ListByUser(userID string) ([]models.Assessment, error) {
	return stub.list(userID)
}

type stubSupportCenterRepo struct {
	created []models.SupportCenter
	err     error
}

func (stub *stubSupportCenterRepo) Create(center *models.SupportCenter) error {
	if stub.err != nil {
		return stub.err
	}
	center.ID = models.NewID()
	stub.created = append(stub.created, *center)
	return nil
}

func testUser(email string) models.User {
	return models.User{
		ID:           models.NewID(),
		DisplayName:  "Test",
		Email:        email,
		Age:          25,
		PasswordHash: "hashed:123456",
	}
}
