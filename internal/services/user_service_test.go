package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/solfege/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users      map[string]models.User
	createErr  error
	updates    map[string]any
	listCalled bool
}

func newStubUserRepo(users ...models.User) *stubUserRepo {
	repo := &stubUserRepo{users: make(map[string]models.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (stub *stubUserRepo) ListStaff() ([]models.User, error) {
	stub.listCalled = true
	staff := make([]models.User, 0)
	for _, user := range stub.users {
		if !user.IsStudent() {
			staff = append(staff, user)
		}
	}
	return staff, nil
}

func (stub *stubUserRepo) FindByID(userID string) (models.User, error) {
	user, ok := stub.users[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (stub *stubUserRepo) FindByEmail(email string) (models.User, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *stubUserRepo) ExistsByEmail(email string) (bool, error) {
	_, err := stub.FindByEmail(email)
	return err == nil, nil
}

func (stub *stubUserRepo) Create(user *models.User) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	if user.ID == "" {
		user.ID = "new-" + user.Email
	}
	stub.users[user.ID] = *user
	return nil
}

func (stub *stubUserRepo) UpdateByID(userID string, updates map[string]any) error {
	user, ok := stub.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stub.updates = updates
	for column, value := range updates {
		switch column {
		case "role":
			user.Role = value.(string)
		case "is_active":
			user.IsActive = value.(bool)
		case "password_hash":
			hash := value.(string)
			user.PasswordHash = &hash
		case "first_name":
			user.FirstName = value.(string)
		case "last_name":
			user.LastName = value.(string)
		case "email":
			user.Email = value.(string)
		case "instrument":
			user.Instrument = value.(string)
		case "level":
			user.Level = value.(string)
		}
	}
	stub.users[userID] = user
	return nil
}

func (stub *stubUserRepo) ListStudents() ([]models.User, error) {
	students := make([]models.User, 0)
	for _, user := range stub.users {
		if user.IsStudent() {
			students = append(students, user)
		}
	}
	return students, nil
}

func TestCreateUserHashesPasswordAndRejectsDuplicates(t *testing.T) {
	repo := newStubUserRepo()
	service := NewUserService(repo)

	user, err := service.CreateUser(CreateUserInput{
		Email:     "prof@example.com",
		Password:  "Sol3fegeStrong",
		FirstName: "Jean",
		LastName:  "Meunier",
		Role:      models.RoleTeacher,
	})
	if err != nil {
		t.Fatalf("CreateUser() unexpected error: %v", err)
	}
	if !user.IsActive || user.Role != models.RoleTeacher {
		t.Fatalf("unexpected user %+v", user)
	}
	if user.PasswordHash == nil || bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte("Sol3fegeStrong")) != nil {
		t.Fatal("expected stored bcrypt hash of the password")
	}

	_, err = service.CreateUser(CreateUserInput{Email: "prof@example.com", Password: "Sol3fegeStrong", Role: models.RoleAdmin})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate email, got %v", err)
	}
}

func TestCreateUserValidation(t *testing.T) {
	service := NewUserService(newStubUserRepo())

	cases := []CreateUserInput{
		{Email: "x@example.com", Password: "Sol3fegeStrong", Role: models.RoleStudent},
		{Email: "x@example.com", Password: "weak", Role: models.RoleTeacher},
		{Email: "broken", Password: "Sol3fegeStrong", Role: models.RoleTeacher},
		{Email: "x@example.com", Role: models.RoleTeacher},
	}
	for _, input := range cases {
		if _, err := service.CreateUser(input); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", input, err)
		}
	}
}

func TestUpdateUserAppliesPatch(t *testing.T) {
	repo := newStubUserRepo(models.User{ID: "u1", Email: "a@example.com", Role: models.RoleTeacher, IsActive: true})
	service := NewUserService(repo)

	role := models.RoleAdmin
	inactive := false
	password := "N3wPassword"
	user, err := service.UpdateUser("u1", UserPatch{Role: &role, IsActive: &inactive, Password: &password})
	if err != nil {
		t.Fatalf("UpdateUser() unexpected error: %v", err)
	}
	if user.Role != models.RoleAdmin || user.IsActive {
		t.Fatalf("unexpected user after patch %+v", user)
	}
	if user.PasswordHash == nil || bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)) != nil {
		t.Fatal("expected password to be re-hashed")
	}
}

func TestUpdateUserRejectsStudentsAndUnknownIDs(t *testing.T) {
	repo := newStubUserRepo(models.User{ID: "s1", Email: "s@example.com", Role: models.RoleStudent})
	service := NewUserService(repo)

	if _, err := service.UpdateUser("missing", UserPatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
	if _, err := service.UpdateUser("s1", UserPatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a student id, got %v", err)
	}

	repo.users["t1"] = models.User{ID: "t1", Email: "t@example.com", Role: models.RoleTeacher}
	demote := models.RoleStudent
	if _, err := service.UpdateUser("t1", UserPatch{Role: &demote}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation when demoting to STUDENT, got %v", err)
	}
}

func TestEnsureSuperAdminCreatesThenPromotes(t *testing.T) {
	repo := newStubUserRepo(models.User{ID: "t1", Email: "lead@example.com", Role: models.RoleTeacher, IsActive: false})
	service := NewUserService(repo)

	created, err := service.EnsureSuperAdmin("root@example.com", "Root", "User", "Sup3rSecret")
	if err != nil {
		t.Fatalf("EnsureSuperAdmin() create: %v", err)
	}
	if created.Role != models.RoleSuperAdmin || !created.IsActive {
		t.Fatalf("unexpected created admin %+v", created)
	}

	promoted, err := service.EnsureSuperAdmin("lead@example.com", "", "", "Sup3rSecret")
	if err != nil {
		t.Fatalf("EnsureSuperAdmin() promote: %v", err)
	}
	if promoted.ID != "t1" || promoted.Role != models.RoleSuperAdmin || !promoted.IsActive {
		t.Fatalf("unexpected promoted admin %+v", promoted)
	}
}

func TestEnsureSuperAdminRefusesStudentEmail(t *testing.T) {
	repo := newStubUserRepo(models.User{ID: "s1", Email: "kid@example.com", Role: models.RoleStudent})
	service := NewUserService(repo)

	if _, err := service.EnsureSuperAdmin("kid@example.com", "", "", "Sup3rSecret"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestSetPasswordByEmail(t *testing.T) {
	repo := newStubUserRepo(
		models.User{ID: "t1", Email: "prof@example.com", Role: models.RoleTeacher},
		models.User{ID: "s1", Email: "kid@example.com", Role: models.RoleStudent},
	)
	service := NewUserService(repo)

	if err := service.SetPasswordByEmail("prof@example.com", "temporary"); err != nil {
		t.Fatalf("SetPasswordByEmail() unexpected error: %v", err)
	}
	stored := repo.users["t1"]
	if stored.PasswordHash == nil || bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("temporary")) != nil {
		t.Fatal("expected the temporary password to be stored")
	}
	if err := service.SetPasswordByEmail("kid@example.com", "temporary"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a student, got %v", err)
	}
}
