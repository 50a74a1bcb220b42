package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/dailydo/dailydo/internal/testutil"
)

func newTestRepository(t *testing.T, ctx context.Context) *Repository {
	t.Helper()

	dbURL := testutil.RequireEnv(t, "DATABASE_URL")
	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect to database: %v", err)
	}

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		repo.Close()
		t.Fatalf("acquire db lock: %v", err)
	}

	if err := testutil.ResetSchema(ctx, repo.Pool()); err != nil {
		_ = unlock()
		repo.Close()
		t.Fatalf("reset schema: %v", err)
	}

	t.Cleanup(func() {
		if err := unlock(); err != nil {
			t.Errorf("release db lock: %v", err)
		}
		repo.Close()
	})

	return repo
}

func TestRepository_CreateAndGetUser(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	user := testutil.NewTestUser(t, "alice")
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	byID, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get user by ID: %v", err)
	}
	if byID.Username != user.Username || byID.Email != user.Email {
		t.Errorf("unexpected user: %+v", byID)
	}

	byName, err := repo.GetUserByUsername(ctx, user.Username)
	if err != nil {
		t.Fatalf("get user by username: %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("expected ID %s, got %s", user.ID, byName.ID)
	}
	if byName.PasswordHash != user.PasswordHash {
		t.Error("expected password hash to round-trip")
	}
}

func TestRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	first := testutil.NewTestUser(t, "alice")
	if err := repo.CreateUser(ctx, first); err != nil {
		t.Fatalf("create user: %v", err)
	}

	// Same username, different email: still a conflict
	dup := testutil.NewTestUser(t, "alice")
	dup.ID = testutil.UniqueID("user")
	if err := repo.CreateUser(ctx, dup); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
}

func TestRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	first := testutil.NewTestUser(t, "alice")
	if err := repo.CreateUser(ctx, first); err != nil {
		t.Fatalf("create user: %v", err)
	}

	dup := testutil.NewTestUser(t, "bob")
	dup.Email = first.Email
	if err := repo.CreateUser(ctx, dup); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestRepository_ExistenceChecks(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	user := testutil.NewTestUser(t, "alice")
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	if taken, err := repo.UsernameExists(ctx, user.Username); err != nil || !taken {
		t.Errorf("expected username to exist, got taken=%v err=%v", taken, err)
	}
	if taken, err := repo.UsernameExists(ctx, "nobody"); err != nil || taken {
		t.Errorf("expected username to be free, got taken=%v err=%v", taken, err)
	}
	if taken, err := repo.EmailExists(ctx, user.Email); err != nil || !taken {
		t.Errorf("expected email to exist, got taken=%v err=%v", taken, err)
	}
}

func TestRepository_DeleteUser_CascadesTodos(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	user := testutil.NewTestUser(t, "alice")
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	todo := testutil.NewTestTodo(t, user.ID, "Buy milk")
	if err := repo.CreateTodo(ctx, todo); err != nil {
		t.Fatalf("create todo: %v", err)
	}

	if err := repo.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if _, err := repo.GetUserByID(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	// The user's todos must go with the account
	if _, err := repo.GetTodo(ctx, user.ID, todo.ID); !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound after cascade, got %v", err)
	}
}
