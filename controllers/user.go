package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recnet/recnet-be/db"
	"github.com/recnet/recnet-be/model"
	"github.com/recnet/recnet-be/util"
)

type UserController struct {
	db          db.UserDatabase
	hasher      Hasher
	emailDomain string
}

func NewUserController(database db.UserDatabase, hasher Hasher, emailDomain string) *UserController {
	return &UserController{
		db:          database,
		hasher:      hasher,
		emailDomain: emailDomain,
	}
}

type RegisterReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register gates on the institutional email domain (exact, case-sensitive
// suffix) and on email/username uniqueness. Uniqueness is query-before-write;
// the store has no unique constraint, so a narrow duplicate window remains.
func (uc *UserController) Register(ctx context.Context, req *RegisterReq) (userId string, err error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return "", model.NewInvalidInput("username, email, and password are required")
	}
	if !strings.HasSuffix(req.Email, uc.emailDomain) {
		return "", model.NewInvalidInput("only " + uc.emailDomain + " email addresses are allowed")
	}

	existing, err := uc.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return "", model.NewTransient(err)
	}
	if existing != nil {
		return "", model.NewConflict("email already registered")
	}
	existing, err = uc.db.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return "", model.NewTransient(err)
	}
	if existing != nil {
		return "", model.NewConflict("username already taken")
	}

	digest, err := uc.hasher.Hash(req.Password)
	if err != nil {
		return "", model.NewTransient(err)
	}

	now := time.Now().UTC()
	user := &model.User{
		Id:                uuid.NewString(),
		Username:          req.Username,
		Email:             req.Email,
		PasswordHash:      digest,
		ProfilePicture:    util.Avatar(req.Username),
		JoinedCommunities: []string{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.db.CreateUser(ctx, user); err != nil {
		return "", model.NewTransient(err)
	}
	return user.Id, nil
}

// Authenticate returns the same unauthorized error for a missing account and
// a wrong password so callers cannot tell which failed.
func (uc *UserController) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := uc.db.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, model.NewTransient(err)
	}
	if user == nil || !uc.hasher.Compare(user.PasswordHash, password) {
		return nil, model.NewUnauthorized("invalid email or password")
	}
	return user.Sanitized(), nil
}

func (uc *UserController) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := uc.db.GetUserById(ctx, id)
	if err != nil {
		return nil, model.NewTransient(err)
	}
	if user == nil {
		return nil, model.NewNotFound("user")
	}
	return user.Sanitized(), nil
}
