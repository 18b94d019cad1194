package testrail

import (
	"context"
	"strings"

	"github.com/kbukum/testrail/binding"
	"github.com/kbukum/testrail/httpclient"
	"github.com/kbukum/testrail/model"
	"github.com/kbukum/testrail/validation"
)

// UserService reads users.
type UserService struct {
	c *httpclient.Client
}

// Get returns an existing user.
func (s *UserService) Get(ctx context.Context, userID int) (model.User, error) {
	if err := validation.ID("userId", userID); err != nil {
		return model.User{}, err
	}
	return get[model.User](ctx, s.c, pathf("get_user/%d", userID), nil)
}

// GetByEmail returns the user with the given address.
func (s *UserService) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.TrimSpace(email)
	if err := validation.Email(email); err != nil {
		return model.User{}, err
	}
	d := httpclient.Get("get_user_by_email", pairs("email", email), httpclient.KindScalar)
	return httpclient.One(ctx, s.c, d, binding.For[model.User]())
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return list[model.User](ctx, s.c, "get_users", nil, nil)
}

// ConfigurationService lists the configuration groups of a project.
type ConfigurationService struct {
	c *httpclient.Client
}

func (s *ConfigurationService) List(ctx context.Context, projectID int) ([]model.Configuration, error) {
	if err := validation.ID("projectId", projectID); err != nil {
		return nil, err
	}
	return listBare(ctx, s.c, pathf("get_configs/%d", projectID), binding.For[model.Configuration]())
}
