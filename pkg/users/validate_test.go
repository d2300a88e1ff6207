package users

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vango-dev/vanext/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		in        any
		wantPaths []string
	}{
		{name: "valid create", in: CreateUser{Name: "Bob", Email: "bob@x.com"}},
		{name: "missing name", in: CreateUser{Email: "bob@x.com"}, wantPaths: []string{"name"}},
		{name: "bad email", in: CreateUser{Name: "Bob", Email: "nope"}, wantPaths: []string{"email"}},
		{name: "both missing", in: CreateUser{}, wantPaths: []string{"name", "email"}},
		{name: "empty update", in: UpdateUser{}},
		{name: "update name only", in: UpdateUser{Name: strptr("Bobby")}},
		{name: "update empty name", in: UpdateUser{Name: strptr("")}, wantPaths: []string{"name"}},
		{name: "update bad email", in: UpdateUser{Email: strptr("x")}, wantPaths: []string{"email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if len(tt.wantPaths) == 0 {
				require.NoError(t, err)
				return
			}

			var e *apperrors.Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, apperrors.KindValidation, e.Kind)

			var paths []string
			for _, issue := range e.Issues {
				paths = append(paths, issue.Path...)
				assert.NotEmpty(t, issue.Message)
			}
			assert.Equal(t, tt.wantPaths, paths)
		})
	}
}

func TestUpdateUserApply(t *testing.T) {
	u := User{ID: "1", Name: "Bob", Email: "bob@x.com"}

	assert.Equal(t, u, UpdateUser{}.Apply(u))

	got := UpdateUser{Email: strptr("new@x.com")}.Apply(u)
	assert.Equal(t, User{ID: "1", Name: "Bob", Email: "new@x.com"}, got)
}
