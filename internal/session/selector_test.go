package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAccess_GatingMatrix(t *testing.T) {
	cases := []struct {
		view ViewClass
		tag  RouteTag
		want bool
	}{
		{Anonymous, Public, true},
		{Anonymous, UserProtected, false},
		{Anonymous, AdminProtected, false},
		{AuthenticatedUser, Public, true},
		{AuthenticatedUser, UserProtected, true},
		{AuthenticatedUser, AdminProtected, false},
		{Admin, Public, true},
		// Admin subsumes AuthenticatedUser for user-protected routes.
		{Admin, UserProtected, true},
		{Admin, AdminProtected, true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.view.CanAccess(tc.tag),
			"view %s, tag %d", tc.view, tc.tag)
	}
}

func TestClassForRole(t *testing.T) {
	assert.Equal(t, Admin, ClassForRole("admin"))
	assert.Equal(t, AuthenticatedUser, ClassForRole("user"))
	// Anything that is not admin is a regular user.
	assert.Equal(t, AuthenticatedUser, ClassForRole("staff"))
	assert.Equal(t, AuthenticatedUser, ClassForRole(""))
}

func TestSessionView_NilIsAnonymous(t *testing.T) {
	var sess *Session
	assert.Equal(t, Anonymous, sess.View())
	assert.Equal(t, "", sess.Token())
}
