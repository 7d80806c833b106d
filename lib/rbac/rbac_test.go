package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"

	"recruit-track-backend/models"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/candidates/{id}/cv [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/candidates/123-321/cv"
		isMatch := r1.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri := "/api/v1/candidates/cv"
		isMatch = r1.MatchString(invalidUri)
		require.Equal(t, false, isMatch)

		path, method, err = parseSwaggerPattern("/api/v1/candidates/{id}/doc/{docID} [get]")
		require.Nil(t, err)
		require.Equal(t, GET, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/candidates/123-321/doc/qwe-ewr123-wr-12"
		isMatch = r2.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri = "/api/v1/candidates/we-ewr123-wr-12/doc"
		isMatch = r2.MatchString(invalidUri)
		require.Equal(t, false, isMatch)
	})

	t.Run(`role allow-list check`, func(t *testing.T) {
		NewHandler()

		handler, found := Instance.GetRuleFunc("POST", "/api/v1/users")
		require.Equal(t, true, found)
		require.Equal(t, true, handler("user-1", models.UserRoleHRManager, "/api/v1/users"))
		require.Equal(t, false, handler("user-1", models.UserRoleRecruiter, "/api/v1/users"))
		require.Equal(t, false, handler("user-1", models.UserRole("unknown"), "/api/v1/users"))
	})

	t.Run(`legacy role alias check`, func(t *testing.T) {
		NewHandler()

		handler, found := Instance.GetRuleFunc("POST", "/api/v1/users")
		require.Equal(t, true, found)
		// "rh" is the pre-rename spelling of HR_MANAGER
		require.Equal(t, true, handler("user-1", models.UserRole("rh"), "/api/v1/users"))
		require.Equal(t, false, handler("user-1", models.UserRole("directeur"), "/api/v1/users"))
	})
}
