package tests

import (
	"io"
	"net/http"
	"strings"

	"mealgate/web-svc/internal/domain"
)

func sessionWithRole(userID string, role domain.Role) *domain.Session {
	return &domain.Session{
		User:    &domain.User{ID: userID, Role: role, Status: domain.UserActive},
		Session: &domain.SessionInfo{UserID: userID},
	}
}

func customerSession(userID string) *domain.Session {
	return sessionWithRole(userID, domain.RoleCustomer)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
