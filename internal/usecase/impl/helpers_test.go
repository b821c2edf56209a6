package impl

import (
	"io"
	"log/slog"

	"localguide/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func userSession(id string) *entity.Session {
	return &entity.Session{UserID: id, Email: id + "@example.com", Name: "User " + id, Role: entity.RoleUser}
}

func adminSession(id string) *entity.Session {
	return &entity.Session{UserID: id, Email: id + "@example.com", Name: "Admin " + id, Role: entity.RoleAdmin}
}

func strRef(s string) *string {
	return &s
}

func floatRef(f float64) *float64 {
	return &f
}
