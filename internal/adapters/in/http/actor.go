package http

import (
	"taxidispatch/internal/core/application/auth"
	"taxidispatch/internal/core/domain/model/account"
	"taxidispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the auth reverse proxy in front of this service.
// The proxy authenticates the session and forwards the resolved account ID
// and role; the service trusts them as-is.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// actorFromRequest builds the acting identity from the proxy headers.
func actorFromRequest(ctx echo.Context) (auth.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorID))
	if err != nil {
		return auth.Actor{}, err
	}

	role, err := account.RoleFromString(ctx.Request().Header.Get(HeaderActorRole))
	if err != nil {
		return auth.Actor{}, err
	}

	return auth.NewActor(id, role)
}
