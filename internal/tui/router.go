package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/dialastocktaker/stocktaker-tui/internal/mockdata"
	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

// ErrUnknownRole is returned for any role string outside the eight known roles
var ErrUnknownRole = errors.New("invalid role")

// NewDashboard builds the dashboard for role. Any other string, including
// the empty one and differently cased role names, yields ErrUnknownRole.
func NewDashboard(role string, data *mockdata.Catalog, clock func() time.Time) (Dashboard, error) {
	r, ok := model.ParseRole(role)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	if data == nil {
		return nil, fmt.Errorf("dashboard %s: no mock data loaded", role)
	}
	if clock == nil {
		clock = time.Now
	}

	switch r {
	case model.RoleAdmin:
		return newAdminDashboard(data.Admin, clock), nil
	case model.RoleManager:
		return newManagerDashboard(data.Manager), nil
	case model.RoleCoordinator:
		return newCoordinatorDashboard(data.Coordinator, clock), nil
	case model.RoleStocktaker:
		return newStocktakerDashboard(data.Stocktaker), nil
	case model.RoleScanner:
		return newScannerDashboard(data.Scanner), nil
	case model.RoleGroupLeader:
		return newGroupLeaderDashboard(data.GroupLeader), nil
	case model.RoleReceptionist:
		return newReceptionistDashboard(data.Receptionist, clock), nil
	case model.RoleClient:
		return newClientDashboard(data.Client), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}

// invalidRoleView is the fallback screen for a role the router rejects
func invalidRoleView(err error, width, height int) string {
	body := ErrorStyle.Render("Invalid role") + "\n\n" +
		DimStyle.Render(err.Error()) + "\n\n" +
		DimStyle.Render("Press esc or L to return to login")
	box := CardStyle.Render(body)
	if width <= 0 || height <= 0 {
		return box
	}
	return placeCenter(width, height, box)
}
