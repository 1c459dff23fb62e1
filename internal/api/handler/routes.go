package handler

import (
	"net/http"

	"github.com/vfg2006/transport-admin-api/internal/api/handler/router"
	"github.com/vfg2006/transport-admin-api/internal/config"
	"github.com/vfg2006/transport-admin-api/internal/usecases/authenticating"
	"github.com/vfg2006/transport-admin-api/internal/usecases/configuring"
	"github.com/vfg2006/transport-admin-api/internal/usecases/fleet"
	"github.com/vfg2006/transport-admin-api/internal/usecases/insighting"
	"github.com/vfg2006/transport-admin-api/internal/usecases/ranking"
	"github.com/vfg2006/transport-admin-api/internal/usecases/reporting"
	"github.com/vfg2006/transport-admin-api/internal/usecases/shipping"
	"github.com/vfg2006/transport-admin-api/pkg/metrics"
	"github.com/vfg2006/transport-admin-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, limit config.LoginLimit) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/login",
			Method:      http.MethodPost,
			Handler:     Login(service),
			Middlewares: middlewares{middleware.RateLimit(limit)},
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/logout",
			Method:      http.MethodPost,
			Handler:     Logout(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/role",
			Method:      http.MethodPut,
			Handler:     UpdateUserRole(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/dashboard/users",
			Method:      http.MethodGet,
			Handler:     GetUserSummary(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
	}
}

func History(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/history",
			Method:      http.MethodGet,
			Handler:     GetHistory(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/history/stats",
			Method:      http.MethodGet,
			Handler:     GetHistoryStats(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/history/charts",
			Method:      http.MethodGet,
			Handler:     GetHistoryCharts(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/snapshots",
			Method:      http.MethodGet,
			Handler:     GetDailySnapshots(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
	}
}

func Fleet(service fleet.FleetService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/buses",
			Method:      http.MethodGet,
			Handler:     ListBuses(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/buses",
			Method:      http.MethodPost,
			Handler:     CreateBus(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/buses/:id",
			Method:      http.MethodGet,
			Handler:     GetBus(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/buses/:id",
			Method:      http.MethodPut,
			Handler:     UpdateBus(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/drivers",
			Method:      http.MethodGet,
			Handler:     ListDrivers(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/drivers",
			Method:      http.MethodPost,
			Handler:     CreateDriver(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/drivers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateDriver(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
	}
}

func Parcels(service shipping.ShippingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/parcels",
			Method:      http.MethodGet,
			Handler:     ListParcels(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/parcels",
			Method:      http.MethodPost,
			Handler:     CreateParcel(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/parcels/summary",
			Method:      http.MethodGet,
			Handler:     GetParcelSummary(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/parcels/:id/status",
			Method:      http.MethodPatch,
			Handler:     UpdateParcelStatus(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
	}
}

func Settings(service configuring.SettingsService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/settings/app-version",
			Method:      http.MethodGet,
			Handler:     GetAppVersion(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/app-version",
			Method:      http.MethodPut,
			Handler:     UpdateAppVersion(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/departure-places",
			Method:      http.MethodGet,
			Handler:     ListDeparturePlaces(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/general",
			Method:      http.MethodGet,
			Handler:     GetGeneralReport(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/reports/bus/:number",
			Method:      http.MethodGet,
			Handler:     GetBusReport(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/reports/monthly/:month",
			Method:      http.MethodGet,
			Handler:     GetMonthlyReport(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
	}
}

func BusRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ranking/buses",
			Method:      http.MethodGet,
			Handler:     GetBusRanking(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
	}
}

func Cron(jobs CronJobs) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(jobs),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(jobs),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
	}
}

// Live recebe o handler websocket pronto; a autenticação já aceita ?token= neste caminho
func Live(live http.Handler) []router.Route {
	return []router.Route{
		{
			Path:        middleware.LivePath,
			Method:      http.MethodGet,
			Handler:     live,
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
	}
}
