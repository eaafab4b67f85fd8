package handler

import (
	"net/http"

	"github.com/digisolai/digisol.ai-sub002/internal/api/handler/router"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/authenticating"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/campaigning"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/chatting"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/contacting"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/theming"
	"github.com/digisolai/digisol.ai-sub002/pkg/middleware"
)

type middlewareFunc = func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []middlewareFunc{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []middlewareFunc{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []middlewareFunc{middleware.AdminOnly()},
		},
	}
}

func Campaigns(service campaigning.CampaignService) []router.Route {
	routes := []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []middlewareFunc{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: []middlewareFunc{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: []middlewareFunc{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCampaign(service),
			Middlewares: []middlewareFunc{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/campaigns/:id/duplicate",
			Method:      http.MethodPost,
			Handler:     DuplicateCampaign(service),
			Middlewares: []middlewareFunc{middleware.AllRoles()},
		},
	}

	for _, action := range []campaigning.Action{
		campaigning.ActionActivate,
		campaigning.ActionPause,
		campaigning.ActionResume,
		campaigning.ActionArchive,
	} {
		routes = append(routes, router.Route{
			Path:        "/v1/campaigns/:id/" + string(action),
			Method:      http.MethodPost,
			Handler:     CampaignAction(service, action),
			Middlewares: []middlewareFunc{middleware.AllRoles()},
		})
	}

	return routes
}

func Contacts(service contacting.ContactService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/contacts",
			Method:      http.MethodGet,
			Handler:     ListContacts(service),
			Middlewares: []middlewareFunc{middleware.AllRoles()},
		},
		{
			Path:        "/v1/contacts/duplicates",
			Method:      http.MethodGet,
			Handler:     FindDuplicateContacts(service),
			Middlewares: []middlewareFunc{middleware.AllRoles()},
		},
		{
			Path:        "/v1/contacts/merge/preview",
			Method:      http.MethodPost,
			Handler:     PreviewMerge(service),
			Middlewares: []middlewareFunc{middleware.AllRoles()},
		},
		{
			Path:        "/v1/contacts/merge",
			Method:      http.MethodPost,
			Handler:     ConfirmMerge(service),
			Middlewares: []middlewareFunc{middleware.AdminOrSupervisor()},
		},
	}
}

func Theme(store theming.ThemeStore, document StylesheetRenderer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/theme",
			Method:      http.MethodGet,
			Handler:     GetTheme(store),
			Middlewares: []middlewareFunc{middleware.AllRoles()},
		},
		{
			Path:        "/v1/theme",
			Method:      http.MethodPatch,
			Handler:     UpdateTheme(store),
			Middlewares: []middlewareFunc{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/theme",
			Method:      http.MethodPut,
			Handler:     ReplaceTheme(store),
			Middlewares: []middlewareFunc{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/theme/reset",
			Method:      http.MethodPost,
			Handler:     ResetTheme(store),
			Middlewares: []middlewareFunc{middleware.AdminOrSupervisor()},
		},
		{
			Path:    "/v1/theme/css",
			Method:  http.MethodGet,
			Handler: ThemeCSS(document),
		},
		{
			Path:        "/v1/theme/events",
			Method:      http.MethodGet,
			Handler:     ThemeEvents(store),
			Middlewares: []middlewareFunc{middleware.AllRoles()},
		},
	}
}

func Chat(service chatting.ChatService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/personas",
			Method:      http.MethodGet,
			Handler:     ListPersonas(service),
			Middlewares: []middlewareFunc{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/:persona",
			Method:      http.MethodPost,
			Handler:     SendChatMessage(service),
			Middlewares: []middlewareFunc{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/:persona/:conversation",
			Method:      http.MethodGet,
			Handler:     GetChatHistory(service),
			Middlewares: []middlewareFunc{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []middlewareFunc{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []middlewareFunc{middleware.AdminOrSupervisor()},
		},
	}
}
