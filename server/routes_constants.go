package server

const (
	RouteAuthLogin   = "/api/auth/login"
	RouteAuthLogout  = "/api/auth/logout"
	RouteAuthSession = "/api/auth/session"

	RouteSessions    = "/api/sessions"
	RouteSessionByID = "/api/sessions/{id}"

	RouteClients    = "/api/clients"
	RouteClientByID = "/api/clients/{id}"

	RouteStatus = "/api/status"
)
