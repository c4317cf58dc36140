package server

func (s *Server) initRoutes() {
	// AUTH
	s.RegisterRouteFunc("POST "+RouteAuthLogin, s.LoginHandler())
	s.RegisterRouteFunc("POST "+RouteAuthLogout, s.LogoutHandler())
	s.RegisterRouteFunc("GET "+RouteAuthLogout, s.LogoutHandler()) // accepted for compatibility
	s.RegisterRouteFunc("GET "+RouteAuthSession, s.SessionCheckHandler())

	// SESSIONS (tenant-scoped)
	s.RegisterRouteFunc("GET "+RouteSessions, ChainMiddleware(s.SessionsListHandler(), s.APIMiddleware(s.RequireTenant())...))
	s.RegisterRouteFunc("POST "+RouteSessions, ChainMiddleware(s.SessionCreateHandler(), s.APIMiddleware(s.RequireTenant())...))
	s.RegisterRouteFunc("GET "+RouteSessionByID, ChainMiddleware(s.SessionGetHandler(), s.APIMiddleware(s.RequireTenant())...))
	s.RegisterRouteFunc("PUT "+RouteSessionByID, ChainMiddleware(s.SessionUpdateHandler(), s.APIMiddleware(s.RequireTenant())...))
	s.RegisterRouteFunc("PATCH "+RouteSessionByID, ChainMiddleware(s.SessionUpdateHandler(), s.APIMiddleware(s.RequireTenant())...))
	s.RegisterRouteFunc("DELETE "+RouteSessionByID, ChainMiddleware(s.SessionDeleteHandler(), s.APIMiddleware(s.RequireTenant())...))

	// CLIENTS (tenant-scoped)
	s.RegisterRouteFunc("GET "+RouteClients, ChainMiddleware(s.ClientsListHandler(), s.APIMiddleware(s.RequireTenant())...))
	s.RegisterRouteFunc("POST "+RouteClients, ChainMiddleware(s.ClientCreateHandler(), s.APIMiddleware(s.RequireTenant())...))
	s.RegisterRouteFunc("GET "+RouteClientByID, ChainMiddleware(s.ClientGetHandler(), s.APIMiddleware(s.RequireTenant())...))
	s.RegisterRouteFunc("PUT "+RouteClientByID, ChainMiddleware(s.ClientUpdateHandler(), s.APIMiddleware(s.RequireTenant())...))
	s.RegisterRouteFunc("PATCH "+RouteClientByID, ChainMiddleware(s.ClientUpdateHandler(), s.APIMiddleware(s.RequireTenant())...))
	s.RegisterRouteFunc("DELETE "+RouteClientByID, ChainMiddleware(s.ClientDeleteHandler(), s.APIMiddleware(s.RequireTenant())...))

	// STATUS
	s.RegisterRouteFunc("GET "+RouteStatus, s.StatusHandler())
}
