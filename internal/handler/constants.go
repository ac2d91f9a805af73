package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteMenus is the menu list route.
	RouteMenus = "/menus/"
	// RouteMenuCreate is the menu creation route.
	RouteMenuCreate = "/menus/create/"
	// RouteMenuEdit is the menu edit route.
	RouteMenuEdit = "/menus/{id}/edit/"
	// RouteMenuPreview is the menu preview route.
	RouteMenuPreview = "/menus/{id}/preview/"
	// RouteMenuReorder is the JSON reorder endpoint.
	RouteMenuReorder = "/menus/{id}/reorder/"
	// RouteMenuDelete is the menu delete route.
	RouteMenuDelete = "/menus/{id}/delete/"
	// RouteItemAdd is the menu item creation route.
	RouteItemAdd = "/menus/{id}/items/add/"
	// RouteItemEdit is the menu item edit route.
	RouteItemEdit = "/menus/{id}/items/{item_id}/edit/"
	// RouteItemDelete is the menu item delete route.
	RouteItemDelete = "/menus/{id}/items/{item_id}/delete/"

	// RouteDashboard is the statistics dashboard.
	RouteDashboard = "/dashboard/"
	// RouteEvents is the event log.
	RouteEvents = "/events/"
	// RouteLogin is the login route.
	RouteLogin = "/login/"
	// RouteLogout is the logout route.
	RouteLogout = "/logout/"
	// RouteHealth is the health check route.
	RouteHealth = "/health"
	// RouteStatic is the prefix for embedded static assets.
	RouteStatic = "/static/*"
)

// URL parameter names.
const (
	paramID     = "id"
	paramItemID = "item_id"
)

const (
	redirectMenus       = RouteMenus
	redirectMenuEdit    = "/menus/%d/edit/"
	redirectLogin       = RouteLogin
	redirectAfterLogin  = RouteMenus
	flashTypeSuccess    = "success"
	flashTypeError      = "error"
	msgCorrectErrors    = "Please correct the errors below."
	msgInvalidLogin     = "Invalid username or password."
	msgLoggedOut        = "You have been logged out successfully."
	msgInvalidMethod    = "Invalid request method"
	msgInternalError    = "Internal Server Error"
	msgTooManyAttempts  = "Too many failed attempts. Please try again in %s."
	templateNotFound    = "errors/404"
	templateServerError = "errors/500"
	headerContentType   = "Content-Type"
	contentTypeJSON     = "application/json"
	maxReorderBodyBytes = 1 << 20
)
