package constants

// Route constants shared by the router, controllers and views
const (
	RouteIndex                 = "/"
	RouteCreateCheckoutSession = "/create-checkout-session/"
	RouteSuccess               = "/success/"
	RouteOrders                = "/orders/"
	RouteWebhook               = "/webhook/"
	RoutePing                  = "/ping"
	RouteMetrics               = "/metrics"
	RouteAPI                   = "/api"
	RouteDocs                  = "/docs/api/"
)
