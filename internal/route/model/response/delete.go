package response

type ResDeleteRoute struct {
	RouteID string `json:"routeId"`
}
