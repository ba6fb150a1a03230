package response

type ResUpdateRoute struct {
	RouteID string                 `json:"routeId"`
	Updates map[string]interface{} `json:"updates"`
}
