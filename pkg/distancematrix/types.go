package distancematrix

// LatLng is a coordinate pair.
type LatLng struct {
	Lat float64
	Lng float64
}

// matrixResponse is the Distance Matrix API response, reduced to the single
// origin/destination shape this client requests.
type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration struct {
				Value int64 `json:"value"` // seconds
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
	ErrorMessage string `json:"error_message"`
}
