package places

// Place is a resolved place: display name plus coordinates.
type Place struct {
	Name string
	Lat  float64
	Lng  float64
}

// findPlaceResponse is the Places API "find place from text" response.
type findPlaceResponse struct {
	Status     string `json:"status"`
	Candidates []struct {
		Name     string `json:"name"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"candidates"`
	ErrorMessage string `json:"error_message"`
}
