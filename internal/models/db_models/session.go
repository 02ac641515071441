package db_models

// Session holds one user's trip-planning parameters for the lifetime of a
// planning interaction. It lives in the session store, not in postgres;
// expiry is the store's concern.
type Session struct {
	SessionID       string    `json:"sessionId"`
	City            string    `json:"city"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	Interests       []string  `json:"interests"`
	CityCoordinates []float64 `json:"cityCoordinates"`
}
