package contract

type AddressResponse struct {
	Zipcode     string `json:"zipcode"`
	Prefecture  string `json:"prefecture"`
	City        string `json:"city"`
	Town        string `json:"town,omitempty"`
	FullAddress string `json:"full_address"`
	Cached      bool   `json:"cached"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Timestamp   string `json:"timestamp"`
	DemoMode    bool   `json:"demo_mode"`
	Environment string `json:"environment"`
}
