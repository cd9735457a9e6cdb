package models

// Plan is a purchasable VPS configuration.
type Plan struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CPUCores int    `json:"cpuCores"`
	MemoryMB int    `json:"memoryMb"`
	DiskGB   int    `json:"diskGb"`

	// MonthlyPrice is the price per month in cents.
	MonthlyPrice int64 `json:"monthlyPrice"`

	// Stock is the number of instances still available; 0 means sold out.
	Stock int `json:"stock"`

	// Region is the datacenter region the plan provisions into.
	Region string `json:"region"`
}
