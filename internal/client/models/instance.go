package models

import "time"

// Instance is a provisioned VPS as seen by the customer.
type Instance struct {
	// ID is the instance identifier.
	ID string `json:"id"`

	// Name is the user-assigned label.
	Name string `json:"name"`

	// Status is the lifecycle state reported by the backend
	// ("running", "stopped", "provisioning", "suspended").
	Status string `json:"status"`

	// Node is the name of the host node the container runs on.
	Node string `json:"node"`

	// CPUCores, MemoryMB and DiskGB describe the plan-assigned resources.
	CPUCores int `json:"cpuCores"`
	MemoryMB int `json:"memoryMb"`
	DiskGB   int `json:"diskGb"`

	// IPAddress is the public or NAT address assigned to the instance.
	IPAddress string `json:"ipAddress"`

	// Ports are the NAT port mappings, present in detail responses only.
	Ports []PortMapping `json:"ports,omitempty"`

	// ExpiresAt is when the current billing period ends.
	ExpiresAt time.Time `json:"expiresAt"`
}

// PortMapping is a NAT forwarding rule from a public node port to an
// instance-internal port.
type PortMapping struct {
	PublicPort   int    `json:"publicPort"`
	InternalPort int    `json:"internalPort"`
	Protocol     string `json:"protocol"`
}
