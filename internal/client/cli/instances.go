package cli

import (
	"context"
	"fmt"
)

func (a *App) listInstances(ctx context.Context) {
	list, err := a.instances.List(ctx)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if len(list) == 0 {
		fmt.Println("No instances")
		return
	}

	fmt.Printf("%-12s %-20s %-12s %-10s %s\n", "ID", "NAME", "STATUS", "NODE", "EXPIRES")
	for _, inst := range list {
		fmt.Printf("%-12s %-20s %-12s %-10s %s\n",
			inst.ID, inst.Name, inst.Status, inst.Node, inst.ExpiresAt.Format("2006-01-02"))
	}
}

func (a *App) showInstance(ctx context.Context, id string) {
	inst, err := a.instances.Get(ctx, id)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("ID:      %s\n", inst.ID)
	fmt.Printf("Name:    %s\n", inst.Name)
	fmt.Printf("Status:  %s\n", inst.Status)
	fmt.Printf("Node:    %s\n", inst.Node)
	fmt.Printf("Specs:   %d vCPU, %d MB RAM, %d GB disk\n", inst.CPUCores, inst.MemoryMB, inst.DiskGB)
	fmt.Printf("IP:      %s\n", inst.IPAddress)
	fmt.Printf("Expires: %s\n", inst.ExpiresAt.Format("2006-01-02"))

	if len(inst.Ports) > 0 {
		fmt.Println("Ports:")
		for _, p := range inst.Ports {
			fmt.Printf("  %d -> %d/%s\n", p.PublicPort, p.InternalPort, p.Protocol)
		}
	}
}

func (a *App) powerInstance(ctx context.Context, id, action string) {
	if err := a.instances.Power(ctx, id, action); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("Requested %s for %s\n", action, id)
}
