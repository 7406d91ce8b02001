package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/arashoo/Katena-project-management/pkg/application/dto"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/config"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/seed"
	"github.com/arashoo/Katena-project-management/pkg/interfaces/cli/commands"
)

func main() {
	ctx := context.Background()

	shop, err := commands.NewShop(config.Default(), zap.NewNop(), nil)
	if err != nil {
		fmt.Printf("❌ setup failed: %v\n", err)
		return
	}

	// The sample project needs ten 36x48 clear panes; five are on the shelf
	fmt.Println("🪟 Checking the sample project...")
	availability, err := shop.CheckAvailability(seed.SampleProjectID, seed.SampleRequirementID)
	if err != nil {
		fmt.Printf("❌ availability failed: %v\n", err)
		return
	}
	printAvailability("Front windows", availability)

	// A second project competing for the same panes
	other, err := shop.CreateProject(ctx, dto.ProjectInput{Name: "Storefront"})
	if err != nil {
		fmt.Printf("❌ create project failed: %v\n", err)
		return
	}
	req, err := shop.AddRequirement(ctx, other.ID, dto.RequirementInput{
		SpecInput: dto.SpecInput{Category: "glass", Width: "36", Height: "48", Color: "Clear"},
		Quantity:  "3",
	})
	if err != nil {
		fmt.Printf("❌ add requirement failed: %v\n", err)
		return
	}
	fmt.Printf("\n🏬 %s claims %s panes\n", other.Name, req.Quantity)
	availability, _ = shop.CheckAvailability(seed.SampleProjectID, seed.SampleRequirementID)
	printAvailability("Front windows", availability)

	// Order the shortfall and walk it through the pipeline
	order, err := shop.CreateOrder(ctx, seed.SampleProjectID, seed.SampleRequirementID)
	if err != nil {
		fmt.Printf("❌ create order failed: %v\n", err)
		return
	}
	fmt.Printf("\n🧾 Ordered %d x %s (%s)\n", order.Quantity, order.ItemName, order.Status)
	for order.Status != "delivered" {
		order, err = shop.AdvanceOrder(ctx, order.ID, dto.AdvanceInput{})
		if err != nil {
			fmt.Printf("❌ advance failed: %v\n", err)
			return
		}
		fmt.Printf("  → %s\n", order.Status)
	}
	availability, _ = shop.CheckAvailability(seed.SampleProjectID, seed.SampleRequirementID)
	printAvailability("Front windows after delivery", availability)

	// Hardware nobody stocks yet gets a new inventory record on delivery
	track, err := shop.AddRequirement(ctx, other.ID, dto.RequirementInput{
		SpecInput: dto.SpecInput{Category: "hardware", ItemType: "Sliding Track"},
		Quantity:  "4",
	})
	if err != nil {
		fmt.Printf("❌ add requirement failed: %v\n", err)
		return
	}
	trackOrder, err := shop.CreateOrder(ctx, other.ID, track.ID)
	if err != nil {
		fmt.Printf("❌ create order failed: %v\n", err)
		return
	}
	if _, err := shop.AdvanceOrder(ctx, trackOrder.ID, dto.AdvanceInput{Status: "delivered"}); err != nil {
		fmt.Printf("⚠️  %v\n", err)
	}
	for range 3 {
		if _, err := shop.AdvanceOrder(ctx, trackOrder.ID, dto.AdvanceInput{}); err != nil {
			fmt.Printf("❌ advance failed: %v\n", err)
			return
		}
	}

	report, err := shop.InventoryReport()
	if err != nil {
		fmt.Printf("❌ inventory failed: %v\n", err)
		return
	}
	fmt.Println("\n📦 Hardware on hand:")
	for _, item := range report.Hardware {
		fmt.Printf("  %-16s %s\n", item.Name, item.Quantity)
	}
}

func printAvailability(label string, a *dto.AvailabilityView) {
	fmt.Printf("  %s: stock %d, allocated elsewhere %d, available %d, needed %d, short %d\n",
		label, a.InStock, a.Allocated, a.Available, a.Needed, a.Shortage)
}
