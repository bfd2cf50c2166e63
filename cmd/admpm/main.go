package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/jimmicro/version"
	"github.com/jimyag/admp/internal/admp/config"
	"github.com/jimyag/admp/internal/admp/entity"
	"github.com/jimyag/admp/internal/admp/repository"
	"github.com/jimyag/admp/internal/admp/service"
	"github.com/jimyag/admp/pkg/azure"
)

func main() {
	var (
		subscriptionID = flag.String("subscription", "", "source subscription ID (required)")
		resourceGroup  = flag.String("resource-group", "", "source resource group name (required)")
		vmName         = flag.String("vm", "", "source virtual machine name (required)")
		targetSub      = flag.String("target-subscription", "", "target subscription ID (defaults to source)")
		targetGroup    = flag.String("target-resource-group", "", "target resource group name (defaults to source)")
		planOnly       = flag.Bool("plan", false, "only print the migration plan, do not copy")
	)
	flag.Parse()

	// 未指定源订阅时回退到 AZURE_SUBSCRIPTION_ID
	if *subscriptionID == "" {
		*subscriptionID = os.Getenv("AZURE_SUBSCRIPTION_ID")
	}
	if *subscriptionID == "" || *resourceGroup == "" || *vmName == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("failed to create data dir: %v", err)
	}
	repo, err := repository.New(filepath.Join(cfg.DataDir, "admp.db"))
	if err != nil {
		log.Fatalf("failed to open repository: %v", err)
	}
	defer repo.Close()

	azureClient, err := azure.New()
	if err != nil {
		log.Fatalf("failed to create azure client: %v", err)
	}

	migrationService := service.NewMigrationService(azureClient, repo, service.NewEventBroker())
	ctx := context.Background()

	if *planOnly {
		plan, err := migrationService.PlanMigration(ctx, &entity.PlanMigrationRequest{
			SubscriptionID:          *subscriptionID,
			ResourceGroupName:       *resourceGroup,
			VMName:                  *vmName,
			TargetSubscriptionID:    *targetSub,
			TargetResourceGroupName: *targetGroup,
		})
		if err != nil {
			log.Fatalf("failed to plan migration: %v", err)
		}
		printJSON(plan)
		return
	}

	migration, err := migrationService.StartMigration(ctx, &entity.StartMigrationRequest{
		SubscriptionID:          *subscriptionID,
		ResourceGroupName:       *resourceGroup,
		VMName:                  *vmName,
		TargetSubscriptionID:    *targetSub,
		TargetResourceGroupName: *targetGroup,
	})
	if migration != nil {
		printJSON(migration)
	}
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	fmt.Println("\ndone")
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal result: %v", err)
	}
	fmt.Println(string(data))
}
