// Command syncrates refreshes the stored exchange rates once. It is meant for the daily cron;
// a failed run exits 1 and leaves the previous snapshot in place.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"casas_prefab/internal/infrastructure/config"
	"casas_prefab/internal/infrastructure/database"
	"casas_prefab/internal/infrastructure/rates"

	_ "github.com/joho/godotenv/autoload"
)

const defaultSyncTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		log.Printf("[rates][syncrates] sync failed err=%v", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), config.Duration("RATES_SYNC_TIMEOUT", defaultSyncTimeout))
	defer cancel()

	provider := rates.NewProviderFromEnv(database.ConnectDynamoDB())

	synced, err := provider.SyncRates(ctx)
	if err != nil {
		return err
	}
	log.Printf("[rates][syncrates] sync success usd_to_clp=%.2f uf_to_clp=%.2f eur_to_clp=%.2f updated_at=%s",
		synced.USDToCLP, synced.UFToCLP, synced.EURToCLP, synced.RetrievedAt.Format(time.RFC3339))
	return nil
}
