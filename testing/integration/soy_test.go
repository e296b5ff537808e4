//go:build integration

package integration_test

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/zoobzio/ponte"
)

func getTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	return db
}

func TestSoyStoreRoundTrip(t *testing.T) {
	db := getTestDB(t)
	ctx := context.Background()

	store, err := ponte.NewSoyStore(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	seed := ponte.NewSeedState(ctx, ponte.LayerIntuition, ponte.NewPayload("intuitive hypothesis"), 0.90)
	seed.SetMetadata("origin", "integration")

	if err := store.SaveState(ctx, seed); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	defer store.DeleteState(ctx, seed.ID)

	loaded, err := store.GetState(ctx, seed.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if loaded.ID != seed.ID {
		t.Errorf("expected ID %s, got %s", seed.ID, loaded.ID)
	}
	if loaded.Layer != ponte.LayerIntuition {
		t.Errorf("expected layer %s, got %s", ponte.LayerIntuition, loaded.Layer)
	}
	if loaded.Confidence != 0.90 {
		t.Errorf("expected confidence 0.90, got %f", loaded.Confidence)
	}
	if v, _ := loaded.MetadataValue("origin"); v != "integration" {
		t.Errorf("expected metadata to round-trip, got %q", v)
	}
	if loaded.Payload().Text() != "intuitive hypothesis" {
		t.Errorf("expected payload text to round-trip, got %q", loaded.Payload().Text())
	}
}

func TestSoyStoreLineage(t *testing.T) {
	db := getTestDB(t)
	ctx := context.Background()

	store, err := ponte.NewSoyStore(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	bridge := ponte.NewIntuitionExternalBridge()

	seed := ponte.NewSeedState(ctx, ponte.LayerIntuition, ponte.NewPayload("hypothesis"), 0.90)
	external, err := bridge.Forward(ctx, seed)
	if err != nil {
		t.Fatalf("forward failed: %v", err)
	}
	external.SetMetadata("verified", "true")
	refined, err := bridge.Backward(ctx, external)
	if err != nil {
		t.Fatalf("backward failed: %v", err)
	}

	for _, state := range []*ponte.LayerState{seed, external, refined} {
		if err := store.SaveState(ctx, state); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		defer store.DeleteState(ctx, state.ID)
	}

	lineage, err := store.Lineage(ctx, refined)
	if err != nil {
		t.Fatalf("lineage failed: %v", err)
	}
	if len(lineage) != 2 {
		t.Fatalf("expected 2 ancestors, got %d", len(lineage))
	}
	if lineage[0].ID != seed.ID || lineage[1].ID != external.ID {
		t.Error("lineage should come back in causal chain order")
	}

	// Provenance order survives the jsonb round trip.
	upstream := lineage[1].Upstream()
	if len(upstream) != 1 || upstream[0] != seed.ID {
		t.Errorf("expected upstream [%s], got %v", seed.ID, upstream)
	}
}

func TestSoyStoreGetStatesByLayer(t *testing.T) {
	db := getTestDB(t)
	ctx := context.Background()

	store, err := ponte.NewSoyStore(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	first := ponte.NewSeedState(ctx, ponte.LayerCrossDomain, ponte.NewPayload("a"), 0.5)
	second := ponte.NewSeedState(ctx, ponte.LayerCrossDomain, ponte.NewPayload("b"), 0.6)

	for _, state := range []*ponte.LayerState{first, second} {
		if err := store.SaveState(ctx, state); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		defer store.DeleteState(ctx, state.ID)
	}

	states, err := store.GetStatesByLayer(ctx, ponte.LayerCrossDomain)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(states) < 2 {
		t.Errorf("expected at least 2 states, got %d", len(states))
	}
}
