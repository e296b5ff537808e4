package ponte

import (
	"context"
	"testing"
)

func TestNewSeedState(t *testing.T) {
	payload := NewPayload("intuitive hypothesis")
	state := NewSeedState(context.Background(), LayerIntuition, payload, 0.90)

	if state.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if state.Layer != LayerIntuition {
		t.Errorf("expected layer %q, got %q", LayerIntuition, state.Layer)
	}
	if state.Confidence != 0.90 {
		t.Errorf("expected confidence 0.90, got %f", state.Confidence)
	}
	if state.Payload() != payload {
		t.Error("expected payload handle to be shared, not copied")
	}
	if len(state.Upstream()) != 0 {
		t.Error("seed state should have empty provenance")
	}
}

func TestSeedStateIDsAreUnique(t *testing.T) {
	a := newTestState(LayerIntuition, 0.5)
	b := newTestState(LayerIntuition, 0.5)
	if a.ID == b.ID {
		t.Error("expected distinct IDs for distinct states")
	}
}

func TestSetMetadataUpserts(t *testing.T) {
	state := newTestState(LayerCrossDomain, 0.8)

	state.SetMetadata("origin", "simulation")
	state.SetMetadata("origin", "live")

	v, ok := state.MetadataValue("origin")
	if !ok || v != "live" {
		t.Errorf("expected upserted value %q, got %q (present=%t)", "live", v, ok)
	}
	if len(state.Metadata()) != 1 {
		t.Errorf("expected 1 metadata entry, got %d", len(state.Metadata()))
	}
}

func TestMetadataReturnsCopy(t *testing.T) {
	state := newTestState(LayerCrossDomain, 0.8)
	state.SetMetadata("key", "value")

	meta := state.Metadata()
	meta["key"] = "tampered"
	meta["extra"] = "entry"

	v, _ := state.MetadataValue("key")
	if v != "value" {
		t.Error("mutating the returned map should not affect the state")
	}
	if _, ok := state.MetadataValue("extra"); ok {
		t.Error("mutating the returned map should not add entries to the state")
	}
}

func TestUpstreamReturnsCopy(t *testing.T) {
	seed := newTestState(LayerCrossDomain, 0.8)
	derived, err := NewCrossDomainIntuitionBridge().Forward(context.Background(), seed)
	if err != nil {
		t.Fatalf("forward failed: %v", err)
	}

	chain := derived.Upstream()
	chain[0] = "tampered"

	if derived.Upstream()[0] != seed.ID {
		t.Error("mutating the returned provenance should not affect the state")
	}
}

func TestCloneSharesPayloadCopiesHistory(t *testing.T) {
	state := newTestState(LayerIntuition, 0.7)
	state.SetMetadata("key", "value")

	clone := state.Clone()

	if clone.Payload() != state.Payload() {
		t.Error("clone should share the payload handle")
	}
	if clone.ID != state.ID {
		t.Error("clone should preserve identity")
	}

	clone.SetMetadata("key", "altered")
	if v, _ := state.MetadataValue("key"); v != "value" {
		t.Error("clone metadata writes should not leak into the original")
	}
}

func TestPayloadText(t *testing.T) {
	if got := NewPayload("plain string").Text(); got != "plain string" {
		t.Errorf("expected verbatim string, got %q", got)
	}
	if got := NewPayload(42).Text(); got != "42" {
		t.Errorf("expected rendered value, got %q", got)
	}
	if got := (*Payload)(nil).Text(); got != "" {
		t.Errorf("expected empty text for nil payload, got %q", got)
	}
}

func TestProvenanceValueScanRoundTrip(t *testing.T) {
	original := Provenance{"a", "b", "b", "c"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}

	var decoded Provenance
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if len(decoded) != len(original) {
		t.Fatalf("expected %d entries, got %d", len(original), len(decoded))
	}
	for i := range original {
		if decoded[i] != original[i] {
			t.Errorf("entry %d: expected %q, got %q", i, original[i], decoded[i])
		}
	}
}

func TestProvenanceScanNil(t *testing.T) {
	var p Provenance
	if err := p.Scan(nil); err != nil {
		t.Fatalf("scan nil failed: %v", err)
	}
	if p != nil {
		t.Error("expected nil provenance from nil source")
	}
}
