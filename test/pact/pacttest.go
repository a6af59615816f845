//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "petadopt-api"
	ConsumerName = "adoption-portal"

	StateAdopterSignedIn   = "adopter pact-adopter is signed in"
	StateInteractionExists = "adopter pact-adopter has chat interaction 1"
	StateNoInteractions    = "adopter pact-adopter has no chat interactions"
)

const (
	// AdopterToken is the bearer token the provider maps to the seeded adopter.
	AdopterToken     = "pact-adopter-token"
	AdopterEmail     = "pact.adopter@example.com"
	AdopterPassword  = "pact-senha-forte"
	ExampleSessionID = "3f1c8f7e-5b9d-4c1a-9a57-0d6c2f4f9b10"

	ExistingInteraction int64 = 1
	MissingInteraction  int64 = 404
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the adoption portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleMessagePayload is the chat message the portal sends in every state.
func ExampleMessagePayload() map[string]any {
	return map[string]any{
		"message":   "Olá, tudo bem?",
		"sessionId": ExampleSessionID,
	}
}

// ExampleFeedbackPayload marks the existing interaction as helpful.
func ExampleFeedbackPayload() map[string]any {
	return map[string]any{
		"interactionId": ExistingInteraction,
		"feedback":      true,
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
