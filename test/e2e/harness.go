// Package e2e provides end-to-end test infrastructure for the assessment engine.
package e2e

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skillforge/skillforge/ent"
	"github.com/skillforge/skillforge/pkg/api"
	"github.com/skillforge/skillforge/pkg/database"
	"github.com/skillforge/skillforge/pkg/services"
	testdb "github.com/skillforge/skillforge/test/database"
)

// TestApp boots a complete SkillForge instance for e2e testing: real services
// over a per-test Postgres schema, with the LLM replaced by a scripted mock.
type TestApp struct {
	DBClient  *database.Client
	EntClient *ent.Client
	LLMClient *ScriptedLLMClient

	Surveys    *services.SurveyService
	Sessions   *services.SessionService
	Autosave   *services.AutosaveService
	Scoring    *services.ScoringService
	Generation *services.GenerationService

	BaseURL string

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	llmClient *ScriptedLLMClient
	genConfig *services.GenerationConfig
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithLLMClient sets a pre-scripted LLM client.
func WithLLMClient(client *ScriptedLLMClient) TestAppOption {
	return func(c *testAppConfig) { c.llmClient = client }
}

// WithGenerationConfig overrides the generation config.
func WithGenerationConfig(cfg services.GenerationConfig) TestAppOption {
	return func(c *testAppConfig) { c.genConfig = &cfg }
}

// NewTestApp creates and starts a full SkillForge test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.llmClient == nil {
		tc.llmClient = NewScriptedLLMClient()
	}
	if tc.genConfig == nil {
		cfg := defaultTestGenerationConfig()
		tc.genConfig = &cfg
	}

	dbClient := testdb.NewTestClient(t)
	entClient := dbClient.Client

	surveyService := services.NewSurveyService(entClient)
	sessionService := services.NewSessionService(entClient)
	autosaveService := services.NewAutosaveService(entClient)
	scoringService := services.NewScoringService(entClient)
	generationService := services.NewGenerationService(
		entClient, tc.llmClient, sessionService, surveyService, scoringService, *tc.genConfig)

	server := api.NewServer(dbClient, surveyService, sessionService, generationService, autosaveService, scoringService)
	httpServer := httptest.NewServer(server.Router())
	t.Cleanup(httpServer.Close)

	return &TestApp{
		DBClient:   dbClient,
		EntClient:  entClient,
		LLMClient:  tc.llmClient,
		Surveys:    surveyService,
		Sessions:   sessionService,
		Autosave:   autosaveService,
		Scoring:    scoringService,
		Generation: generationService,
		BaseURL:    httpServer.URL,
		t:          t,
	}
}

// defaultTestGenerationConfig tightens the production defaults so failure
// paths (retries, budget exhaustion) resolve in test time.
func defaultTestGenerationConfig() services.GenerationConfig {
	cfg := services.DefaultGenerationConfig()
	cfg.MaxIterations = 8
	cfg.CallTimeout = 5 * time.Second
	cfg.RoundBudget = 20 * time.Second
	cfg.BackoffSchedule = []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}
	return cfg
}
