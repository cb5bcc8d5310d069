package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadTrainerDefaults(t *testing.T) {
	cfg, err := LoadTrainer("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Zero(t, cfg.MaxTurns)
	assert.Zero(t, cfg.MaxBattles)
	assert.Zero(t, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadTrainerYAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "trainer.yaml", `
base_url: http://game.local:9000
seed: 99
max_turns: 50
request_timeout: 3s
`)
	t.Setenv("TRAINER_MAX_TURNS", "7")

	cfg, err := LoadTrainer(p)
	require.NoError(t, err)
	assert.Equal(t, "http://game.local:9000", cfg.BaseURL)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 7, cfg.MaxTurns)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoadTrainerMissingFile(t *testing.T) {
	_, err := LoadTrainer(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadTrainerEnvError(t *testing.T) {
	t.Setenv("TRAINER_SEED", "not-an-int")
	_, err := LoadTrainer("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestTrainerValidate(t *testing.T) {
	cfg := DefaultTrainer()
	cfg.BaseURL = "ftp://x"
	assert.Error(t, cfg.Validate())

	cfg = DefaultTrainer()
	cfg.MaxBattles = -1
	assert.Error(t, cfg.Validate())
}

func TestLoadArenaDefaults(t *testing.T) {
	cfg, err := LoadArena("")
	require.NoError(t, err)
	assert.Len(t, cfg.Classes, 3)
	for _, id := range []string{"Knight", "Archer", "Wizard"} {
		_, ok := cfg.Class(id)
		assert.True(t, ok, id)
	}
}

func TestLoadArenaFromDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "arena.yaml", "addr: \":9999\"\nmax_turns: 10\n")
	writeFile(t, dir, "classes.yaml", `
classes:
  - id: Knight
    health: {min: 10, max: 10}
    stamina: {min: 1, max: 1}
    armor: {min: 0, max: 0}
    strength: {min: 20, max: 20}
    dexterity: {min: 20, max: 20}
    intellect: {min: 0, max: 0}
`)
	t.Setenv("ARENA_SEED", "5")

	cfg, err := LoadArena(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 10, cfg.MaxTurns)
	assert.Equal(t, int64(5), cfg.Seed)
	require.Len(t, cfg.Classes, 1)
	assert.Equal(t, 10, cfg.Classes[0].Health.Max)
}

func TestLoadArenaMissingFilesKeepDefaults(t *testing.T) {
	cfg, err := LoadArena(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultArena().Addr, cfg.Addr)
	assert.Len(t, cfg.Classes, 3)
}

func TestArenaValidateRejectsDuplicates(t *testing.T) {
	cfg := DefaultArena()
	cfg.Classes = append(cfg.Classes, cfg.Classes[0])
	assert.Error(t, cfg.Validate())
}

func TestLoadArenaAIFromYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "arena.yaml", `
ai: reinforcement
learning:
  learning_rate: 0.5
`)
	t.Setenv("ARENA_EXPLORE_RATE", "0")

	cfg, err := LoadArena(dir)
	require.NoError(t, err)
	assert.Equal(t, AIReinforcement, cfg.AI)
	assert.Equal(t, 0.5, cfg.Learning.LearningRate)
	assert.Equal(t, 0.9, cfg.Learning.Discount)
	assert.Zero(t, cfg.Learning.ExploreRate)
	assert.True(t, cfg.Learning.Train)

	t.Setenv("ARENA_AI", AIRand)
	cfg, err = LoadArena(dir)
	require.NoError(t, err)
	assert.Equal(t, AIRand, cfg.AI)
}

func TestArenaValidateAI(t *testing.T) {
	cfg := DefaultArena()
	assert.Equal(t, AIMinMax, cfg.AI)

	cfg.AI = "oracle"
	assert.Error(t, cfg.Validate())

	cfg = DefaultArena()
	cfg.Learning.Discount = 1.5
	assert.Error(t, cfg.Validate())
}
