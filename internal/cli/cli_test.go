package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/firstrun/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig creates a config file using a file store inside a temp dir.
func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "firstrun.yaml")
	content := fmt.Sprintf("log:\n  level: error\nstore:\n  backend: file\n  path: %s\n%s",
		filepath.Join(dir, "install.json"), extra)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunPlan_Text(t *testing.T) {
	var out bytes.Buffer
	opts := PlanOptions{Options: Options{ConfigPath: writeConfig(t, ""), Out: &out}}

	require.NoError(t, RunPlan(context.Background(), opts))
	assert.Contains(t, out.String(), "1. welcome")
	assert.Contains(t, out.String(), "2. default_browser_promotion")
	assert.Contains(t, out.String(), "pages: 2")
}

func TestRunPlan_JSONAfterPromotionShown(t *testing.T) {
	cfgPath := writeConfig(t, "")
	ctx := context.Background()

	var msg bytes.Buffer
	require.NoError(t, RunPromotionShown(ctx, Options{ConfigPath: cfgPath, Out: &msg}))
	assert.Contains(t, msg.String(), "shown 1 time(s)")

	var count bytes.Buffer
	require.NoError(t, RunPromotionCount(ctx, Options{ConfigPath: cfgPath, Out: &count}))
	assert.Equal(t, "1", strings.TrimSpace(count.String()))

	var out bytes.Buffer
	require.NoError(t, RunPlan(ctx, PlanOptions{Options: Options{ConfigPath: cfgPath, Out: &out}, JSON: true}))

	var plan struct {
		PageCount int `json:"page_count"`
		Facts     struct {
			Prior int `json:"prior_promotion_dialog_count"`
		} `json:"facts"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &plan))
	assert.Equal(t, 1, plan.PageCount)
	assert.Equal(t, 1, plan.Facts.Prior)
}

func TestRunPlan_UnsupportedPlatform(t *testing.T) {
	var out bytes.Buffer
	cfgPath := writeConfig(t, "detector:\n  supported: false\n")

	require.NoError(t, RunPlan(context.Background(), PlanOptions{Options: Options{ConfigPath: cfgPath, Out: &out}}))
	assert.Contains(t, out.String(), "pages: 1")
}

func TestRunPlan_CustomCatalog(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "pages.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte(`
pages:
  welcome:
    title: Hej
  default_browser_promotion:
    title: Standard
`), 0644))

	var out bytes.Buffer
	cfgPath := writeConfig(t, "catalog:\n  path: "+catalog+"\n")
	require.NoError(t, RunPlan(context.Background(), PlanOptions{Options: Options{ConfigPath: cfgPath, Out: &out}}))
	assert.Contains(t, out.String(), "Hej")
	assert.Contains(t, out.String(), "Standard")
}

func TestRunPlan_BadCatalog(t *testing.T) {
	cfgPath := writeConfig(t, "catalog:\n  path: /does/not/exist.yaml\n")
	err := RunPlan(context.Background(), PlanOptions{Options: Options{ConfigPath: cfgPath, Out: &bytes.Buffer{}}})
	assert.ErrorContains(t, err, "page catalog")
}

func TestRunPreview_Plain(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunPreview(context.Background(), Options{ConfigPath: writeConfig(t, ""), Out: &out}))
	assert.Contains(t, out.String(), "page 2/2: default_browser_promotion")
	assert.Contains(t, out.String(), "[ Set as default browser ]")
}

func TestRunGraph(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunGraph(context.Background(), Options{Out: &out}, false))
	assert.Contains(t, out.String(), "graph TD")
	assert.NotContains(t, out.String(), "classDef")

	out.Reset()
	require.NoError(t, RunGraph(context.Background(), Options{ConfigPath: writeConfig(t, ""), Out: &out}, true))
	assert.Contains(t, out.String(), "class plan_promotion current;")
}

func TestCreateStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store, closer, err := createStore(config.StoreConfig{
		Backend: config.BackendRedis,
		Redis:   config.RedisConfig{Addr: mr.Addr(), Prefix: "t:", InstallID: "x"},
	})
	require.NoError(t, err)
	defer closer.Close()

	n, err := store.RecordPromotionDialogShown(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, mr.Exists("t:x:promotion_dialog_count"))

	_, _, err = createStore(config.StoreConfig{Backend: "etcd"})
	assert.Error(t, err)

	store, _, err = createStore(config.StoreConfig{Backend: config.BackendMemory})
	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestRunServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	opts := ServeOptions{Options: Options{ConfigPath: writeConfig(t, ""), Out: &out}, Port: "0"}
	assert.NoError(t, RunServe(ctx, opts))
}

func TestLoadConfig_Invalid(t *testing.T) {
	cfgPath := writeConfig(t, "")
	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfgPath, []byte(strings.Replace(string(content), "backend: file", "backend: floppy", 1)), 0644))

	_, _, err = loadConfig(Options{ConfigPath: cfgPath})
	assert.ErrorContains(t, err, "unknown store backend")
}

func TestSignalContext_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	sc := NewSignalContext(parent)
	defer sc.Cancel()

	cancel()
	<-sc.Done()
	assert.Nil(t, sc.Signal())
}

func TestRunPlan_PageDirectory(t *testing.T) {
	pages := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(pages, "welcome.md"), []byte("---\ntitle: Moin\n---\nHallo.\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(pages, "default_browser_promotion.md"), []byte("---\ntitle: Standardbrowser\n---\nJetzt.\n"), 0644))

	var out bytes.Buffer
	cfgPath := writeConfig(t, "catalog:\n  path: "+pages+"\n")
	require.NoError(t, RunPlan(context.Background(), PlanOptions{Options: Options{ConfigPath: cfgPath, Out: &out}}))
	assert.Contains(t, out.String(), "Moin")
	assert.Contains(t, out.String(), "Standardbrowser")
}

func TestRunMCP_UnknownTransport(t *testing.T) {
	opts := MCPOptions{Options: Options{ConfigPath: writeConfig(t, ""), Out: &bytes.Buffer{}}, Transport: "carrier-pigeon"}
	assert.ErrorContains(t, RunMCP(context.Background(), opts), "unknown transport")
}

func TestRunMCP_SSEStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := MCPOptions{Options: Options{ConfigPath: writeConfig(t, ""), Out: &bytes.Buffer{}}, Transport: TransportSSE, Port: 0}
	assert.NoError(t, RunMCP(ctx, opts))
}
