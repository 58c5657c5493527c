package loader

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	loaded  bool
	err     error
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadsEnabledFeatures(t *testing.T) {
	app := fiber.New()
	mgr := NewManager()

	enabled := &stubFeature{name: "emoji", enabled: true}
	disabled := &stubFeature{name: "unicode", enabled: false}
	mgr.Register(enabled)
	mgr.Register(disabled)

	require.NoError(t, mgr.LoadAll(app))
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
}

func TestManager_FailsFastWithFeatureName(t *testing.T) {
	app := fiber.New()
	mgr := NewManager()

	failing := &stubFeature{name: "emoji", enabled: true, err: assert.AnError}
	after := &stubFeature{name: "unicode", enabled: true}
	mgr.Register(failing)
	mgr.Register(after)

	err := mgr.LoadAll(app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "emoji")
	assert.False(t, after.loaded)
}
