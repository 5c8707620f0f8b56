package profiles

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/lumen-home/light/mocks"
	"github.com/lumen-home/light/plugins/device"
	"github.com/stretchr/testify/assert"
)

// Writes a user profiles file into a temp folder.
func writeUserProfiles(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "profiles")
	assert.NoError(t, err)

	path := filepath.Join(dir, "light_profiles.csv")
	assert.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

// Tests bundled profiles load.
func TestBuiltinProfiles(t *testing.T) {
	store, err := NewProfileStore(&ConstructProfiles{
		Logger: mocks.FakeNewLogger(nil),
	})
	assert.NoError(t, err)

	for _, name := range []string{"relax", "concentrate", "energize", "reading"} {
		profile, ok := store.Get(name)
		assert.True(t, ok, name)
		assert.NotNil(t, profile.HSColor, "%s color", name)
		assert.NotNil(t, profile.Brightness, "%s brightness", name)
		assert.Nil(t, profile.Transition, "%s transition", name)
	}

	_, ok := store.Get("unknown")
	assert.False(t, ok, "unknown profile")
}

// Tests user file overlays bundled rows and bad rows are skipped.
func TestUserProfilesOverlay(t *testing.T) {
	path := writeUserProfiles(t, `id,x,y,brightness,transition
relax,0.3,0.3,100,1.5
broken,0.3,,100
custom,,,42
`)
	defer os.RemoveAll(filepath.Dir(path)) // nolint: errcheck

	logged := 0
	store, err := NewProfileStore(&ConstructProfiles{
		Logger:   mocks.FakeNewLogger(func(string) { logged++ }),
		UserPath: path,
	})
	assert.NoError(t, err)

	relax, ok := store.Get("relax")
	assert.True(t, ok, "relax")
	assert.Equal(t, uint8(100), *relax.Brightness, "relax overridden")
	assert.Equal(t, 1.5, *relax.Transition, "relax transition")

	_, ok = store.Get("broken")
	assert.False(t, ok, "broken row skipped")
	assert.NotEqual(t, 0, logged, "bad row logged")

	custom, ok := store.Get("custom")
	assert.True(t, ok, "custom")
	assert.Nil(t, custom.HSColor, "custom has no color")
	assert.Equal(t, uint8(42), *custom.Brightness, "custom brightness")

	_, ok = store.Get("energize")
	assert.True(t, ok, "builtin survives overlay")
}

// Tests missing user file is not an error.
func TestMissingUserFile(t *testing.T) {
	store, err := NewProfileStore(&ConstructProfiles{
		Logger:   mocks.FakeNewLogger(nil),
		UserPath: "/nonexistent/light_profiles.csv",
	})
	assert.NoError(t, err)

	_, ok := store.Get("relax")
	assert.True(t, ok)
}

// Tests reload is scheduled and picks up file changes.
func TestScheduledReload(t *testing.T) {
	path := writeUserProfiles(t, `id,x,y,brightness
first,,,10
`)
	defer os.RemoveAll(filepath.Dir(path)) // nolint: errcheck

	cron := mocks.FakeNewCron()
	store, err := NewProfileStore(&ConstructProfiles{
		Logger:     mocks.FakeNewLogger(nil),
		UserPath:   path,
		Cron:       cron,
		ReloadSpec: "@every 6h",
	})
	assert.NoError(t, err)

	_, ok := store.Get("first")
	assert.True(t, ok, "initial load")

	assert.NoError(t, ioutil.WriteFile(path, []byte(`id,x,y,brightness
second,,,20
`), 0644))
	cron.Fire()

	_, ok = store.Get("first")
	assert.False(t, ok, "stale row dropped")
	_, ok = store.Get("second")
	assert.True(t, ok, "new row loaded")
}

// Tests profile application never overwrites explicit values.
func TestProfileApply(t *testing.T) {
	store, err := NewProfileStore(&ConstructProfiles{
		Logger: mocks.FakeNewLogger(nil),
	})
	assert.NoError(t, err)

	params := &device.CommandParams{}
	store.Apply("relax", params)
	assert.NotNil(t, params.HSColor, "color applied")
	assert.Equal(t, uint8(144), *params.Brightness, "brightness applied")

	explicit := uint8(10)
	params = &device.CommandParams{Brightness: &explicit}
	store.Apply("relax", params)
	assert.Equal(t, uint8(10), *params.Brightness, "explicit brightness wins")

	params = &device.CommandParams{}
	store.Apply("unknown", params)
	assert.True(t, params.IsEmpty(), "unknown profile is a no-op")
}

// Tests entity and group default profiles.
func TestApplyDefault(t *testing.T) {
	path := writeUserProfiles(t, `id,x,y,brightness,transition
light.desk.default,,,200,4
group.all_lights.default,0.4448,0.4066,180,2
`)
	defer os.RemoveAll(filepath.Dir(path)) // nolint: errcheck

	store, err := NewProfileStore(&ConstructProfiles{
		Logger:   mocks.FakeNewLogger(nil),
		UserPath: path,
	})
	assert.NoError(t, err)

	// Light is off: both layers apply, entity first.
	params := &device.CommandParams{}
	store.ApplyDefault("light.desk", false, params)
	assert.Equal(t, uint8(200), *params.Brightness, "entity brightness wins")
	assert.Equal(t, 4.0, *params.Transition, "entity transition wins")
	assert.NotNil(t, params.HSColor, "group color fills the gap")

	// No entity default: group default applies.
	params = &device.CommandParams{}
	store.ApplyDefault("light.shelf", false, params)
	assert.Equal(t, uint8(180), *params.Brightness, "group brightness")

	// Light already on with explicit params: only transition merges.
	brightness := uint8(99)
	params = &device.CommandParams{Brightness: &brightness}
	store.ApplyDefault("light.desk", true, params)
	assert.Equal(t, uint8(99), *params.Brightness, "brightness untouched")
	assert.Nil(t, params.HSColor, "color untouched")
	assert.Equal(t, 4.0, *params.Transition, "transition merged")
}
