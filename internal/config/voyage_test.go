package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"laytime-calculator/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const vesselYAML = `vessel:
  name: TB Sinar 01
  laden_speed_knots: 5
  ballast_speed_knots: 6
  mode: charter
  consumption:
    rate: 150
  charter:
    hire: 300000000
`

func TestLoadResolvesVesselFileRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vessels/sinar.yaml", vesselYAML)
	path := writeFile(t, dir, "jobs/voyage.yaml", `meta:
  tug_boat: TB Sinar 01
vessel_file: ../vessels/sinar.yaml
vessel:
  laden_speed_knots: 4.5
route:
  laden_distance_nm: 500
  ballast_distance_nm: 500
  port_days: 2
  bunker_price: 15000
cargo_tons: 7500
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "TB Sinar 01", c.Meta.TugBoat)
	assert.Equal(t, 4.5, c.Vessel.LadenSpeedKnots)
	assert.Equal(t, 6.0, c.Vessel.BallastSpeedKnots)
	assert.Equal(t, "charter", c.Vessel.Mode)
	assert.Equal(t, 1000.0, c.Route.ToModel().TotalDistanceNM())
}

func TestLoadRejectsNegativeCargo(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "voyage.yaml", `vessel:
  mode: charter
cargo_tons: -5
`)
	_, err := Load(path)
	var inv *model.InvalidInputError
	require.True(t, errors.As(err, &inv), "got %v", err)
	assert.Equal(t, "cargo_tons", inv.Field)
}

func TestLoadUncheckedMissingFile(t *testing.T) {
	_, err := LoadUnchecked(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVoyageConfigValidateNil(t *testing.T) {
	var c *VoyageConfig
	assert.Error(t, c.Validate())
}

func TestLoadUncheckedWithResolver(t *testing.T) {
	path := writeFile(t, t.TempDir(), "voyage.yaml", `vessel_file: sinar
vessel:
  name: override
`)
	var asked string
	c, err := LoadUncheckedWith(path, func(ref string) (VesselConfig, error) {
		asked = ref
		return ownerConfig(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "sinar", asked)
	assert.Equal(t, "override", c.Vessel.Name)
	assert.Equal(t, "owner", c.Vessel.Mode)
}

func TestExampleJobsLoad(t *testing.T) {
	for _, name := range []string{"voyage_owner.yaml", "voyage_charter.yaml"} {
		c, err := Load(filepath.Join("..", "..", "examples", "jobs", name))
		require.NoError(t, err, name)
		_, err = c.Vessel.ToModel()
		assert.NoError(t, err, name)
	}
	for _, name := range []string{"laytime_interval.yaml", "laytime_span.yaml"} {
		c, err := LoadLaytime(filepath.Join("..", "..", "examples", "jobs", name))
		require.NoError(t, err, name)
		_, err = c.ToModel()
		assert.NoError(t, err, name)
	}
}
