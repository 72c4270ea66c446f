package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="30" tileheight="30" infinite="0" nextlayerid="6" nextobjectid="9">
 <tileset firstgid="1" name="geometry" tilewidth="30" tileheight="30" tilecount="1" columns="1"/>
 <layer id="1" name="geometry" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
1,0,0,0,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="15" y="51">
   <properties>
    <property name="mode" value="ship"/>
    <property name="speed" type="float" value="1.5"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Hazards">
  <object id="2" x="60" y="75" width="15" height="15"/>
 </objectgroup>
 <objectgroup id="4" name="Portals">
  <object id="3" x="90" y="0" width="30" height="90">
   <properties>
    <property name="mode" value="wave"/>
    <property name="mini" type="bool" value="true"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="5" name="Finish">
  <object id="4" x="110" y="0" width="6" height="90"/>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/tiny.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}
}

func TestLoadParsesGeometryAndObjects(t *testing.T) {
	data, err := Load(testFS(), "levels/tiny.tmx")
	require.NoError(t, err)

	require.Equal(t, 120, data.MapWidth)
	require.Equal(t, 90, data.MapHeight)

	// One block in row 1 plus the full bottom row.
	require.Len(t, data.Blocks, 5)
	require.Contains(t, data.Blocks, Rect{X: 0, Y: 30, W: 30, H: 30})
	require.Contains(t, data.Blocks, Rect{X: 90, Y: 60, W: 30, H: 30})

	require.Len(t, data.Spikes, 1)
	require.Equal(t, Rect{X: 60, Y: 75, W: 15, H: 15}, data.Spikes[0])

	require.Equal(t, 110.0, data.Length, "finish object overrides map width")
}

func TestLoadSpawnProperties(t *testing.T) {
	data, err := Load(testFS(), "levels/tiny.tmx")
	require.NoError(t, err)

	require.Equal(t, "ship", data.Spawn.Mode)
	require.Equal(t, 15.0, data.Spawn.X)
	require.Equal(t, 51.0, data.Spawn.Y)
	require.Equal(t, 1.5, data.Spawn.Speed)
	require.Equal(t, 1.0, data.Spawn.Flip, "unset flip defaults to upright")
}

func TestLoadPortalOverrides(t *testing.T) {
	data, err := Load(testFS(), "levels/tiny.tmx")
	require.NoError(t, err)

	require.Len(t, data.Portals, 1)
	p := data.Portals[0]
	require.Equal(t, "wave", p.Mode)
	require.NotNil(t, p.Mini)
	require.True(t, *p.Mini)
	require.Nil(t, p.Speed, "absent property stays nil, not zero")
	require.Nil(t, p.Flip)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(testFS(), "levels/absent.tmx")
	require.Error(t, err)
}

func TestLoadAllSortsNames(t *testing.T) {
	fsys := testFS()
	fsys["levels/alpha.tmx"] = &fstest.MapFile{Data: []byte(testTMX)}

	levels, names, err := LoadAll(fsys, "levels")
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "tiny"}, names)
	require.Len(t, levels, 2)

	_, _, err = LoadAll(fsys, "nope")
	require.Error(t, err)
}
