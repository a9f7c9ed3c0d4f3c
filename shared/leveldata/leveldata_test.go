package leveldata

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"
)

const sampleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="40" tileheight="40" infinite="0" nextlayerid="6" nextobjectid="8">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="180" width="400" height="10"/>
  <object id="2" x="40" y="90" width="300" height="10">
   <properties>
    <property name="tilt" type="float" value="-2"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Ladders">
  <object id="3" x="100" y="95" width="20" height="90"/>
 </objectgroup>
 <objectgroup id="3" name="Goal">
  <object id="4" x="60" y="40" width="30" height="50"/>
 </objectgroup>
 <objectgroup id="4" name="PlayerSpawn">
  <object id="5" x="20" y="150">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="5" name="HazardSpawn">
  <object id="6" x="300" y="60">
   <point/>
  </object>
 </objectgroup>
</map>
`

func TestDefaultLevelIsValid(t *testing.T) {
	l := DefaultLevel()
	if err := l.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := l.BottomPlatform(); got != 0 {
		t.Errorf("BottomPlatform = %d, want 0", got)
	}
	if len(l.Ladders) != len(l.Platforms)-1 {
		t.Errorf("ladders = %d, want one per gap", len(l.Ladders))
	}
}

func TestLaddersMeetPlatformSurfaces(t *testing.T) {
	l := DefaultLevel()
	for i, ld := range l.Ladders {
		lower, upper := l.Platforms[i], l.Platforms[i+1]
		cx := ld.CenterX()
		if math.Abs(ld.Y-upper.SurfaceY(cx)) > 1e-9 {
			t.Errorf("ladder %d top = %v, want %v", i, ld.Y, upper.SurfaceY(cx))
		}
		if math.Abs(ld.Bottom()-lower.SurfaceY(cx)) > 1e-9 {
			t.Errorf("ladder %d bottom = %v, want %v", i, ld.Bottom(), lower.SurfaceY(cx))
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Level)
		want   error
	}{
		{"no platforms", func(l *Level) { l.Platforms = nil }, ErrNoPlatforms},
		{"no goal", func(l *Level) { l.Goal.W = 0 }, ErrNoGoal},
		{"no size", func(l *Level) { l.Height = 0 }, ErrBadSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLevel()
			tt.mutate(l)
			if err := l.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate = %v, want %v", err, tt.want)
			}
		})
	}

	l := DefaultLevel()
	l.Platforms[2].Tilt = 30
	if err := l.Validate(); err == nil {
		t.Error("steep platform accepted")
	}
}

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/sample.tmx": {Data: []byte(sampleTMX)},
	}
	l, err := LoadLevel(fsys, "levels/sample.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if l.Name != "sample" || l.Width != 400 || l.Height != 200 {
		t.Errorf("name=%q size=%vx%v", l.Name, l.Width, l.Height)
	}
	if len(l.Platforms) != 2 || l.Platforms[1].Tilt != -2 || l.Platforms[0].Tilt != 0 {
		t.Errorf("platforms = %+v", l.Platforms)
	}
	if len(l.Ladders) != 1 || l.Ladders[0].H != 90 {
		t.Errorf("ladders = %+v", l.Ladders)
	}
	if l.Goal.W != 30 || l.PlayerSpawn.X != 20 || l.HazardSpawn.Y != 60 {
		t.Errorf("goal=%+v player=%+v hazard=%+v", l.Goal, l.PlayerSpawn, l.HazardSpawn)
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(sampleTMX)},
		"levels/a.tmx": {Data: []byte(sampleTMX)},
	}
	levels, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(levels) != 2 || levels[0].Name != "a" || levels[1].Name != "b" {
		t.Errorf("levels loaded out of order")
	}

	if _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected an error for an empty directory")
	}
}
