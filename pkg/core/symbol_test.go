package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackZeroStaysAbsent(t *testing.T) {
	for _, set := range append([]SymbolSet{SymbolSetUndefined}, SymbolSets...) {
		assert.Zero(t, PackModifier(set, 0), "modifier for %s", set)
		assert.Zero(t, PackEntity(set, 0), "entity for %s", set)
	}
}

func TestPackRoundTrip(t *testing.T) {
	for _, set := range SymbolSets {
		for _, raw := range []int{1, 7, 42, 99} {
			packed := PackModifier(set, raw)
			assert.Equal(t, raw, packed%ModifierOffset)
			assert.Equal(t, int(set), packed/ModifierOffset)
		}
		for _, raw := range []int{1, 110000, 121100, 999999} {
			packed := PackEntity(set, raw)
			assert.Equal(t, raw, packed%EntityOffset)
			assert.Equal(t, int(set), packed/EntityOffset)
		}
	}
}

func TestEchelonAndMobilityExclusive(t *testing.T) {
	s := NewSymbol(AffiliationFriend, SymbolSetLandUnit).WithEchelon(EchelonBattalion)
	assert.Equal(t, EchelonBattalion, s.Echelon)

	s = s.WithMobility(MobilityTracked)
	assert.Equal(t, MobilityTracked, s.Mobility)
	assert.Equal(t, EchelonUndefined, s.Echelon)

	s = s.WithEchelon(EchelonCorps)
	assert.Equal(t, MobilityUndefined, s.Mobility)
}

func TestBuildersCopy(t *testing.T) {
	base := NewSymbol(AffiliationFriend, SymbolSetLandUnit)
	hq := base.WithHeadquarters(true)

	assert.False(t, base.Headquarters)
	assert.True(t, hq.Headquarters)
}

func TestModifierIndex(t *testing.T) {
	s := NewSymbol(AffiliationFriend, SymbolSetLandUnit).WithModifiers(4, 1)

	assert.Equal(t, 1004, s.Modifier(1))
	assert.Equal(t, 1001, s.Modifier(2))
	assert.Zero(t, s.Modifier(0))
	assert.Zero(t, s.Modifier(3))
	assert.Equal(t, 4, s.RawModifier(1))
}

func TestFrameAffiliation(t *testing.T) {
	tests := []struct {
		aff  Affiliation
		ctx  Context
		want FrameAffiliation
	}{
		{AffiliationHostile, ContextReality, FrameHostile},
		{AffiliationSuspect, ContextExercise, FrameHostile},
		{AffiliationHostile, ContextSimulation, FrameFriend},
		{AffiliationSuspect, ContextSimulation, FrameFriend},
		{AffiliationFriend, ContextReality, FrameFriend},
		{AffiliationAssumedFriend, ContextSimulation, FrameFriend},
		{AffiliationNeutral, ContextReality, FrameNeutral},
		{AffiliationUnknown, ContextReality, FrameUnknown},
		{AffiliationPending, ContextSimulation, FrameUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.aff.String()+"/"+tt.ctx.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.aff.Frame(tt.ctx))
		})
	}
}

func TestDimension(t *testing.T) {
	tests := []struct {
		set  SymbolSet
		want Dimension
	}{
		{SymbolSetAir, DimensionAir},
		{SymbolSetAirMissile, DimensionAir},
		{SymbolSetSpace, DimensionSpace},
		{SymbolSetSpaceMissile, DimensionSpace},
		{SymbolSetLandUnit, DimensionLand},
		{SymbolSetLandCivilian, DimensionLand},
		{SymbolSetLandInstallation, DimensionLand},
		{SymbolSetActivities, DimensionLand},
		{SymbolSetLandEquipment, DimensionSea},
		{SymbolSetSeaSurface, DimensionSea},
		{SymbolSetSeaSubsurface, DimensionSubsurface},
		{SymbolSet(99), DimensionUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.set.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.Dimension())
		})
	}

	assert.Equal(t, DimensionLand, DimensionUndefined.Base())
	assert.Equal(t, DimensionAir, DimensionSpace.Base())
	assert.Equal(t, DimensionSea, DimensionSea.Base())
}

func TestSymbolString(t *testing.T) {
	s := NewSymbol(AffiliationFriend, SymbolSetLandUnit).
		WithEchelon(EchelonBattalion).
		WithEntity(121100)
	assert.Equal(t, "10031000161211000000", s.String())

	s = NewSymbol(AffiliationHostile, SymbolSetSeaSubsurface).
		WithContext(ContextExercise).
		WithPresence(PresencePlanned).
		WithHeadquarters(true).
		WithTaskForce(true).
		WithMobility(MobilityLongTowedArray).
		WithEntity(110000).
		WithModifiers(2, 3)
	assert.Equal(t, "10163516621100000203", s.String())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#0c6460", RGB(12, 100, 96), false},
		{"12, 100,96", RGB(12, 100, 96), false},
		{"#fff", Color{}, true},
		{"1,2", Color{}, true},
		{"1,2,300", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "rgb(12,100,96)", got.String())
		})
	}
}

func TestStyleNormalized(t *testing.T) {
	s := Style{FrameStrokeWidth: -1, Padding: -3}.Normalized()
	assert.Equal(t, DefaultFrameStrokeWidth, s.FrameStrokeWidth)
	assert.Equal(t, NominalIconSize, s.IconSize)
	assert.Zero(t, s.Padding)

	assert.Equal(t, 2.0, DefaultStyle().WithIconSize(200).ScaleFactor())
	assert.True(t, Style{}.PositionOnly())
	assert.False(t, DefaultStyle().PositionOnly())
}
