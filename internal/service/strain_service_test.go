package service

import (
	"GrowAGram/internal/model"
	"GrowAGram/internal/pkg/seedfinder"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cherryInfo() *seedfinder.StrainInfo {
	info := &seedfinder.StrainInfo{ID: "Cherry_Pie", Name: "Cherry Pie"}
	info.Brinfo.Name = "Dutch Passion"
	info.Brinfo.Descr = "<p>Sweet <i>cherry</i> aroma.</p>"
	info.Brinfo.Flowering.Days = 63
	return info
}

func TestGetStrainInfoCachesAndStores(t *testing.T) {
	repo := newStubStrainRepo()
	lookup := &stubLookup{infos: map[string]*seedfinder.StrainInfo{"Dutch_Passion/Cherry_Pie": cherryInfo()}}
	svc := NewStrainService(repo, lookup, newStubCache())
	ctx := context.Background()

	res, err := svc.GetStrainInfo(ctx, "Dutch_Passion", "Cherry_Pie")
	require.NoError(t, err)
	assert.Equal(t, "Cherry Pie", res.Name)
	assert.Equal(t, "Sweet cherry aroma.", res.Description)
	assert.Equal(t, 63, res.FloweringDays)
	assert.NotNil(t, res.SyncedAt)

	stored, err := repo.GetStrain(ctx, "Dutch_Passion", "Cherry_Pie")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, res.ID, stored.ID)

	_, err = svc.GetStrainInfo(ctx, "Dutch_Passion", "Cherry_Pie")
	require.NoError(t, err)
	assert.Equal(t, 1, lookup.calls)
}

func TestGetStrainInfoFallsBackToStored(t *testing.T) {
	repo := newStubStrainRepo(&model.Strain{ID: 4, BreederID: "Sensi", StrainID: "NL", Name: "Northern Lights"})
	svc := NewStrainService(repo, &stubLookup{}, newStubCache())
	ctx := context.Background()

	res, err := svc.GetStrainInfo(ctx, "Sensi", "NL")
	require.NoError(t, err)
	assert.Equal(t, "Northern Lights", res.Name)

	_, err = svc.GetStrainInfo(ctx, "Sensi", "Unknown")
	assert.ErrorIs(t, err, ErrStrainLookup)

	_, err = svc.GetStrainInfo(ctx, " ", "NL")
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestSyncStrains(t *testing.T) {
	repo := newStubStrainRepo(
		&model.Strain{ID: 1, BreederID: "Dutch_Passion", StrainID: "Cherry_Pie", Name: "old"},
		&model.Strain{ID: 2, BreederID: "Gone", StrainID: "Gone", Name: "Gone"},
	)
	lookup := &stubLookup{infos: map[string]*seedfinder.StrainInfo{"Dutch_Passion/Cherry_Pie": cherryInfo()}}
	svc := NewStrainService(repo, lookup, newStubCache())

	n, err := svc.SyncStrains(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := svc.GetAllStrains(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Cherry Pie", all[0].Name)
}
