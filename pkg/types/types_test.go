package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 16384, cfg.Pages)
	require.Equal(t, 4096, cfg.PageSize)
	require.Equal(t, 512, cfg.MaxBlockPages)
	require.Equal(t, 15, cfg.Depth())
	require.Equal(t, 16384*4096, cfg.ArenaBytes())
}

func TestConfigValidate(t *testing.T) {
	good := Config{Pages: 256, PageSize: 4096, MaxBlockPages: 64}
	require.NoError(t, good.Validate())

	cases := []Config{
		{Pages: 100, PageSize: 4096, MaxBlockPages: 16},
		{Pages: 256, PageSize: 1000, MaxBlockPages: 16},
		{Pages: 256, PageSize: 4096, MaxBlockPages: 3},
		{Pages: 256, PageSize: 4096, MaxBlockPages: 0},
		{Pages: 256, PageSize: 4096, MaxBlockPages: 256},
		{Pages: 1, PageSize: 4096, MaxBlockPages: 1},
	}
	for _, cfg := range cases {
		require.Error(t, cfg.Validate(), "%+v", cfg)
	}
}

func TestStatsTotalPages(t *testing.T) {
	s := Stats{PagesUsed: 100, PagesFree: 156}
	require.Equal(t, 256, s.TotalPages())
}
