// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/protein-viewer/pkg/types"
)

// setDefaults registers every config key with viper so environment
// variables such as PROTEIN_VIEWER_SERVER_ADDR are honored by Unmarshal.
func setDefaults(d types.Config) {
	for _, p := range []struct {
		prefix string
		http   types.HTTPConfig
	}{
		{"uniprot", d.UniProt.HTTPConfig},
		{"alphafold", d.AlphaFold.HTTPConfig},
	} {
		viper.SetDefault(p.prefix+".timeout", p.http.Timeout)
		viper.SetDefault(p.prefix+".user_agent", p.http.UserAgent)
		viper.SetDefault(p.prefix+".max_retries", p.http.MaxRetries)
	}
	viper.SetDefault("uniprot.base_url", d.UniProt.BaseURL)
	viper.SetDefault("uniprot.evidence_filter", d.UniProt.EvidenceFilter)
	viper.SetDefault("uniprot.accession_query", d.UniProt.AccessionQuery)
	viper.SetDefault("alphafold.base_url", d.AlphaFold.BaseURL)
	viper.SetDefault("cache.enabled", d.Cache.Enabled)
	viper.SetDefault("cache.dir", d.Cache.Dir)
	viper.SetDefault("cache.ttl", d.Cache.TTL)
	viper.SetDefault("server.addr", d.Server.Addr)
	viper.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	viper.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	viper.SetDefault("server.default_color", d.Server.DefaultColor)
	viper.SetDefault("debug", d.Debug)
}

// loadConfig decodes the merged defaults, config file, environment, and
// bound flags.
func loadConfig() (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	// An unset --cache-dir flag binds as "".
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = types.DefaultConfig().Cache.Dir
	}
	return cfg, nil
}

func bindFlag(key string, f *pflag.Flag) {
	if err := viper.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}
