package plugin

import (
	"fmt"

	"github.com/osse101/PerkPoints_Go/internal/domain"
)

// VersionData describes the plugin to the host loader
type VersionData struct {
	Name               string
	Author             string
	Version            string
	UsesAddressLibrary bool
	IsLayoutDependent  bool
	CompatibleRuntimes []string
}

// Info is the plugin's version data
var Info = VersionData{
	Name:               domain.PluginName,
	Author:             domain.PluginAuthor,
	Version:            fmt.Sprintf("%d.%d.%d", domain.VersionMajor, domain.VersionMinor, domain.VersionPatch),
	UsesAddressLibrary: true,
	IsLayoutDependent:  true,
	CompatibleRuntimes: []string{"1.10.984", "1.10.980", domain.MinRuntime},
}
