package loxconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/logs"
)

//go:embed schema.cue
var schema string

// ConfigDirs lists directories searched for config files, most specific first.
type ConfigDirs []string

func (Module) ConfigDirs() (ret ConfigDirs) {
	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		ret = append(ret, workingDir)
	}
	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		ret = append(ret, configDir)
	}
	// system wide dir
	ret = append(ret, "/etc")
	return
}

var filenames = []string{
	"lox.cue",
	".lox.cue",
}

func (Module) ConfigsLoader(
	dirs ConfigDirs,
	logger logs.Logger,
) configs.Loader {

	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Debug("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}
